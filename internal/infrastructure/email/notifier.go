package email

import (
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/shivuu-aqua/aqua-api/internal/application/ports"
	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
	"github.com/shivuu-aqua/aqua-api/pkg/config"
	"gopkg.in/gomail.v2"
)

// Verificar en tiempo de compilación que Notifier implementa el puerto.
var _ ports.Notifier = (*Notifier)(nil)

// Notifier envía por SMTP el aviso de nuevo inquiry al dueño del negocio.
// Es best-effort: el caller descarta el error tras loguearlo, nunca hay retry.
type Notifier struct {
	cfg config.SMTPConfig
}

// NewNotifier construye el relay de notificaciones.
func NewNotifier(cfg config.SMTPConfig) *Notifier {
	return &Notifier{cfg: cfg}
}

// NotifyNewInquiry arma el correo HTML y lo envía a la dirección fija del negocio.
// Todos los campos de texto del inquiry se escapan antes de interpolarse en el HTML.
func (n *Notifier) NotifyNewInquiry(inquiry *entity.Inquiry) error {
	if !n.cfg.Enabled() {
		return fmt.Errorf("email: transporte SMTP no configurado")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.cfg.From)
	m.SetHeader("To", n.cfg.AdminEmail)
	m.SetHeader("Subject", "New Inquiry Received - Shivuu Aqua Supplies")
	m.SetBody("text/html", buildInquiryHTML(inquiry))

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviar notificación: %w", err)
	}
	return nil
}

// buildInquiryHTML genera la tabla HTML del inquiry; las filas opcionales solo
// aparecen si el campo viene con valor, como en el correo original del sitio.
func buildInquiryHTML(inq *entity.Inquiry) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2 style="color: #0A2463;">New Inquiry Received</h2>`)
	b.WriteString(`<p>A new inquiry has been submitted:</p>`)
	b.WriteString(`<table style="width: 100%; border-collapse: collapse;">`)

	writeRow(&b, "Name", inq.Name)
	writeRow(&b, "Business", inq.BusinessName)
	writeRow(&b, "Phone", inq.Phone)
	writeRow(&b, "City", inq.City)
	writeRow(&b, "Bottle Size", inq.BottleSize)
	writeRow(&b, "Quantity", inq.Quantity)
	if inq.Address != "" {
		writeRow(&b, "Address", inq.Address)
	}
	if inq.Message != "" {
		writeRow(&b, "Message", inq.Message)
	}
	if inq.LabelStyle != "" {
		writeRow(&b, "Label Style", inq.LabelStyle)
	}
	writeRow(&b, "Received At", inq.CreatedAt.UTC().Format(time.RFC1123))

	b.WriteString(`</table></div>`)
	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	const cell = `style="padding: 8px; border: 1px solid #ddd;"`
	fmt.Fprintf(b, `<tr><td %s><strong>%s:</strong></td><td %s>%s</td></tr>`,
		cell, label, cell, html.EscapeString(value))
}
