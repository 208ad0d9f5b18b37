package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shivuu-aqua/aqua-api/internal/domain/entity"
	"github.com/shivuu-aqua/aqua-api/pkg/config"
)

func sampleInquiry() *entity.Inquiry {
	return &entity.Inquiry{
		ID:           "inq-1",
		Name:         "Ravi Kumar",
		BusinessName: "Hotel Ganga",
		Phone:        "9876543210",
		City:         "Varanasi",
		BottleSize:   "500ml",
		Quantity:     "200/week",
		Status:       entity.StatusNew,
		CreatedAt:    time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestBuildInquiryHTML_FilasOpcionales(t *testing.T) {
	inq := sampleInquiry()
	body := buildInquiryHTML(inq)

	assert.Contains(t, body, "Hotel Ganga")
	assert.Contains(t, body, "500ml")
	// Sin address/message/labelStyle, sus filas no aparecen
	assert.NotContains(t, body, "Address")
	assert.NotContains(t, body, "Message")
	assert.NotContains(t, body, "Label Style")

	inq.Address = "Main Road 5"
	inq.Message = "Urgente"
	inq.LabelStyle = entity.LabelStylePremium
	body = buildInquiryHTML(inq)
	assert.Contains(t, body, "Address")
	assert.Contains(t, body, "Main Road 5")
	assert.Contains(t, body, "Label Style")
	assert.Contains(t, body, "Premium")
}

// Los campos del cliente se escapan antes de entrar al HTML.
func TestBuildInquiryHTML_EscapaHTML(t *testing.T) {
	inq := sampleInquiry()
	inq.Name = `<script>alert("x")</script>`
	body := buildInquiryHTML(inq)

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}

// Sin transporte configurado el envío falla rápido, sin intentar la red.
func TestNotifyNewInquiry_SinSMTPConfigurado(t *testing.T) {
	n := NewNotifier(config.SMTPConfig{})
	err := n.NotifyNewInquiry(sampleInquiry())
	assert.Error(t, err)
}
