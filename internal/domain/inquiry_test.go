package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validInquiry() *Inquiry {
	return &Inquiry{
		ID:          uuid.NewString(),
		Name:        "Ing. arch. Petra Nováková",
		Email:       "petra@studio.sk",
		PartnerType: "architect",
		Message:     "Radi by sme zahrnuli vaše záhony do projektu.",
		ReceivedAt:  time.Now(),
	}
}

func TestInquiry_Validate(t *testing.T) {
	assert.NoError(t, validInquiry().Validate())

	tests := []struct {
		name   string
		mutate func(*Inquiry)
	}{
		{"missing id", func(i *Inquiry) { i.ID = "" }},
		{"non uuid id", func(i *Inquiry) { i.ID = "inquiry-1" }},
		{"blank name", func(i *Inquiry) { i.Name = "   " }},
		{"bad email", func(i *Inquiry) { i.Email = "petra-at-studio" }},
		{"missing partner type", func(i *Inquiry) { i.PartnerType = "" }},
		{"blank message", func(i *Inquiry) { i.Message = "\n\t" }},
		{"zero time", func(i *Inquiry) { i.ReceivedAt = time.Time{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inq := validInquiry()
			tt.mutate(inq)
			assert.Error(t, inq.Validate())
		})
	}
}
