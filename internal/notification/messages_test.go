package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignURL(t *testing.T) {
	assert.Equal(t, "http://localhost:3000/sign/tok123", SignURL("http://localhost:3000", "tok123"))
	assert.Equal(t, "https://sign.example.com/sign/tok123", SignURL("https://sign.example.com/", "tok123"))
}

func TestInviteMessage(t *testing.T) {
	msg := InviteMessage(InviteParams{
		SignerName:     "Alice Ystad",
		SignerEmail:    "alice@example.com",
		RequesterName:  "Fund Manager",
		RequesterEmail: "manager@fund.example.com",
		Subject:        "Subscription Agreement",
		Note:           "Please sign before Friday.",
		SignURL:        "https://sign.example.com/sign/tok123",
	})

	assert.Equal(t, "alice@example.com", msg.To)
	assert.Equal(t, "manager@fund.example.com", msg.ReplyTo)
	assert.Equal(t, "Subscription Agreement - signature requested by Fund Manager", msg.Subject)
	assert.Contains(t, msg.Body, "Hi Alice Ystad,")
	assert.Contains(t, msg.Body, "Fund Manager has requested your signature.")
	assert.Contains(t, msg.Body, "Please sign before Friday.")
	assert.Contains(t, msg.Body, "https://sign.example.com/sign/tok123")
	assert.Nil(t, msg.Attachment)
}

func TestInviteMessageFallsBackToRequesterEmail(t *testing.T) {
	msg := InviteMessage(InviteParams{
		SignerName:     "Bob",
		SignerEmail:    "bob@example.com",
		RequesterEmail: "manager@fund.example.com",
	})
	assert.Equal(t, "Please sign - signature requested by manager@fund.example.com", msg.Subject)
}

func TestCompletionMessage(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")
	msg := CompletionMessage(CompletionParams{
		RecipientName:  "Alice Ystad",
		RecipientEmail: "alice@example.com",
		Subject:        "Subscription Agreement",
		EnvelopeID:     "env-1",
		FinalPDF:       pdf,
	})

	assert.Equal(t, "Completed: Subscription Agreement", msg.Subject)
	assert.Contains(t, msg.Body, "All parties have signed")
	if assert.NotNil(t, msg.Attachment) {
		assert.Equal(t, "envelope-env-1.pdf", msg.Attachment.Filename)
		assert.Equal(t, "application/pdf", msg.Attachment.ContentType)
		assert.Equal(t, pdf, msg.Attachment.Data)
	}
}
