package notification

import (
	"fmt"
	"strings"
)

// InviteParams carries what an invitation email needs.
type InviteParams struct {
	SignerName     string
	SignerEmail    string
	RequesterName  string
	RequesterEmail string
	Subject        string
	Note           string
	SignURL        string
}

// SignURL builds the capability link a signer follows to open their session.
func SignURL(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/sign/" + token
}

// InviteMessage renders the invitation sent when an envelope goes out.
// The requester fronts the message; replies go to them, not the platform.
func InviteMessage(p InviteParams) Message {
	requester := p.RequesterName
	if requester == "" {
		requester = p.RequesterEmail
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", p.SignerName)
	fmt.Fprintf(&b, "%s has requested your signature.\n\n", requester)
	if p.Note != "" {
		fmt.Fprintf(&b, "%s\n\n", p.Note)
	}
	fmt.Fprintf(&b, "Review and sign here:\n%s\n\n", p.SignURL)
	b.WriteString("This link is personal to you. Do not forward it.\n")

	subject := p.Subject
	if subject == "" {
		subject = "Please sign"
	}
	return Message{
		To:      p.SignerEmail,
		ToName:  p.SignerName,
		ReplyTo: p.RequesterEmail,
		Subject: fmt.Sprintf("%s - signature requested by %s", subject, requester),
		Body:    b.String(),
	}
}

// CompletionParams carries what a completion notice needs.
type CompletionParams struct {
	RecipientName  string
	RecipientEmail string
	Subject        string
	EnvelopeID     string
	FinalPDF       []byte
}

// CompletionMessage renders the notice sent to every party once the envelope
// is sealed, with the executed document attached.
func CompletionMessage(p CompletionParams) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", p.RecipientName)
	fmt.Fprintf(&b, "All parties have signed \"%s\". The executed document is attached.\n\n", p.Subject)
	b.WriteString("Keep this copy for your records.\n")

	return Message{
		To:      p.RecipientEmail,
		ToName:  p.RecipientName,
		Subject: fmt.Sprintf("Completed: %s", p.Subject),
		Body:    b.String(),
		Attachment: &Attachment{
			Filename:    fmt.Sprintf("envelope-%s.pdf", p.EnvelopeID),
			ContentType: "application/pdf",
			Data:        p.FinalPDF,
		},
	}
}
