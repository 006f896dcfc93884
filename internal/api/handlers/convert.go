package handlers

import (
	"time"

	"sealgate.io/sealgate/ent"
)

// API representations. Access tokens are returned only on project creation;
// list and get responses omit them.

type projectJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type documentJSON struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Sha256   string `json:"sha256"`
	Version  int    `json:"version"`
}

type investorJSON struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	Role          string                 `json:"role"`
	RoutingOrder  int                    `json:"routing_order"`
	UnitsInvested float64                `json:"units_invested"`
	Metadata      map[string]interface{} `json:"metadata,omitempty"`
}

type signerJSON struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	Role         string     `json:"role"`
	RoutingOrder int        `json:"routing_order"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	OpenedAt     *time.Time `json:"opened_at,omitempty"`
}

type envelopeJSON struct {
	ID             string       `json:"id"`
	Subject        string       `json:"subject"`
	Message        string       `json:"message,omitempty"`
	Status         string       `json:"status"`
	RequesterName  string       `json:"requester_name,omitempty"`
	RequesterEmail string       `json:"requester_email,omitempty"`
	ExpiresAt      *time.Time   `json:"expires_at,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	Signers        []signerJSON `json:"signers,omitempty"`
}

type eventJSON struct {
	ID       int                    `json:"id"`
	Actor    string                 `json:"actor"`
	Type     string                 `json:"type"`
	Meta     map[string]interface{} `json:"meta,omitempty"`
	IP       string                 `json:"ip,omitempty"`
	Ua       string                 `json:"ua,omitempty"`
	PrevHash string                 `json:"prev_hash"`
	Hash     string                 `json:"hash"`
	At       time.Time              `json:"at"`
}

func toProjectJSON(p *ent.Project) projectJSON {
	return projectJSON{
		ID:        p.ID,
		Name:      p.Name,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

func toDocumentJSON(d *ent.Document) documentJSON {
	return documentJSON{
		ID:       d.ID,
		Filename: d.Filename,
		Sha256:   d.Sha256,
		Version:  d.Version,
	}
}

func toInvestorJSON(inv *ent.ProjectInvestor) investorJSON {
	return investorJSON{
		ID:            inv.ID,
		Name:          inv.Name,
		Email:         inv.Email,
		Role:          inv.Role,
		RoutingOrder:  inv.RoutingOrder,
		UnitsInvested: inv.UnitsInvested,
		Metadata:      inv.Metadata,
	}
}

func toSignerJSON(s *ent.Signer) signerJSON {
	return signerJSON{
		ID:           s.ID,
		Name:         s.Name,
		Email:        s.Email,
		Role:         s.Role,
		RoutingOrder: s.RoutingOrder,
		Status:       string(s.Status),
		CompletedAt:  s.CompletedAt,
		OpenedAt:     s.OpenedAt,
	}
}

func toEnvelopeJSON(e *ent.Envelope) envelopeJSON {
	out := envelopeJSON{
		ID:             e.ID,
		Subject:        e.Subject,
		Message:        e.Message,
		Status:         string(e.Status),
		RequesterName:  e.RequesterName,
		RequesterEmail: e.RequesterEmail,
		ExpiresAt:      e.ExpiresAt,
		CreatedAt:      e.CreatedAt,
	}
	for _, s := range e.Edges.Signers {
		out.Signers = append(out.Signers, toSignerJSON(s))
	}
	return out
}

func toEventJSON(ev *ent.Event) eventJSON {
	return eventJSON{
		ID:       ev.ID,
		Actor:    ev.Actor,
		Type:     string(ev.Type),
		Meta:     ev.Meta,
		IP:       ev.IP,
		Ua:       ev.Ua,
		PrevHash: ev.PrevHash,
		Hash:     ev.Hash,
		At:       ev.CreatedAt,
	}
}
