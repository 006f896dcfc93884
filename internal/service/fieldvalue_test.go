package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sealgate.io/sealgate/ent"
	entfield "sealgate.io/sealgate/ent/envelopefield"
)

func TestVisibleBoundField(t *testing.T) {
	svc := NewFieldValueService()
	alice := &ent.Signer{ID: "s-alice", Role: "Investor"}
	bob := &ent.Signer{ID: "s-bob", Role: "Investor"}

	bound := &ent.EnvelopeField{
		ID:    "f1",
		Role:  "Investor",
		Edges: ent.EnvelopeFieldEdges{Signer: alice},
	}
	assert.True(t, svc.Visible(bound, alice))
	assert.False(t, svc.Visible(bound, bob), "bound field is invisible to other signers even with matching role")
}

func TestVisibleRoleMatch(t *testing.T) {
	svc := NewFieldValueService()
	investor := &ent.Signer{ID: "s1", Role: "Investor"}
	manager := &ent.Signer{ID: "s2", Role: "Manager"}

	forInvestors := &ent.EnvelopeField{ID: "f1", Role: "Investor"}
	anyRole := &ent.EnvelopeField{ID: "f2", Role: ""}

	assert.True(t, svc.Visible(forInvestors, investor))
	assert.False(t, svc.Visible(forInvestors, manager))
	assert.True(t, svc.Visible(anyRole, investor))
	assert.True(t, svc.Visible(anyRole, manager))
}

func TestShouldStore(t *testing.T) {
	svc := NewFieldValueService()

	assert.False(t, svc.ShouldStore(entfield.TypeText, nil))
	assert.False(t, svc.ShouldStore(entfield.TypeText, ""))
	assert.False(t, svc.ShouldStore(entfield.TypeText, "   "), "whitespace-only is blank")
	assert.False(t, svc.ShouldStore(entfield.TypeText, "\t\n"))
	assert.True(t, svc.ShouldStore(entfield.TypeText, "Alice"))
	assert.True(t, svc.ShouldStore(entfield.TypeDate, "2026-08-30"))
	assert.True(t, svc.ShouldStore(entfield.TypeSignature, "data:image/png;base64,AA=="))

	// An unticked checkbox is a deliberate answer.
	assert.True(t, svc.ShouldStore(entfield.TypeCheckbox, false))
	assert.True(t, svc.ShouldStore(entfield.TypeCheckbox, true))
	assert.False(t, svc.ShouldStore(entfield.TypeText, false))

	assert.True(t, svc.ShouldStore(entfield.TypeText, 42.0))
}
