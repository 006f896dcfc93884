package ledger

import (
	"testing"

	"sealgate.io/sealgate/ent"
	"sealgate.io/sealgate/ent/event"
	"sealgate.io/sealgate/internal/pkg/canonical"
)

// buildChain hand-computes a valid chain the way Append does, without a
// database, so Verify can be exercised in isolation.
func buildChain(t *testing.T, entries []struct {
	actor string
	typ   event.Type
	meta  map[string]interface{}
}) []*ent.Event {
	t.Helper()
	prev := canonical.ZeroDigest
	events := make([]*ent.Event, 0, len(entries))
	for i, e := range entries {
		payload, err := Payload(e.actor, string(e.typ), e.meta)
		if err != nil {
			t.Fatalf("payload: %v", err)
		}
		h := canonical.ChainHash(prev, payload)
		events = append(events, &ent.Event{
			ID:       i + 1,
			Actor:    e.actor,
			Type:     e.typ,
			Meta:     e.meta,
			PrevHash: prev,
			Hash:     h,
		})
		prev = h
	}
	return events
}

func sampleChain(t *testing.T) []*ent.Event {
	return buildChain(t, []struct {
		actor string
		typ   event.Type
		meta  map[string]interface{}
	}{
		{SystemActor, event.TypeCreated, map[string]interface{}{"envelope_id": "e1"}},
		{SystemActor, event.TypeSent, map[string]interface{}{}},
		{SignerActor("s1"), event.TypeOpened, map[string]interface{}{}},
		{SignerActor("s1"), event.TypeFilled, map[string]interface{}{"values": map[string]interface{}{"f1": "x"}}},
		{SignerActor("s1"), event.TypeCompleted, map[string]interface{}{"signer_id": "s1"}},
		{SystemActor, event.TypeSealed, map[string]interface{}{"sha256_final": "abc"}},
	})
}

func TestVerifyAcceptsValidChain(t *testing.T) {
	if err := Verify(sampleChain(t)); err != nil {
		t.Errorf("Verify(valid chain) = %v", err)
	}
}

func TestVerifyAcceptsEmptyChain(t *testing.T) {
	if err := Verify(nil); err != nil {
		t.Errorf("Verify(nil) = %v", err)
	}
}

func TestVerifyDetectsMutatedMeta(t *testing.T) {
	events := sampleChain(t)
	events[3].Meta = map[string]interface{}{"values": map[string]interface{}{"f1": "forged"}}
	if err := Verify(events); err == nil {
		t.Error("Verify should reject a chain with mutated metadata")
	}
}

func TestVerifyDetectsBrokenLink(t *testing.T) {
	events := sampleChain(t)
	events[2].PrevHash = canonical.ZeroDigest
	if err := Verify(events); err == nil {
		t.Error("Verify should reject a chain with a broken prev_hash link")
	}
}

func TestVerifyDetectsDroppedEvent(t *testing.T) {
	events := sampleChain(t)
	truncated := append(events[:2], events[3:]...)
	if err := Verify(truncated); err == nil {
		t.Error("Verify should reject a chain with a removed event")
	}
}

func TestFirstEventUsesZeroSentinel(t *testing.T) {
	events := sampleChain(t)
	if events[0].PrevHash != canonical.ZeroDigest {
		t.Errorf("first prev_hash = %s, want zero sentinel", events[0].PrevHash)
	}
}

func TestPayloadShape(t *testing.T) {
	b, err := Payload(SystemActor, "created", map[string]interface{}{"envelope_id": "e1"})
	if err != nil {
		t.Fatalf("Payload error: %v", err)
	}
	want := `{"actor":"system","meta":{"envelope_id":"e1"},"type":"created"}`
	if string(b) != want {
		t.Errorf("Payload = %s, want %s", b, want)
	}

	// nil meta canonicalizes to an empty object, matching what Append stores.
	b, _ = Payload("signer:s1", "opened", nil)
	want = `{"actor":"signer:s1","meta":{},"type":"opened"}`
	if string(b) != want {
		t.Errorf("Payload(nil meta) = %s, want %s", b, want)
	}
}
