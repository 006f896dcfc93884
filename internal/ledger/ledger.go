// Package ledger implements the append-only hash-chained audit log.
//
// Every envelope action appends one immutable Event row. Each event's hash
// covers the previous event's hash plus the canonical payload bytes, so the
// whole history is verifiable end-to-end by any reader: recomputing forward
// from the zero sentinel must reproduce every stored hash.
package ledger

import (
	"context"
	"fmt"

	"sealgate.io/sealgate/ent"
	"sealgate.io/sealgate/ent/envelope"
	"sealgate.io/sealgate/ent/event"
	"sealgate.io/sealgate/internal/pkg/canonical"
)

// SystemActor is the actor recorded for envelope-level transitions.
const SystemActor = "system"

// SignerActor returns the actor string for a signer-initiated event.
func SignerActor(signerID string) string {
	return "signer:" + signerID
}

// Payload returns the canonical bytes hashed into the chain for one event.
// Shape: {"actor":...,"meta":{...},"type":...} with sorted keys.
func Payload(actor string, eventType string, meta map[string]interface{}) ([]byte, error) {
	if meta == nil {
		meta = map[string]interface{}{}
	}
	return canonical.JSON(map[string]interface{}{
		"actor": actor,
		"meta":  meta,
		"type":  eventType,
	})
}

// Append writes one event inside the caller's transaction.
//
// The caller MUST hold the envelope row lock (SELECT ... FOR UPDATE) in the
// same transaction; that lock is what serializes appends per envelope so two
// concurrent actors can never pick the same prev_hash and fork the chain.
// Lock acquires it for callers that have not already done so.
func Append(ctx context.Context, tx *ent.Tx, envelopeID, actor string, eventType event.Type, meta map[string]interface{}, ip, ua string) (*ent.Event, error) {
	prevHash := canonical.ZeroDigest
	last, err := tx.Event.Query().
		Where(event.HasEnvelopeWith(envelope.ID(envelopeID))).
		Order(ent.Desc(event.FieldID)).
		First(ctx)
	switch {
	case err == nil:
		prevHash = last.Hash
	case !ent.IsNotFound(err):
		return nil, fmt.Errorf("query last event for envelope %s: %w", envelopeID, err)
	}

	if meta == nil {
		meta = map[string]interface{}{}
	}
	payload, err := Payload(actor, string(eventType), meta)
	if err != nil {
		return nil, fmt.Errorf("canonicalize event payload: %w", err)
	}

	create := tx.Event.Create().
		SetEnvelopeID(envelopeID).
		SetActor(actor).
		SetType(eventType).
		SetMeta(meta).
		SetPrevHash(prevHash).
		SetHash(canonical.ChainHash(prevHash, payload))
	if ip != "" {
		create = create.SetIP(ip)
	}
	if ua != "" {
		create = create.SetUa(ua)
	}

	ev, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append %s event for envelope %s: %w", eventType, envelopeID, err)
	}
	return ev, nil
}

// Lock takes the envelope row lock that serializes ledger appends and the
// terminal seal decision. Returns the locked envelope.
func Lock(ctx context.Context, tx *ent.Tx, envelopeID string) (*ent.Envelope, error) {
	env, err := tx.Envelope.Query().
		Where(envelope.ID(envelopeID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("lock envelope %s: %w", envelopeID, err)
	}
	return env, nil
}

// Verify recomputes the chain over events in append order and reports the
// first entry whose stored hash or prev_hash does not match.
func Verify(events []*ent.Event) error {
	prev := canonical.ZeroDigest
	for i, ev := range events {
		if ev.PrevHash != prev {
			return fmt.Errorf("event %d (id=%d): prev_hash %s does not match prior hash %s", i, ev.ID, ev.PrevHash, prev)
		}
		payload, err := Payload(ev.Actor, string(ev.Type), ev.Meta)
		if err != nil {
			return fmt.Errorf("event %d (id=%d): %w", i, ev.ID, err)
		}
		want := canonical.ChainHash(ev.PrevHash, payload)
		if ev.Hash != want {
			return fmt.Errorf("event %d (id=%d): stored hash %s, recomputed %s", i, ev.ID, ev.Hash, want)
		}
		prev = ev.Hash
	}
	return nil
}

// History fetches an envelope's events in append order for independent chain
// verification by callers.
func History(ctx context.Context, client *ent.Client, envelopeID string) ([]*ent.Event, error) {
	events, err := client.Event.Query().
		Where(event.HasEnvelopeWith(envelope.ID(envelopeID))).
		Order(ent.Asc(event.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query events for envelope %s: %w", envelopeID, err)
	}
	return events, nil
}
