package storage

import (
	"context"
	"testing"
)

func TestKeysAreDeterministic(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"upload", UploadKey("p1", "nda.pdf"), "projects/p1/uploads/nda.pdf"},
		{"final pdf", FinalPDFKey("p1", "e1"), "projects/p1/final/envelopes/e1.pdf"},
		{"final audit", FinalAuditKey("p1", "e1"), "projects/p1/final/envelopes/e1.audit.json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if _, err := s.Get(ctx, "missing"); err != ErrNotFound {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}

	if err := s.Put(ctx, "k", []byte("data"), "application/pdf"); err != nil {
		t.Fatalf("Put error: %v", err)
	}
	b, err := s.Get(ctx, "k")
	if err != nil || string(b) != "data" {
		t.Fatalf("Get = %q, %v", b, err)
	}

	// Returned slice is a copy; mutating it must not corrupt the store.
	b[0] = 'X'
	b2, _ := s.Get(ctx, "k")
	if string(b2) != "data" {
		t.Errorf("stored blob mutated to %q", b2)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := s.Get(ctx, "k"); err != ErrNotFound {
		t.Errorf("Get(deleted) = %v, want ErrNotFound", err)
	}
}
