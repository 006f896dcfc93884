package canonical

import (
	"strings"
	"testing"
)

func TestJSONSortsKeysWithoutWhitespace(t *testing.T) {
	b, err := JSON(map[string]interface{}{
		"type":  "filled",
		"actor": "signer:s1",
		"meta":  map[string]interface{}{"b": 2, "a": "x"},
	})
	if err != nil {
		t.Fatalf("JSON() error: %v", err)
	}
	want := `{"actor":"signer:s1","meta":{"a":"x","b":2},"type":"filled"}`
	if string(b) != want {
		t.Errorf("canonical bytes = %s, want %s", b, want)
	}
}

func TestSHA256Hex(t *testing.T) {
	// Well-known digest of the empty string.
	if got := SHA256Hex(nil); got != "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855" {
		t.Errorf("SHA256Hex(nil) = %s", got)
	}
}

func TestChainHashMatchesManualConcat(t *testing.T) {
	payload := []byte(`{"actor":"system","meta":{},"type":"created"}`)
	got := ChainHash(ZeroDigest, payload)
	want := SHA256Hex([]byte(ZeroDigest + string(payload)))
	if got != want {
		t.Errorf("ChainHash = %s, want %s", got, want)
	}
	if len(got) != 64 || strings.ToLower(got) != got {
		t.Errorf("ChainHash should be lowercase hex sha256, got %s", got)
	}
}

func TestSumObjectStable(t *testing.T) {
	h1, b1, err := SumObject(map[string]interface{}{"z": 1, "a": 2})
	if err != nil {
		t.Fatalf("SumObject error: %v", err)
	}
	h2, b2, _ := SumObject(map[string]interface{}{"a": 2, "z": 1})
	if h1 != h2 || string(b1) != string(b2) {
		t.Errorf("SumObject not stable across key order: %s vs %s", b1, b2)
	}
}
