// Package canonical provides deterministic serialization and hashing helpers.
//
// Canonical bytes are json.Marshal output: object keys sorted, no insignificant
// whitespace. Event hashes and audit summaries are computed over these bytes so
// any reader can reproduce them without side information.
package canonical

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// ZeroDigest is the sentinel prev_hash of the first event in a chain.
const ZeroDigest = "0000000000000000000000000000000000000000000000000000000000000000"

// JSON returns the canonical byte serialization of v.
func JSON(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("canonical marshal: %w", err)
	}
	return b, nil
}

// SHA256Hex returns the lowercase hex SHA-256 of b.
func SHA256Hex(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}

// SumObject canonicalizes v and hashes it in one step.
func SumObject(v any) (hexHash string, canonicalBytes []byte, err error) {
	b, err := JSON(v)
	if err != nil {
		return "", nil, err
	}
	return SHA256Hex(b), b, nil
}

// ChainHash computes the hash of one ledger entry: SHA-256 over the previous
// entry's hex hash concatenated with the entry's canonical payload bytes.
func ChainHash(prevHashHex string, canonicalPayload []byte) string {
	h := sha256.New()
	h.Write([]byte(prevHashHex))
	h.Write(canonicalPayload)
	return hex.EncodeToString(h.Sum(nil))
}
