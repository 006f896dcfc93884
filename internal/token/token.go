// Package token implements the signer capability token codec.
//
// A capability token binds one signer to one envelope. It is an HS256-signed
// JWT; possession of a valid token is the sole authorization for signer-facing
// operations. The codec enforces no expiry itself — callers needing one must
// embed and check a timestamp claim.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalid is the single opaque rejection for any bad token. Callers must
// not learn whether the signature, structure or claims failed.
var ErrInvalid = errors.New("invalid signing token")

// ErrSigningKeyMissing indicates the codec was built without a secret.
var ErrSigningKeyMissing = errors.New("signing key is not configured")

// Claims binds a signer to an envelope.
type Claims struct {
	SignerID   string `json:"signer_id"`
	EnvelopeID string `json:"envelope_id"`
	jwt.RegisteredClaims
}

// Codec issues and verifies capability tokens.
type Codec struct {
	signingKey []byte
	issuer     string
}

// NewCodec creates a capability token codec.
func NewCodec(signingKey []byte, issuer string) *Codec {
	return &Codec{signingKey: signingKey, issuer: issuer}
}

// Issue creates a signed token for the signer/envelope pair.
func (c *Codec) Issue(signerID, envelopeID string) (string, error) {
	if len(c.signingKey) == 0 {
		return "", ErrSigningKeyMissing
	}

	claims := Claims{
		SignerID:   signerID,
		EnvelopeID: envelopeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:  c.issuer,
			Subject: signerID,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign capability token: %w", err)
	}
	return signed, nil
}

// Verify checks the token signature and returns its claims. All failure modes
// collapse into ErrInvalid.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	if len(c.signingKey) == 0 {
		return nil, ErrSigningKeyMissing
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return c.signingKey, nil
	}, opts...)
	if err != nil {
		return nil, ErrInvalid
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrInvalid
	}
	if claims.SignerID == "" || claims.EnvelopeID == "" {
		return nil, ErrInvalid
	}
	return claims, nil
}
