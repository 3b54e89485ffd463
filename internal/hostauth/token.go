// Package hostauth issues and verifies table-session resume tokens. A
// WebSocket reconnect carries one of these so the host can match the
// socket back to a player index without re-running the lobby/deal step.
package hostauth

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

// deriveSigningKey expands a configured base secret into a 32-byte HMAC key
// via HKDF-SHA256, the way a raw passphrase is never used directly as a MAC
// key. info binds the derived key to this one purpose, so the same base
// secret can seed other derived keys elsewhere without collision.
func deriveSigningKey(baseSecret string) ([]byte, error) {
	if len(baseSecret) == 0 {
		return nil, errors.New("hostauth: empty base secret")
	}
	reader := hkdf.New(sha256.New, []byte(baseSecret), nil, []byte("coupd-table-session-v1"))
	key := make([]byte, 32)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("hostauth: deriving signing key: %w", err)
	}
	return key, nil
}

// Claims identifies which table and player index a resume token was issued
// for.
type Claims struct {
	jwt.RegisteredClaims
	TableID    uuid.UUID `json:"table_id"`
	PlayerIdx  int       `json:"player_idx"`
}

// Issuer signs and verifies table-session tokens with a key derived from a
// single configured secret (hostconfig.Config.JWTSecret).
type Issuer struct {
	signingKey []byte
	ttl        time.Duration
}

// NewIssuer derives the signing key once at startup so every Issue/Verify
// call avoids re-running HKDF.
func NewIssuer(baseSecret string, ttl time.Duration) (*Issuer, error) {
	key, err := deriveSigningKey(baseSecret)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &Issuer{signingKey: key, ttl: ttl}, nil
}

// Issue returns a signed resume token for playerIdx at tableID.
func (iss *Issuer) Issue(tableID uuid.UUID, playerIdx int) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(iss.ttl)),
			Issuer:    "coupd",
		},
		TableID:   tableID,
		PlayerIdx: playerIdx,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(iss.signingKey)
	if err != nil {
		return "", fmt.Errorf("hostauth: signing token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a resume token, returning the table/player it
// was issued for.
func (iss *Issuer) Verify(tokenStr string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (interface{}, error) {
		return iss.signingKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithIssuer("coupd"))
	if err != nil {
		return Claims{}, fmt.Errorf("hostauth: invalid resume token: %w", err)
	}
	return claims, nil
}
