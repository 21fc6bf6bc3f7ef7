package secret

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

const randomBytesLen = 50

// KeySet is the process-lifetime key material for the auth core. It is
// built once at startup from a cryptographically secure random source and
// handed to constructors explicitly; nothing here is persisted, so every
// token issued before a restart becomes unverifiable afterwards.
type KeySet struct {
	// TokenSigningKey signs issued bearer tokens.
	TokenSigningKey []byte
	// CookieKey keys the transport-level cookie encryption middleware
	// (base64, 32 bytes as the middleware requires).
	CookieKey string
	// FingerprintKey keys the HMAC digest of fingerprint cookie values.
	FingerprintKey []byte
	// TokenHashKey keys the one-way hash under which tokens are stored
	// in the revocation list.
	TokenHashKey []byte
}

// NewKeySet derives fresh key material. Each key is an HMAC-SHA512 of one
// batch of random bytes keyed by another, so a partial RNG weakness in a
// single read does not surface directly as a key.
func NewKeySet() (*KeySet, error) {
	signing, err := newKey()
	if err != nil {
		return nil, fmt.Errorf("generate token signing key: %w", err)
	}

	cookie, err := newKey()
	if err != nil {
		return nil, fmt.Errorf("generate cookie key: %w", err)
	}

	fgp, err := newKey()
	if err != nil {
		return nil, fmt.Errorf("generate fingerprint key: %w", err)
	}

	tokenHash, err := newKey()
	if err != nil {
		return nil, fmt.Errorf("generate token hash key: %w", err)
	}

	return &KeySet{
		TokenSigningKey: signing,
		CookieKey:       base64.StdEncoding.EncodeToString(cookie[:32]),
		FingerprintKey:  fgp,
		TokenHashKey:    tokenHash,
	}, nil
}

// Fingerprint is the random secret delivered to the browser via an
// http-only cookie, paired with the keyed digest embedded in the token.
type Fingerprint struct {
	Value string
	Hash  string
}

// NewFingerprint mints a fresh fingerprint pair.
func (k *KeySet) NewFingerprint() (Fingerprint, error) {
	raw := make([]byte, randomBytesLen)
	if _, err := rand.Read(raw); err != nil {
		return Fingerprint{}, fmt.Errorf("generate fingerprint: %w", err)
	}

	value := hex.EncodeToString(raw)

	return Fingerprint{
		Value: value,
		Hash:  k.FingerprintHash(value),
	}, nil
}

// FingerprintHash recomputes the digest for a cookie value presented on a
// later request.
func (k *KeySet) FingerprintHash(value string) string {
	mac := hmac.New(sha256.New, k.FingerprintKey)
	mac.Write([]byte(value))
	return hex.EncodeToString(mac.Sum(nil))
}

// TokenHash produces the key under which a raw token is tracked in the
// revocation list. The raw token itself is never stored.
func (k *KeySet) TokenHash(token string) string {
	mac := hmac.New(sha256.New, k.TokenHashKey)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func newKey() ([]byte, error) {
	key := make([]byte, randomBytesLen)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}

	msg := make([]byte, randomBytesLen)
	if _, err := rand.Read(msg); err != nil {
		return nil, err
	}

	mac := hmac.New(sha512.New, key)
	mac.Write(msg)

	return mac.Sum(nil), nil
}
