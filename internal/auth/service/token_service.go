package service

//go:generate mockgen -destination=../../mocks/mock_token_controller.go -package=mocks github.com/gomeliGithub/maria-project-sub000/internal/auth/service TokenController

import (
	"context"
	"crypto/hmac"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gomeliGithub/maria-project-sub000/internal/auth/domain"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/secret"
	apperrors "github.com/gomeliGithub/maria-project-sub000/internal/errors"
)

// ClientClaims is the identity payload embedded in every issued token: a
// snapshot of the client record at sign-in time plus the fingerprint
// digest binding the token to its browser session.
type ClientClaims struct {
	jwt.RegisteredClaims
	Login    string     `json:"login"`
	Type     string     `json:"type"`
	FullName string     `json:"fullName"`
	Email    *string    `json:"email,omitempty"`
	Locale   string     `json:"locale"`
	SignUpAt *time.Time `json:"signUpAt,omitempty"`
	FgpHash  string     `json:"fgpHash"`
}

// TokenController is the token lifecycle surface the client service and
// the request gate depend on.
type TokenController interface {
	Sign(client *domain.Client, fgpHash string) (string, time.Time, error)
	Verify(token string) (*ClientClaims, error)
	ExtractBearerToken(authorization, path string, tolerantPaths []string) (string, error)
	Validate(ctx context.Context, token, fgpCookie string, throwOnFailure bool) (*ClientClaims, error)
	Revoke(ctx context.Context, token string) error
	PersistIssued(ctx context.Context, token string, issuedAt, expiresAt time.Time) error
	TokenExpiry() time.Duration
}

// TokenService signs, verifies, validates and revokes bearer tokens. The
// signing method and key material are injected so the scheme can change
// without touching callers.
type TokenService struct {
	method      jwt.SigningMethod
	keys        *secret.KeySet
	revocations domain.RevocationRepository
	tokenExpiry time.Duration
}

func NewTokenService(algorithm string, keys *secret.KeySet, revocations domain.RevocationRepository,
	expiryMinutes int) *TokenService {
	return &TokenService{
		method:      jwt.GetSigningMethod(algorithm),
		keys:        keys,
		revocations: revocations,
		tokenExpiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Sign serializes the client snapshot plus issued-at/expiry claims and
// the fingerprint digest into a signed compact token.
func (ts *TokenService) Sign(client *domain.Client, fgpHash string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ts.tokenExpiry)
	signUpAt := client.SignUpAt

	claims := ClientClaims{
		Login:    client.Login,
		Type:     client.Type,
		FullName: client.FullName,
		Email:    client.Email,
		Locale:   client.Locale,
		SignUpAt: &signUpAt,
		FgpHash:  fgpHash,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(ts.method, claims).SignedString(ts.keys.TokenSigningKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}

	return token, expiresAt, nil
}

// Verify parses the token and checks signature and expiry. It fails
// closed on any structural problem.
func (ts *TokenService) Verify(tokenString string) (*ClientClaims, error) {
	claims := &ClientClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Only HMAC-family tokens are ever issued here.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return ts.keys.TokenSigningKey, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	return claims, nil
}

// ExtractBearerToken pulls the token out of the Authorization header.
// For the tolerant endpoints (sign-in, sign-up, sign-out, active-client)
// absence yields an empty string; everywhere else it is a failure.
func (ts *TokenService) ExtractBearerToken(authorization, path string, tolerantPaths []string) (string, error) {
	token := ""
	if strings.HasPrefix(authorization, "Bearer ") {
		token = strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
	}

	if token != "" {
		return token, nil
	}

	for _, tolerant := range tolerantPaths {
		if path == tolerant {
			return "", nil
		}
	}

	return "", apperrors.ErrMissingToken
}

// Validate runs the full check chain: signature and expiry, fingerprint
// binding, then revocation state. With throwOnFailure false, auth
// failures come back as nil, nil so anonymous-tolerant endpoints can
// degrade gracefully; storage failures are never downgraded.
func (ts *TokenService) Validate(ctx context.Context, token, fgpCookie string,
	throwOnFailure bool) (*ClientClaims, error) {
	claims, err := ts.Verify(token)
	if err != nil {
		return ts.fail(err, throwOnFailure)
	}

	expected := ts.keys.FingerprintHash(fgpCookie)
	if fgpCookie == "" || !hmac.Equal([]byte(expected), []byte(claims.FgpHash)) {
		return ts.fail(apperrors.ErrFingerprintMismatch, throwOnFailure)
	}

	revoked, err := ts.revocations.IsRevoked(ctx, ts.keys.TokenHash(token))
	if err != nil {
		return nil, err
	}
	if revoked {
		return ts.fail(apperrors.ErrTokenRevoked, throwOnFailure)
	}

	return claims, nil
}

// Revoke marks the token revoked as of now. Revoking an already revoked
// token is a no-op.
func (ts *TokenService) Revoke(ctx context.Context, token string) error {
	hash := ts.keys.TokenHash(token)

	revoked, err := ts.revocations.IsRevoked(ctx, hash)
	if err != nil {
		return err
	}
	if revoked {
		return nil
	}

	return ts.revocations.RecordRevoked(ctx, hash, time.Now())
}

// PersistIssued writes the issuance row for a freshly signed token.
func (ts *TokenService) PersistIssued(ctx context.Context, token string, issuedAt, expiresAt time.Time) error {
	return ts.revocations.RecordIssued(ctx, ts.keys.TokenHash(token), issuedAt, expiresAt)
}

func (ts *TokenService) TokenExpiry() time.Duration {
	return ts.tokenExpiry
}

func (ts *TokenService) fail(err error, throwOnFailure bool) (*ClientClaims, error) {
	if throwOnFailure {
		return nil, err
	}
	return nil, nil
}
