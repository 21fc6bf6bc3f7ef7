package domain

//go:generate mockgen -destination=../../mocks/mock_client_repository.go -package=mocks github.com/gomeliGithub/maria-project-sub000/internal/auth/domain ClientRepository
//go:generate mockgen -destination=../../mocks/mock_revocation_repository.go -package=mocks github.com/gomeliGithub/maria-project-sub000/internal/auth/domain RevocationRepository

import (
	"context"
	"time"
)

type ClientRepository interface {
	// FindByLogin returns nil, nil when no client with the login exists.
	FindByLogin(ctx context.Context, login string) (*Client, error)
	Exists(ctx context.Context, login string) (bool, error)
	Create(ctx context.Context, client *Client) error
	TouchLastActivity(ctx context.Context, login string) error
	TouchLastSignIn(ctx context.Context, login string) error
}

type RevocationRepository interface {
	// RecordIssued inserts the issuance row; repeating it for the same
	// hash is a no-op.
	RecordIssued(ctx context.Context, tokenHash string, issuedAt, expiresAt time.Time) error
	// RecordRevoked flags an existing row revoked, inserting one first if
	// the token was never recorded at issuance.
	RecordRevoked(ctx context.Context, tokenHash string, revokedAt time.Time) error
	// Lookup returns nil, nil when no row exists for the hash.
	Lookup(ctx context.Context, tokenHash string) (*RevokedToken, error)
	IsRevoked(ctx context.Context, tokenHash string) (bool, error)
}
