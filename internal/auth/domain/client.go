package domain

import "time"

// Client is the stored account record. The auth core only reads it; CRUD
// for clients lives outside this service.
type Client struct {
	ID           string
	Login        string
	PasswordHash string
	Type         string
	FullName     string
	Email        *string
	Locale       string
	SignUpAt     time.Time
	LastActiveAt time.Time
	LastSignInAt time.Time
}

// RevokedToken is one row of the revocation list, keyed by a one-way hash
// of the raw token. A row is written at issuance and flagged on logout.
type RevokedToken struct {
	TokenHash string
	IssuedAt  time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
	Revoked   bool
}
