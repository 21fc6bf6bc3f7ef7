package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gomeliGithub/maria-project-sub000/internal/auth/domain"
	apperrors "github.com/gomeliGithub/maria-project-sub000/internal/errors"
)

type ClientRepository struct {
	db *pgxpool.Pool
}

func NewClientRepository(db *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) FindByLogin(ctx context.Context, login string) (*domain.Client, error) {
	query := `
		SELECT id, login, password_hash, type, full_name, email, locale,
		       sign_up_date, last_active_date, last_sign_in_date
		FROM clients
		WHERE login = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, login)

	var client domain.Client
	err := row.Scan(&client.ID, &client.Login, &client.PasswordHash, &client.Type, &client.FullName,
		&client.Email, &client.Locale, &client.SignUpAt, &client.LastActiveAt, &client.LastSignInAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("get client by login", err)
	}

	return &client, nil
}

func (r *ClientRepository) Exists(ctx context.Context, login string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM clients WHERE login = $1)`, login).Scan(&exists)
	if err != nil {
		return false, storageErr("check client existence", err)
	}

	return exists, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO clients (id, login, password_hash, type, full_name, email, locale,
		                     sign_up_date, last_active_date, last_sign_in_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, client.ID, client.Login, client.PasswordHash, client.Type, client.FullName, client.Email,
		client.Locale, client.SignUpAt, client.LastActiveAt, client.LastSignInAt)
	if err != nil {
		return storageErr("create client", err)
	}

	return nil
}

func (r *ClientRepository) TouchLastActivity(ctx context.Context, login string) error {
	_, err := r.db.Exec(ctx, `UPDATE clients SET last_active_date = now() WHERE login = $1`, login)
	if err != nil {
		return storageErr("touch last activity", err)
	}

	return nil
}

func (r *ClientRepository) TouchLastSignIn(ctx context.Context, login string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE clients SET last_sign_in_date = now(), last_active_date = now() WHERE login = $1
	`, login)
	if err != nil {
		return storageErr("touch last sign-in", err)
	}

	return nil
}

// storageErr keeps the revocation and client checks fail-closed: any
// database defect surfaces as a storage failure, never as "not found".
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperrors.ErrStorageUnavailable, op, err)
}
