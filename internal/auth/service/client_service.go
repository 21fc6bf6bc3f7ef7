package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/gomeliGithub/maria-project-sub000/config"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/domain"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/dto"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/secret"
	apperrors "github.com/gomeliGithub/maria-project-sub000/internal/errors"
	"github.com/gomeliGithub/maria-project-sub000/pkg/constant"
)

// ClientService owns sign-up, sign-in, sign-out and identity resolution.
// It is transport-free; the handler layer moves tokens and cookies in and
// out of requests.
type ClientService struct {
	clients domain.ClientRepository
	tokens  TokenController
	keys    *secret.KeySet
	cfg     *config.Config
	log     *zap.SugaredLogger
}

func NewClientService(clients domain.ClientRepository, tokens TokenController, keys *secret.KeySet,
	cfg *config.Config, log *zap.SugaredLogger) *ClientService {
	return &ClientService{
		clients: clients,
		tokens:  tokens,
		keys:    keys,
		cfg:     cfg,
		log:     log,
	}
}

// SignUp creates a new client record. The login must be free.
func (s *ClientService) SignUp(ctx context.Context, input dto.SignUpInput) (*domain.Client, error) {
	taken, err := s.clients.Exists(ctx, input.Login)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperrors.ErrLoginAlreadyTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	clientType := input.ClientType
	if clientType == "" {
		clientType = constant.ClientTypeMember
	}

	locale := input.Locale
	if locale == "" {
		locale = s.cfg.DefaultLocale
	}

	now := time.Now()

	client := &domain.Client{
		ID:           uuid.NewString(),
		Login:        input.Login,
		PasswordHash: string(hashed),
		Type:         clientType,
		FullName:     input.FullName,
		Email:        input.Email,
		Locale:       locale,
		SignUpAt:     now,
		LastActiveAt: now,
	}

	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// ValidateCredentials checks a login/password pair against the stored
// hash. Comparison goes through bcrypt, which is constant-time on the
// digest.
func (s *ClientService) ValidateCredentials(ctx context.Context, login, password string) (*domain.Client, error) {
	client, err := s.clients.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	if client == nil || bcrypt.CompareHashAndPassword([]byte(client.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return client, nil
}

// SignIn re-validates credentials, revokes any token the caller still
// holds, mints a fresh fingerprint pair, signs a token bound to it and
// records the issuance. The caller delivers the fingerprint value to the
// browser as an http-only cookie.
func (s *ClientService) SignIn(ctx context.Context, input dto.SignInInput,
	oldToken string) (string, secret.Fingerprint, error) {
	client, err := s.ValidateCredentials(ctx, input.Login, input.Password)
	if err != nil {
		return "", secret.Fingerprint{}, err
	}

	// Re-authentication while already holding a session kills the old
	// token first.
	if oldToken != "" {
		if err := s.tokens.Revoke(ctx, oldToken); err != nil {
			return "", secret.Fingerprint{}, err
		}
	}

	fgp, err := s.keys.NewFingerprint()
	if err != nil {
		return "", secret.Fingerprint{}, err
	}

	token, expiresAt, err := s.tokens.Sign(client, fgp.Hash)
	if err != nil {
		return "", secret.Fingerprint{}, err
	}

	if err := s.tokens.PersistIssued(ctx, token, expiresAt.Add(-s.tokens.TokenExpiry()), expiresAt); err != nil {
		return "", secret.Fingerprint{}, err
	}

	if err := s.clients.TouchLastSignIn(ctx, client.Login); err != nil {
		s.log.Warnw("failed to update last sign-in", "login", client.Login, "error", err)
	}

	return token, fgp, nil
}

// SignOut revokes the presented token. A sign-out without a token is an
// authorization failure.
func (s *ClientService) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrMissingToken
	}

	return s.tokens.Revoke(ctx, token)
}

// ActiveClient resolves the current identity without ever failing an
// anonymous caller: any auth defect degrades to the anonymous payload,
// which only echoes the requested locale. Storage failures still surface.
func (s *ClientService) ActiveClient(ctx context.Context, token, fgpCookie,
	requestedLocale string) (*dto.ActiveClientOutput, error) {
	locale := requestedLocale
	if locale == "" {
		locale = s.cfg.DefaultLocale
	}

	if token == "" {
		return dto.AnonymousClient(locale), nil
	}

	claims, err := s.tokens.Validate(ctx, token, fgpCookie, false)
	if err != nil {
		return nil, err
	}
	if claims == nil {
		return dto.AnonymousClient(locale), nil
	}

	// The account may have been deleted after the token was issued.
	exists, err := s.clients.Exists(ctx, claims.Login)
	if err != nil {
		return nil, err
	}
	if !exists {
		return dto.AnonymousClient(locale), nil
	}

	if err := s.clients.TouchLastActivity(ctx, claims.Login); err != nil {
		s.log.Warnw("failed to update last activity", "login", claims.Login, "error", err)
	}

	login := claims.Login
	clientType := claims.Type
	fullName := claims.FullName

	return &dto.ActiveClientOutput{
		Login:    &login,
		Type:     &clientType,
		FullName: &fullName,
		Email:    claims.Email,
		Locale:   claims.Locale,
		SignUpAt: claims.SignUpAt,
	}, nil
}

// ValidateClient is the gate's entry point for every protected non-sign-in
// route: strict token validation, a liveness check on the underlying
// client record, then the client-type membership test. An empty
// requiredTypes set admits any authenticated caller.
func (s *ClientService) ValidateClient(ctx context.Context, token, fgpCookie string,
	requiredTypes []string) (*ClientClaims, error) {
	claims, err := s.tokens.Validate(ctx, token, fgpCookie, true)
	if err != nil {
		return nil, err
	}

	client, err := s.clients.FindByLogin(ctx, claims.Login)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperrors.ErrClientNotFound
	}

	if err := s.clients.TouchLastActivity(ctx, client.Login); err != nil {
		s.log.Warnw("failed to update last activity", "login", client.Login, "error", err)
	}

	if len(requiredTypes) == 0 {
		return claims, nil
	}

	for _, required := range requiredTypes {
		if client.Type == required {
			return claims, nil
		}
	}

	return nil, apperrors.ErrForbiddenClientType
}
