package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrLoginAlreadyTaken   = errors.New("login already taken")
	ErrMissingToken        = errors.New("missing bearer token")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenRevoked        = errors.New("token revoked")
	ErrFingerprintMismatch = errors.New("fingerprint mismatch")
	ErrMissingFingerprint  = errors.New("missing fingerprint cookie")
	ErrClientNotFound      = errors.New("client no longer exists")
	ErrForbiddenClientType = errors.New("client type not allowed for this route")
	ErrMalformedBody       = errors.New("malformed request body")
	ErrStorageUnavailable  = errors.New("storage unavailable")
)

// StatusCode maps a domain error to the HTTP status the global error
// handler should emit. Unknown errors are treated as internal.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrMalformedBody):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrLoginAlreadyTaken):
		return fiber.StatusConflict
	case errors.Is(err, ErrStorageUnavailable):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrTokenExpired),
		errors.Is(err, ErrTokenRevoked),
		errors.Is(err, ErrFingerprintMismatch),
		errors.Is(err, ErrMissingFingerprint),
		errors.Is(err, ErrClientNotFound),
		errors.Is(err, ErrForbiddenClientType):
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
