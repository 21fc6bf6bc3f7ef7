package errors

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrMalformedBody, fiber.StatusBadRequest},
		{ErrLoginAlreadyTaken, fiber.StatusConflict},
		{ErrStorageUnavailable, fiber.StatusServiceUnavailable},
		{ErrInvalidCredentials, fiber.StatusUnauthorized},
		{ErrMissingToken, fiber.StatusUnauthorized},
		{ErrInvalidToken, fiber.StatusUnauthorized},
		{ErrTokenExpired, fiber.StatusUnauthorized},
		{ErrTokenRevoked, fiber.StatusUnauthorized},
		{ErrFingerprintMismatch, fiber.StatusUnauthorized},
		{ErrMissingFingerprint, fiber.StatusUnauthorized},
		{ErrClientNotFound, fiber.StatusUnauthorized},
		{ErrForbiddenClientType, fiber.StatusUnauthorized},
		{fmt.Errorf("wrapped: %w", ErrStorageUnavailable), fiber.StatusServiceUnavailable},
		{fmt.Errorf("unexpected"), fiber.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusCode(tt.err))
		})
	}
}
