package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/gomeliGithub/maria-project-sub000/internal/errors"
)

// NewErrorHandler builds the global Fiber error handler. Every denied
// gate decision and handler failure ends up here and is rendered as a
// structured error response.
func NewErrorHandler(log *zap.SugaredLogger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := apperrors.StatusCode(err)

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.Errorw("request failed", "path", c.Path(), "error", err)
		}

		return c.Status(code).JSON(fiber.Map{
			"statusCode": code,
			"message":    err.Error(),
			"timestamp":  time.Now().Format(time.RFC3339),
			"path":       c.Path(),
		})
	}
}
