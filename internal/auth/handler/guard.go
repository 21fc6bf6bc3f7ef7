package handler

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/gomeliGithub/maria-project-sub000/internal/auth/dto"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/service"
	apperrors "github.com/gomeliGithub/maria-project-sub000/internal/errors"
	"github.com/gomeliGithub/maria-project-sub000/pkg/constant"
)

// Gate runs before protected handlers and decides allow or deny. Routes
// without a Require middleware are public and never reach it.
type Gate struct {
	clientService *service.ClientService
	tokenService  service.TokenController
}

func NewGate(clientService *service.ClientService, tokenService service.TokenController) *Gate {
	return &Gate{
		clientService: clientService,
		tokenService:  tokenService,
	}
}

// Require gates a route on the given client types. With no types, any
// authenticated client passes. The sign-in route is special: there is no
// token yet, so the gate validates the submitted credentials instead.
func (g *Gate) Require(clientTypes ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// A present but unparseable body is rejected before any auth
		// work happens.
		if body := c.Body(); len(body) > 0 && !json.Valid(body) {
			return apperrors.ErrMalformedBody
		}

		if c.Path() == constant.SignInPath {
			var input dto.SignInInput
			if err := c.BodyParser(&input); err != nil {
				return apperrors.ErrMalformedBody
			}

			if _, err := g.clientService.ValidateCredentials(c.UserContext(), input.Login,
				input.Password); err != nil {
				return err
			}

			return c.Next()
		}

		fgpCookie := c.Cookies(constant.FingerprintCookieName)
		if fgpCookie == "" {
			return apperrors.ErrMissingFingerprint
		}

		token, err := g.tokenService.ExtractBearerToken(c.Get(fiber.HeaderAuthorization), c.Path(), nil)
		if err != nil {
			return err
		}

		claims, err := g.clientService.ValidateClient(c.UserContext(), token, fgpCookie, clientTypes)
		if err != nil {
			return err
		}

		c.Locals(constant.ActiveClientLocalsKey, claims)

		return c.Next()
	}
}
