package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gomeliGithub/maria-project-sub000/config"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/dto"
	"github.com/gomeliGithub/maria-project-sub000/internal/auth/service"
	apperrors "github.com/gomeliGithub/maria-project-sub000/internal/errors"
	"github.com/gomeliGithub/maria-project-sub000/pkg/constant"
)

type AuthHandler struct {
	clientService *service.ClientService
	tokenService  service.TokenController
	cfg           *config.Config
}

func NewAuthHandler(clientService *service.ClientService, tokenService service.TokenController,
	cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		clientService: clientService,
		tokenService:  tokenService,
		cfg:           cfg,
	}
}

func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var input dto.SignUpInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.ErrMalformedBody
	}

	client, err := h.clientService.SignUp(c.UserContext(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":    client.ID,
		"login": client.Login,
	})
}

func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	var input dto.SignInInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.ErrMalformedBody
	}

	// A client re-authenticating while still holding a session presents
	// its old token; that one gets revoked before the new one is minted.
	oldToken, err := h.tokenService.ExtractBearerToken(c.Get(fiber.HeaderAuthorization), c.Path(),
		constant.TokenTolerantPaths)
	if err != nil {
		return err
	}

	token, fgp, err := h.clientService.SignIn(c.UserContext(), input, oldToken)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     constant.FingerprintCookieName,
		Value:    fgp.Value,
		MaxAge:   h.cfg.CookieMaxAgeMin * 60,
		Secure:   h.cfg.CookieSecure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})

	return c.Status(fiber.StatusOK).JSON(dto.TokenResponse{AccessToken: token})
}

func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	token, err := h.tokenService.ExtractBearerToken(c.Get(fiber.HeaderAuthorization), c.Path(),
		constant.TokenTolerantPaths)
	if err != nil {
		return err
	}

	if err := h.clientService.SignOut(c.UserContext(), token); err != nil {
		return err
	}

	c.ClearCookie(constant.FingerprintCookieName)

	return c.SendStatus(fiber.StatusOK)
}

func (h *AuthHandler) GetActiveClient(c *fiber.Ctx) error {
	token, err := h.tokenService.ExtractBearerToken(c.Get(fiber.HeaderAuthorization), c.Path(),
		constant.TokenTolerantPaths)
	if err != nil {
		return err
	}

	fgpCookie := c.Cookies(constant.FingerprintCookieName)

	output, err := h.clientService.ActiveClient(c.UserContext(), token, fgpCookie, c.Query("locale"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(output)
}

// WhoAmI returns the identity the gate resolved for this request.
func (h *AuthHandler) WhoAmI(c *fiber.Ctx) error {
	claims, ok := c.Locals(constant.ActiveClientLocalsKey).(*service.ClientClaims)
	if !ok {
		return apperrors.ErrMissingToken
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"login": claims.Login,
		"type":  claims.Type,
	})
}
