package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gomeliGithub/maria-project-sub000/pkg/constant"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, gate *Gate) {
	app.Post(constant.SignUpPath, h.SignUp)
	app.Post(constant.SignInPath, gate.Require(), h.SignIn)
	app.Post(constant.SignOutPath, h.SignOut)
	app.Get(constant.ActiveClientPath, h.GetActiveClient)

	// Admin-only endpoints
	admin := app.Group("/api/v1/admin", gate.Require(constant.ClientTypeAdmin))
	admin.Get("/whoami", h.WhoAmI)

	// Any authenticated client
	client := app.Group("/api/v1/client", gate.Require())
	client.Get("/whoami", h.WhoAmI)
}
