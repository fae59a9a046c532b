package auth

import (
	"studio-crm/internal/common/api"
	"studio-crm/internal/config"
	"studio-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type AuthApi struct {
	AuthController *AuthController
	Config         *config.Config
}

func NewAuthApi(authController *AuthController, cfg *config.Config) api.Route {
	return &AuthApi{
		AuthController: authController,
		Config:         cfg,
	}
}

func (api *AuthApi) Setup(app *fiber.App) {
	group := app.Group("/api/auth")

	group.Post("/login", api.AuthController.Login)
	group.Get("/session", middleware.AuthMiddleware(api.Config.SkipAuth), api.AuthController.GetSession)
}
