package client

import (
	"studio-crm/internal/common/api"
	"studio-crm/internal/config"
	"studio-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ClientApi struct {
	ClientController *ClientController
	Config           *config.Config
}

func NewClientApi(clientController *ClientController, cfg *config.Config) api.Route {
	return &ClientApi{
		ClientController: clientController,
		Config:           cfg,
	}
}

func (api *ClientApi) Setup(app *fiber.App) {
	group := app.Group("/api/clients", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.ClientController.ListClients)
	group.Post("/", api.ClientController.CreateClient)
	group.Get("/:id", api.ClientController.GetClient)
	group.Put("/:id", api.ClientController.UpdateClient)
	group.Delete("/:id", api.ClientController.DeleteClient)
}
