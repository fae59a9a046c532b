package importer

import (
	"studio-crm/internal/common/api"
	"studio-crm/internal/config"
	"studio-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ImportApi struct {
	ImportController *ImportController
	Config           *config.Config
}

func NewImportApi(importController *ImportController, cfg *config.Config) api.Route {
	return &ImportApi{
		ImportController: importController,
		Config:           cfg,
	}
}

func (api *ImportApi) Setup(app *fiber.App) {
	group := app.Group("/api/import", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Post("/text", api.ImportController.ImportText)
	group.Post("/file", api.ImportController.ImportFile)
}
