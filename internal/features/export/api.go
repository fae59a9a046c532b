package export

import (
	"studio-crm/internal/common/api"
	"studio-crm/internal/config"
	"studio-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ExportApi struct {
	ExportController *ExportController
	Config           *config.Config
}

func NewExportApi(exportController *ExportController, cfg *config.Config) api.Route {
	return &ExportApi{
		ExportController: exportController,
		Config:           cfg,
	}
}

func (api *ExportApi) Setup(app *fiber.App) {
	group := app.Group("/api/export", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/:collection", api.ExportController.ExportCollection)
}
