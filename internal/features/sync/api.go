package sync

import (
	"studio-crm/internal/common/api"
	"studio-crm/internal/config"
	"studio-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type SyncApi struct {
	SyncController *SyncController
	Config         *config.Config
}

func NewSyncApi(syncController *SyncController, cfg *config.Config) api.Route {
	return &SyncApi{
		SyncController: syncController,
		Config:         cfg,
	}
}

func (api *SyncApi) Setup(app *fiber.App) {
	group := app.Group("/api/sync", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/status", api.SyncController.GetStatus)
	group.Get("/logs", api.SyncController.ListLogs)
	group.Post("/run", api.SyncController.RunSync)
}
