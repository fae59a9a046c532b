package dashboard

import (
	"studio-crm/internal/common/api"
	"studio-crm/internal/config"
	"studio-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type DashboardApi struct {
	DashboardController *DashboardController
	Config              *config.Config
}

func NewDashboardApi(dashboardController *DashboardController, cfg *config.Config) api.Route {
	return &DashboardApi{
		DashboardController: dashboardController,
		Config:              cfg,
	}
}

func (api *DashboardApi) Setup(app *fiber.App) {
	group := app.Group("/api/dashboard", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.DashboardController.GetSummary)
}
