package dashboard

import (
	"github.com/gofiber/fiber/v2"
)

type DashboardController struct {
	DashboardService DashboardService
}

func NewDashboardController(dashboardService DashboardService) *DashboardController {
	return &DashboardController{
		DashboardService: dashboardService,
	}
}

// GetSummary godoc
// @Summary Dashboard summary
// @Description Derived pipeline, revenue, deposit and activity figures
// @Tags dashboard
// @Produce json
// @Success 200 {object} Summary
// @Router /api/dashboard [get]
func (ctrl *DashboardController) GetSummary(ctx *fiber.Ctx) error {
	return ctx.JSON(ctrl.DashboardService.Summarize(ctx.UserContext()))
}
