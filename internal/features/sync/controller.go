package sync

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

type SyncController struct {
	SyncService SyncService
}

func NewSyncController(syncService SyncService) *SyncController {
	return &SyncController{
		SyncService: syncService,
	}
}

// GetStatus godoc
// @Summary Remote mirror status
// @Tags sync
// @Produce json
// @Success 200 {object} SyncStatus
// @Router /api/sync/status [get]
func (ctrl *SyncController) GetStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(ctrl.SyncService.Status(ctx.UserContext()))
}

// ListLogs godoc
// @Summary Recent mirror write attempts
// @Tags sync
// @Produce json
// @Param limit query int false "Max entries (default 20)"
// @Success 200 {array} SyncLog
// @Router /api/sync/logs [get]
func (ctrl *SyncController) ListLogs(ctx *fiber.Ctx) error {
	limit, _ := strconv.Atoi(ctx.Query("limit", "20"))
	return ctx.JSON(ctrl.SyncService.ListLogs(ctx.UserContext(), limit))
}

// RunSync godoc
// @Summary Force a mirror flush
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/sync/run [post]
func (ctrl *SyncController) RunSync(ctx *fiber.Ctx) error {
	if err := ctrl.SyncService.Run(ctx.UserContext()); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(fiber.Map{"message": "sync triggered"})
}
