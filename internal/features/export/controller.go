package export

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

type ExportController struct {
	ExportService ExportService
}

func NewExportController(exportService ExportService) *ExportController {
	return &ExportController{
		ExportService: exportService,
	}
}

// ExportCollection godoc
// @Summary Export a collection as CSV
// @Tags export
// @Produce text/csv
// @Param collection path string true "clients, vendors, events or invoices"
// @Success 200 {string} string
// @Failure 400 {object} map[string]interface{}
// @Router /api/export/{collection} [get]
func (ctrl *ExportController) ExportCollection(ctx *fiber.Ctx) error {
	collection := ctx.Params("collection")

	csvText, err := ctrl.ExportService.ExportCollection(ctx.UserContext(), collection)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctx.Set(fiber.HeaderContentType, "text/csv")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.csv"`, collection))
	return ctx.SendString(csvText)
}
