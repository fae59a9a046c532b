package importer

import (
	"github.com/gofiber/fiber/v2"
)

type ImportController struct {
	ImportService ImportService
}

func NewImportController(importService ImportService) *ImportController {
	return &ImportController{
		ImportService: importService,
	}
}

type textImportRequest struct {
	Text string `json:"text"`
}

// ImportText godoc
// @Summary Import clients from pasted text
// @Description One client per line; delimiter is "|", "," or " - "
// @Tags import
// @Accept json
// @Produce json
// @Param body body textImportRequest true "Pasted text"
// @Success 200 {object} ImportResult
// @Failure 400 {object} map[string]interface{}
// @Router /api/import/text [post]
func (ctrl *ImportController) ImportText(ctx *fiber.Ctx) error {
	var req textImportRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.JSON(ctrl.ImportService.ImportText(ctx.UserContext(), req.Text))
}

// ImportFile godoc
// @Summary Import clients from a CSV or XLSX file
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Client file"
// @Success 200 {object} ImportResult
// @Failure 400 {object} map[string]interface{}
// @Router /api/import/file [post]
func (ctrl *ImportController) ImportFile(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer file.Close()

	result, err := ctrl.ImportService.ImportFile(ctx.UserContext(), file, fileHeader.Filename)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(result)
}
