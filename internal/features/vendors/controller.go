package vendors

import (
	"studio-crm/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

type VendorController struct {
	VendorService VendorService
}

func NewVendorController(vendorService VendorService) *VendorController {
	return &VendorController{
		VendorService: vendorService,
	}
}

// ListVendors godoc
// @Summary List vendors
// @Tags vendors
// @Produce json
// @Success 200 {array} models.Vendor
// @Router /api/vendors [get]
func (ctrl *VendorController) ListVendors(ctx *fiber.Ctx) error {
	return ctx.JSON(ctrl.VendorService.List(ctx.UserContext()))
}

// GetVendor godoc
// @Summary Get vendor
// @Tags vendors
// @Produce json
// @Param id path string true "Vendor ID"
// @Success 200 {object} models.Vendor
// @Failure 404 {object} map[string]interface{}
// @Router /api/vendors/{id} [get]
func (ctrl *VendorController) GetVendor(ctx *fiber.Ctx) error {
	v, err := ctrl.VendorService.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(v)
}

// CreateVendor godoc
// @Summary Create vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param vendor body models.Vendor true "Vendor"
// @Success 201 {array} models.Vendor
// @Failure 400 {object} map[string]interface{}
// @Router /api/vendors [post]
func (ctrl *VendorController) CreateVendor(ctx *fiber.Ctx) error {
	var v models.Vendor
	if err := ctx.BodyParser(&v); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctrl.VendorService.Create(ctx.UserContext(), v)
	return ctx.Status(fiber.StatusCreated).JSON(ctrl.VendorService.List(ctx.UserContext()))
}

// UpdateVendor godoc
// @Summary Update vendor
// @Tags vendors
// @Accept json
// @Produce json
// @Param id path string true "Vendor ID"
// @Param vendor body models.Vendor true "Vendor"
// @Success 200 {array} models.Vendor
// @Failure 400 {object} map[string]interface{}
// @Router /api/vendors/{id} [put]
func (ctrl *VendorController) UpdateVendor(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	merged := models.Vendor{}
	if existing, err := ctrl.VendorService.Get(ctx.UserContext(), id); err == nil {
		merged = *existing
	}
	if err := ctx.BodyParser(&merged); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctrl.VendorService.Update(ctx.UserContext(), id, merged)
	return ctx.JSON(ctrl.VendorService.List(ctx.UserContext()))
}

// DeleteVendor godoc
// @Summary Delete vendor
// @Description Delete a vendor and prune it from every event's assignments and costs
// @Tags vendors
// @Param id path string true "Vendor ID"
// @Success 204 {object} nil
// @Router /api/vendors/{id} [delete]
func (ctrl *VendorController) DeleteVendor(ctx *fiber.Ctx) error {
	ctrl.VendorService.Delete(ctx.UserContext(), ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}
