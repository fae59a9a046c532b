package invoice

import (
	"studio-crm/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

type InvoiceController struct {
	InvoiceService InvoiceService
}

func NewInvoiceController(invoiceService InvoiceService) *InvoiceController {
	return &InvoiceController{
		InvoiceService: invoiceService,
	}
}

// ListInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Success 200 {array} models.Invoice
// @Router /api/invoices [get]
func (ctrl *InvoiceController) ListInvoices(ctx *fiber.Ctx) error {
	return ctx.JSON(ctrl.InvoiceService.List(ctx.UserContext()))
}

// GetInvoice godoc
// @Summary Get invoice
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.Invoice
// @Failure 404 {object} map[string]interface{}
// @Router /api/invoices/{id} [get]
func (ctrl *InvoiceController) GetInvoice(ctx *fiber.Ctx) error {
	inv, err := ctrl.InvoiceService.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(inv)
}

// CreateInvoice godoc
// @Summary Create invoice
// @Description Create an invoice; items without ids get fresh ones
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body models.Invoice true "Invoice"
// @Success 201 {array} models.Invoice
// @Failure 400 {object} map[string]interface{}
// @Router /api/invoices [post]
func (ctrl *InvoiceController) CreateInvoice(ctx *fiber.Ctx) error {
	var inv models.Invoice
	if err := ctx.BodyParser(&inv); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctrl.InvoiceService.Create(ctx.UserContext(), inv)
	return ctx.Status(fiber.StatusCreated).JSON(ctrl.InvoiceService.List(ctx.UserContext()))
}

// UpdateInvoice godoc
// @Summary Update invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param invoice body models.Invoice true "Invoice"
// @Success 200 {array} models.Invoice
// @Failure 400 {object} map[string]interface{}
// @Router /api/invoices/{id} [put]
func (ctrl *InvoiceController) UpdateInvoice(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	merged := models.Invoice{}
	if existing, err := ctrl.InvoiceService.Get(ctx.UserContext(), id); err == nil {
		merged = *existing
	}
	if err := ctx.BodyParser(&merged); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctrl.InvoiceService.Update(ctx.UserContext(), id, merged)
	return ctx.JSON(ctrl.InvoiceService.List(ctx.UserContext()))
}

// DeleteInvoice godoc
// @Summary Delete invoice
// @Tags invoices
// @Param id path string true "Invoice ID"
// @Success 204 {object} nil
// @Router /api/invoices/{id} [delete]
func (ctrl *InvoiceController) DeleteInvoice(ctx *fiber.Ctx) error {
	ctrl.InvoiceService.Delete(ctx.UserContext(), ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}

// GenerateBilling godoc
// @Summary Generate external billing document
// @Description Idempotent: the external id is allocated exactly once
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.Invoice
// @Failure 404 {object} map[string]interface{}
// @Router /api/invoices/{id}/billing/generate [post]
func (ctrl *InvoiceController) GenerateBilling(ctx *fiber.Ctx) error {
	inv, err := ctrl.InvoiceService.GenerateBilling(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(inv)
}

// SendBilling godoc
// @Summary Mark external billing document sent
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.Invoice
// @Failure 404 {object} map[string]interface{}
// @Router /api/invoices/{id}/billing/send [post]
func (ctrl *InvoiceController) SendBilling(ctx *fiber.Ctx) error {
	inv, err := ctrl.InvoiceService.SendBilling(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(inv)
}

// CollectBilling godoc
// @Summary Mark external billing document paid
// @Tags invoices
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} models.Invoice
// @Failure 404 {object} map[string]interface{}
// @Router /api/invoices/{id}/billing/collect [post]
func (ctrl *InvoiceController) CollectBilling(ctx *fiber.Ctx) error {
	inv, err := ctrl.InvoiceService.CollectBilling(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(inv)
}
