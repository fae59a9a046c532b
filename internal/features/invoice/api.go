package invoice

import (
	"studio-crm/internal/common/api"
	"studio-crm/internal/config"
	"studio-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type InvoiceApi struct {
	InvoiceController *InvoiceController
	Config            *config.Config
}

func NewInvoiceApi(invoiceController *InvoiceController, cfg *config.Config) api.Route {
	return &InvoiceApi{
		InvoiceController: invoiceController,
		Config:            cfg,
	}
}

func (api *InvoiceApi) Setup(app *fiber.App) {
	group := app.Group("/api/invoices", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.InvoiceController.ListInvoices)
	group.Post("/", api.InvoiceController.CreateInvoice)
	group.Get("/:id", api.InvoiceController.GetInvoice)
	group.Put("/:id", api.InvoiceController.UpdateInvoice)
	group.Delete("/:id", api.InvoiceController.DeleteInvoice)

	group.Post("/:id/billing/generate", api.InvoiceController.GenerateBilling)
	group.Post("/:id/billing/send", api.InvoiceController.SendBilling)
	group.Post("/:id/billing/collect", api.InvoiceController.CollectBilling)
}
