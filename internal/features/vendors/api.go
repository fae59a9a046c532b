package vendors

import (
	"studio-crm/internal/common/api"
	"studio-crm/internal/config"
	"studio-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type VendorApi struct {
	VendorController *VendorController
	Config           *config.Config
}

func NewVendorApi(vendorController *VendorController, cfg *config.Config) api.Route {
	return &VendorApi{
		VendorController: vendorController,
		Config:           cfg,
	}
}

func (api *VendorApi) Setup(app *fiber.App) {
	group := app.Group("/api/vendors", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.VendorController.ListVendors)
	group.Post("/", api.VendorController.CreateVendor)
	group.Get("/:id", api.VendorController.GetVendor)
	group.Put("/:id", api.VendorController.UpdateVendor)
	group.Delete("/:id", api.VendorController.DeleteVendor)
}
