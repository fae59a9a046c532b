package client

import (
	"studio-crm/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

type ClientController struct {
	ClientService ClientService
}

func NewClientController(clientService ClientService) *ClientController {
	return &ClientController{
		ClientService: clientService,
	}
}

// ListClients godoc
// @Summary List clients
// @Description List all clients, newest first
// @Tags clients
// @Produce json
// @Success 200 {array} models.Client
// @Router /api/clients [get]
func (ctrl *ClientController) ListClients(ctx *fiber.Ctx) error {
	return ctx.JSON(ctrl.ClientService.List(ctx.UserContext()))
}

// GetClient godoc
// @Summary Get client
// @Tags clients
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} models.Client
// @Failure 404 {object} map[string]interface{}
// @Router /api/clients/{id} [get]
func (ctrl *ClientController) GetClient(ctx *fiber.Ctx) error {
	c, err := ctrl.ClientService.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(c)
}

// CreateClient godoc
// @Summary Create client
// @Description Create a new client; an omitted status defaults to "lead"
// @Tags clients
// @Accept json
// @Produce json
// @Param client body models.Client true "Client"
// @Success 201 {array} models.Client
// @Failure 400 {object} map[string]interface{}
// @Router /api/clients [post]
func (ctrl *ClientController) CreateClient(ctx *fiber.Ctx) error {
	var c models.Client
	if err := ctx.BodyParser(&c); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctrl.ClientService.Create(ctx.UserContext(), c)
	return ctx.Status(fiber.StatusCreated).JSON(ctrl.ClientService.List(ctx.UserContext()))
}

// UpdateClient godoc
// @Summary Update client
// @Description Merge the supplied fields over the existing record; supplied fields win
// @Tags clients
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param client body models.Client true "Client"
// @Success 200 {array} models.Client
// @Failure 400 {object} map[string]interface{}
// @Router /api/clients/{id} [put]
func (ctrl *ClientController) UpdateClient(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	// Start from the existing record so the body acts as a patch: fields the
	// caller omits keep their current values.
	merged := models.Client{}
	if existing, err := ctrl.ClientService.Get(ctx.UserContext(), id); err == nil {
		merged = *existing
	}
	if err := ctx.BodyParser(&merged); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctrl.ClientService.Update(ctx.UserContext(), id, merged)
	return ctx.JSON(ctrl.ClientService.List(ctx.UserContext()))
}

// DeleteClient godoc
// @Summary Delete client
// @Description Delete a client; events referencing it keep their dangling id
// @Tags clients
// @Param id path string true "Client ID"
// @Success 204 {object} nil
// @Router /api/clients/{id} [delete]
func (ctrl *ClientController) DeleteClient(ctx *fiber.Ctx) error {
	ctrl.ClientService.Delete(ctx.UserContext(), ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}
