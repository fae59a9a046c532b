package event

import (
	"studio-crm/internal/common/models"

	"github.com/gofiber/fiber/v2"
)

type EventController struct {
	EventService EventService
}

func NewEventController(eventService EventService) *EventController {
	return &EventController{
		EventService: eventService,
	}
}

// ListEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /api/events [get]
func (ctrl *EventController) ListEvents(ctx *fiber.Ctx) error {
	return ctx.JSON(ctrl.EventService.List(ctx.UserContext()))
}

// GetEvent godoc
// @Summary Get event
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]interface{}
// @Router /api/events/{id} [get]
func (ctrl *EventController) GetEvent(ctx *fiber.Ctx) error {
	e, err := ctrl.EventService.Get(ctx.UserContext(), ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	return ctx.JSON(e)
}

// CreateEvent godoc
// @Summary Create event
// @Tags events
// @Accept json
// @Produce json
// @Param event body models.Event true "Event"
// @Success 201 {array} models.Event
// @Failure 400 {object} map[string]interface{}
// @Router /api/events [post]
func (ctrl *EventController) CreateEvent(ctx *fiber.Ctx) error {
	var e models.Event
	if err := ctx.BodyParser(&e); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctrl.EventService.Create(ctx.UserContext(), e)
	return ctx.Status(fiber.StatusCreated).JSON(ctrl.EventService.List(ctx.UserContext()))
}

// UpdateEvent godoc
// @Summary Update event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param event body models.Event true "Event"
// @Success 200 {array} models.Event
// @Failure 400 {object} map[string]interface{}
// @Router /api/events/{id} [put]
func (ctrl *EventController) UpdateEvent(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	merged := models.Event{}
	if existing, err := ctrl.EventService.Get(ctx.UserContext(), id); err == nil {
		merged = *existing
	}
	if err := ctx.BodyParser(&merged); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctrl.EventService.Update(ctx.UserContext(), id, merged)
	return ctx.JSON(ctrl.EventService.List(ctx.UserContext()))
}

// DeleteEvent godoc
// @Summary Delete event
// @Tags events
// @Param id path string true "Event ID"
// @Success 204 {object} nil
// @Router /api/events/{id} [delete]
func (ctrl *EventController) DeleteEvent(ctx *fiber.Ctx) error {
	ctrl.EventService.Delete(ctx.UserContext(), ctx.Params("id"))
	return ctx.SendStatus(fiber.StatusNoContent)
}
