package event

import (
	"studio-crm/internal/common/api"
	"studio-crm/internal/config"
	"studio-crm/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type EventApi struct {
	EventController *EventController
	Config          *config.Config
}

func NewEventApi(eventController *EventController, cfg *config.Config) api.Route {
	return &EventApi{
		EventController: eventController,
		Config:          cfg,
	}
}

func (api *EventApi) Setup(app *fiber.App) {
	group := app.Group("/api/events", middleware.AuthMiddleware(api.Config.SkipAuth))

	group.Get("/", api.EventController.ListEvents)
	group.Post("/", api.EventController.CreateEvent)
	group.Get("/:id", api.EventController.GetEvent)
	group.Put("/:id", api.EventController.UpdateEvent)
	group.Delete("/:id", api.EventController.DeleteEvent)
}
