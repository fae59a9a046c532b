package main

import (
	"context"
	"fmt"
	"log"

	common_api "studio-crm/internal/common/api"
	"studio-crm/internal/config"
	"studio-crm/internal/database"
	"studio-crm/internal/features/auth"
	"studio-crm/internal/features/client"
	cron_feature "studio-crm/internal/features/cron"
	"studio-crm/internal/features/dashboard"
	"studio-crm/internal/features/event"
	"studio-crm/internal/features/export"
	"studio-crm/internal/features/importer"
	"studio-crm/internal/features/invoice"
	sync_feature "studio-crm/internal/features/sync"
	"studio-crm/internal/features/system"
	"studio-crm/internal/features/vendors"
	"studio-crm/internal/logger"
	"studio-crm/internal/middleware"
	"studio-crm/internal/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// NewStore hydrates the aggregate from the local snapshot (falling back to
// sample data) and wires the fire-and-forget file persister.
func NewStore(cfg *config.Config, zapLogger *zap.Logger) *store.Store {
	persister := store.NewFilePersister(cfg.DataPath, zapLogger)
	return store.NewStore(store.Load(cfg.DataPath, zapLogger), persister, zapLogger)
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),    // Cast to Interface
		fx.ResultTags(`group:"routes"`), // Add to Group
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d routes\n", len(routes))
}

// RegisterAllRoutesWithAnnotation wraps RegisterAllRoutes with fx annotations
var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			// Load Config
			config.LoadConfig,

			// Initialize Logger
			logger.NewLogger,

			// Initialize Fiber Server
			NewFiberServer,

			// Initialize Database (optional remote mirror)
			database.NewDatabase,

			// Initialize Store
			NewStore,
			sync_feature.NewMirrorRepository,

			// Initialize Services
			auth.NewAuthService,
			client.NewClientService,
			vendors.NewVendorService,
			event.NewEventService,
			invoice.NewInvoiceService,
			dashboard.NewDashboardService,
			importer.NewImportService,
			export.NewExportService,
			sync_feature.NewSyncService,
			cron_feature.NewCronService,

			// Initialize Controllers
			auth.NewAuthController,
			client.NewClientController,
			vendors.NewVendorController,
			event.NewEventController,
			invoice.NewInvoiceController,
			dashboard.NewDashboardController,
			importer.NewImportController,
			export.NewExportController,
			sync_feature.NewSyncController,
			system.NewWebSocketController,

			// Initialize API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(client.NewClientApi),
			AsRoute(vendors.NewVendorApi),
			AsRoute(event.NewEventApi),
			AsRoute(invoice.NewInvoiceApi),
			AsRoute(dashboard.NewDashboardApi),
			AsRoute(importer.NewImportApi),
			AsRoute(export.NewExportApi),
			AsRoute(sync_feature.NewSyncApi),
			AsRoute(system.NewHealthApi),
			AsRoute(system.NewWebSocketApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			// Register Routes & Start
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, syncService sync_feature.SyncService) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return syncService.Start(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return syncService.Stop()
					},
				})
			},
			func(lc fx.Lifecycle, cronService cron_feature.CronService) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return cronService.InitializeScheduler(ctx)
					},
					OnStop: func(ctx context.Context) error {
						return cronService.StopScheduler()
					},
				})
			},
		),
	)

	app.Run()
}
