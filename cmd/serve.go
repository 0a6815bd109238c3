package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"stock-sync/core/loader"
	"stock-sync/core/logger"
	"stock-sync/core/middleware/auth"
	"stock-sync/core/middleware/rayid"
	"stock-sync/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "stock-sync/docs/swagger"
)

// @title Stock Sync API
// @version 1.0
// @description Triggers supplier feed syncs to Ozon and Yandex Market and lists journalled runs.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP trigger API",
	Long:  `Starts the HTTP server so syncs can be triggered remotely, and initializes all enabled features.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// 1. Configuration and logger
		b, err := loadBootstrap()
		if err != nil {
			return err
		}
		logg := b.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Service; misconfigured marketplaces are skipped rather than fatal
		svc, err := b.service(ctx, nil)
		if err != nil {
			return err
		}

		// 3. Fiber app
		app, err := newServer(b, svc)
		if err != nil {
			return err
		}

		// 4. Start server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", b.cfg.Server.Port), zap.Strings("targets", svc.Targets()))
			errCh <- app.Listen(":" + b.cfg.Server.Port)
		}()

		// 5. Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-c:
		}
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

// newServer builds the fiber app with middleware and features registered.
func newServer(b *bootstrap, svc *inventory.Service) (*fiber.App, error) {
	logg := b.logger

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", handleHealth)

	app.Use(auth.New(auth.Config{
		ApiKey: b.cfg.Server.ApiKey,
		Skip:   []string{"/health", "/swagger"},
	}))

	mgr := loader.NewManager()
	mgr.Register(inventory.NewFeature(svc, logg, b.cfg.Server))

	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return nil, err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	return app, nil
}

// handleHealth reports liveness.
// @Summary Health Check
// @Description Reports that the server is up.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string "OK"
// @Router /health [get]
func handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
