package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-e/flint/core/loader"
	"github.com/san-e/flint/core/logger"
	"github.com/san-e/flint/core/middleware/auth"
	"github.com/san-e/flint/core/middleware/rayid"
	"github.com/san-e/flint/feature/server"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the mission query server",
	Long:  `Indexes the installation and serves the mission model as a read-only JSON API.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, logg, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to initialize: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		svc, err := newService(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to open installation", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		mgr := loader.NewManager()
		mgr.Register(server.NewFeature(svc, logg))

		// RayID first so everything downstream can trace.
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

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
