package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"country-currency/core/loader"
	"country-currency/feature/countries"
	"country-currency/feature/summary"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Country Currency API
// @version 1.0
// @description Country data cached from RestCountries with USD exchange rates and estimated GDP.
// @host localhost:3000
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the country currency server",
	Long:  `Starts the HTTP server, the summary worker and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		c, err := bootstrap(ctx)
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		defer c.close()
		zap.ReplaceGlobals(c.logger)
		logg := c.logger.With(zap.String("environment", c.cfg.Server.Environment))

		// Summary worker lives as long as the server.
		var publisher summary.Publisher = summary.Discard
		var images countries.ImageSource
		if c.reporter != nil {
			go c.reporter.Run(ctx)
			publisher = c.reporter
			images = c.reporter
		}

		svc := countries.NewService(c.engine(publisher), c.store, images, logg)

		mgr := loader.NewManager(logg)
		mgr.Register(countries.NewFeature(svc))

		app, err := newServer(c.cfg.Server, c.cfg.Metrics, c.metrics, mgr, logg)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server",
				zap.String("port", c.cfg.Server.Port),
				zap.Bool("auth", c.cfg.Server.AuthEnabled()))
			if err := app.Listen(c.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down server...")
		if err := app.ShutdownWithTimeout(c.cfg.Server.ShutdownTimeout()); err != nil {
			logg.Error("Shutdown failed", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
