package cmd

import (
	"country-currency/core/loader"
	"country-currency/core/logger"
	"country-currency/core/metrics"
	"country-currency/core/middleware/auth"
	"country-currency/core/middleware/rayid"
	"country-currency/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	_ "country-currency/docs/swagger"
)

// newServer assembles the Fiber app: public routes first, then the API key
// check, then every enabled feature. m may be nil to disable /metrics.
func newServer(cfg server.Config, metricsCfg metrics.Config, m *metrics.Metrics, mgr *loader.Manager, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID must run first so every log line carries it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Info("Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
		)
		return err
	})

	// Public
	app.Get("/", handleIndex)
	app.Get("/swagger/*", swagger.HandlerDefault)
	if m != nil && metricsCfg.Enabled {
		app.Get(metricsCfg.Path, m.Handler())
	}

	app.Use(auth.New(auth.Config{ApiKey: cfg.ApiKey}))

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

// handleIndex describes the service and its endpoints.
// @Summary Service Info
// @Tags status
// @Produce json
// @Success 200 {object} map[string]any
// @Router / [get]
func handleIndex(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Country Currency API",
		"version": "1.0.0",
		"endpoints": fiber.Map{
			"refresh": "POST /countries/refresh",
			"getAll":  "GET /countries",
			"getOne":  "GET /countries/:name",
			"delete":  "DELETE /countries/:name",
			"status":  "GET /status",
			"image":   "GET /countries/image",
		},
	})
}
