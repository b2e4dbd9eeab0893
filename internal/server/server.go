package server

import (
	"Hoard/cmd"
	"Hoard/internal/routers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// NewApp builds the fiber application with every route registered. Listening
// is left to the caller.
func NewApp(server *cmd.Server) *fiber.App {
	cfg := server.Configuration
	app := fiber.New(fiber.Config{
		BodyLimit:   cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency: cfg.Server.Concurrency * 1024,
		AppName:     "Hoard",
	})

	app.Use(logger.New(logger.Config{
		Output: server.LogService.Log.Writer(),
	}))

	routers.SetupRoutes(app, server)
	return app
}
