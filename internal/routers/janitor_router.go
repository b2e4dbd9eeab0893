package routers

import (
	"Hoard/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupJanitorRouter(app *fiber.App, server *cmd.Server) {
	janitorHandler := server.JanitorHandler
	app.Get("/janitor", janitorHandler.Status)
	app.Post("/janitor/clean", janitorHandler.Clean)
}
