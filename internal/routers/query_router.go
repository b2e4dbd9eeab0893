package routers

import (
	"Hoard/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupQueryRouter(app *fiber.App, server *cmd.Server) {
	app.Get("/tree", server.TreeHandler.GetTree)
	app.Get("/search", server.SearchHandler.Search)
	app.Get("/statistics", server.StatisticsHandler.GetStatistics)
}

func SetupExchangeRouter(app *fiber.App, server *cmd.Server) {
	exchangeHandler := server.ExchangeHandler
	app.Get("/export", exchangeHandler.Export)
	app.Post("/import", exchangeHandler.Import)
	app.Get("/settings", server.SettingsHandler.GetSettings)
	app.Put("/settings", server.SettingsHandler.SaveSettings)
}
