package routers

import (
	"Hoard/cmd"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupRecordRouter(app, server)
	SetupLoanRouter(app, server)
	SetupQueryRouter(app, server)
	SetupExchangeRouter(app, server)
	SetupJanitorRouter(app, server)
	app.Get("/metrics", adaptor.HTTPHandler(server.Metrics.Handler()))
}
