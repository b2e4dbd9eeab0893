package routers

import (
	"Hoard/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupRecordRouter(app *fiber.App, server *cmd.Server) {
	recordHandler := server.RecordHandler
	moverHandler := server.MoverHandler
	app.Get("/records", recordHandler.ListRecords)
	app.Post("/records", recordHandler.CreateRecord)
	app.Get("/records/:id", recordHandler.GetRecord)
	app.Patch("/records/:id", recordHandler.UpdateRecord)
	app.Delete("/records/:id", recordHandler.DeleteRecord)
	app.Post("/records/:id/archive", recordHandler.ArchiveRecord)
	app.Post("/records/:id/restore", recordHandler.RestoreRecord)
	app.Post("/records/:id/copy", moverHandler.Copy)
	app.Post("/records/:id/move", moverHandler.Move)
	app.Get("/records/:id/events", recordHandler.RecordEvents)
	app.Get("/records/:id/locations", recordHandler.RecordLocations)
	app.Get("/events", recordHandler.ListEvents)
}

func SetupLoanRouter(app *fiber.App, server *cmd.Server) {
	loanHandler := server.LoanHandler
	app.Get("/loans", loanHandler.ListLoans)
	app.Post("/records/:id/loan", loanHandler.Loan)
	app.Post("/records/:id/return", loanHandler.Return)
	app.Get("/records/:id/available", loanHandler.Available)
}
