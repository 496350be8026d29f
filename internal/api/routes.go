package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-credential", handler.AuthRequired, handler.ChangeCredential)

	accounts := api.Group("/accounts", handler.AuthRequired, handler.ManagerOnly)
	accounts.Get("", handler.ListAccounts)
	accounts.Post("/:id/approve", handler.ApproveAccount)
	accounts.Post("/:id/reject", handler.RejectAccount)
	accounts.Post("/:id/reset-credential", handler.ResetAccountCredential)
	accounts.Delete("/:id", handler.DeleteAccount)

	payments := api.Group("/payments", handler.AuthRequired)
	payments.Post("", handler.SubmitPayment)
	payments.Get("/mine", handler.ListMyPayments)
	payments.Get("", handler.ManagerOnly, handler.ListPayments)
	payments.Post("/:id/review", handler.ManagerOnly, handler.ReviewPayment)

	ledger := api.Group("/ledger", handler.AuthRequired)
	ledger.Get("/mine", handler.MyLedger)
	ledger.Get("", handler.ManagerOnly, handler.ConsolidatedLedger)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.ListMyNotifications)
	notifications.Post("", handler.ManagerOnly, handler.SendNotification)

	settings := api.Group("/settings", handler.AuthRequired, handler.ManagerOnly)
	settings.Get("", handler.GetSettings)
	settings.Put("", handler.UpdateSettings)
}
