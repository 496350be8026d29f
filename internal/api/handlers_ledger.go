package api

import (
	"contribhub/internal/services"
	"github.com/gofiber/fiber/v2"
)

// MyLedger returns the session account's approved totals per category plus
// the grand total. Pending and rejected payments never count.
func (handler *Handler) MyLedger(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payments, err := handler.payments.ListForOwner(account.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"totals":      services.TotalsByCategory(payments),
		"grand_total": services.GrandTotal(payments),
	})
}

// ConsolidatedLedger is the manager's view: one row per approved client
// account, in store order.
func (handler *Handler) ConsolidatedLedger(c *fiber.Ctx) error {
	accounts, err := handler.accounts.List()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	payments, err := handler.payments.ListAll()
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"entries":     ledgerToViews(services.PerAccountLedger(accounts, payments)),
		"grand_total": services.GrandTotal(payments),
	})
}
