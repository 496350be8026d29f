package api

import (
	"contribhub/internal/models"
	"github.com/gofiber/fiber/v2"
)

const (
	authCookieName    = "contribhub_auth"
	contextAccountKey = "current_account"
)

func currentAccount(c *fiber.Ctx) (models.Account, bool) {
	account, ok := c.Locals(contextAccountKey).(models.Account)
	return account, ok
}
