package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ManagerOnly(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	if !account.IsManager() {
		return apiError(c, fiber.StatusForbidden, "manager access required")
	}
	return c.Next()
}
