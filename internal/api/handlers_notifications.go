package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListMyNotifications(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	notifications, err := handler.notifications.ForAccount(account.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"notifications": notifications})
}

// SendNotification targets one account, or every account when the recipient
// is the broadcast sentinel ALL.
func (handler *Handler) SendNotification(c *fiber.Ctx) error {
	input := sendNotificationInput{}
	if err := handler.parseInput(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	notification, err := handler.notifications.Send(input.RecipientID, input.Body)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "notification": notification})
}
