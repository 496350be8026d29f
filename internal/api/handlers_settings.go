package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetSettings(c *fiber.Ctx) error {
	settings, err := handler.settings.Load()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"settings": settings})
}

func (handler *Handler) UpdateSettings(c *fiber.Ctx) error {
	input := updateSettingsInput{}
	if err := handler.parseInput(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	settings, err := handler.settings.SetRemindersEnabled(*input.RemindersEnabled)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "settings": settings})
}
