package api

import "github.com/gofiber/fiber/v2"

// SubmitPayment records a contribution for the session account. The owner is
// always the caller; a member cannot submit on another member's behalf.
func (handler *Handler) SubmitPayment(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := submitPaymentInput{}
	if err := handler.parseInput(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	payment, err := handler.payments.Submit(account.ID, input.Amount, input.Category, input.ReceiptReference)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"ok": true, "payment": payment})
}

func (handler *Handler) ListMyPayments(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payments, err := handler.payments.ListForOwner(account.ID)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"payments": payments})
}

func (handler *Handler) ListPayments(c *fiber.Ctx) error {
	if c.Query("status") == "pending" {
		payments, err := handler.payments.ListPending()
		if err != nil {
			return handler.respondServiceError(c, err)
		}
		return c.JSON(fiber.Map{"payments": payments})
	}

	payments, err := handler.payments.ListAll()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"payments": payments})
}

func (handler *Handler) ReviewPayment(c *fiber.Ctx) error {
	input := reviewPaymentInput{}
	if err := handler.parseInput(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	payment, err := handler.payments.Review(c.Params("id"), input.Decision)
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "payment": payment})
}
