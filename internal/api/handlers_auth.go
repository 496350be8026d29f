package api

import (
	"errors"

	"contribhub/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input := registerInput{}
	if err := handler.parseInput(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	account, err := handler.accounts.Register(input.Name, input.Email)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"ok":      true,
		"account": accountToView(account),
	})
}

// Login keeps the four authentication failures distinct in the response:
// unknown membership id, wrong credential, pending approval, deactivated.
func (handler *Handler) Login(c *fiber.Ctx) error {
	input := loginInput{}
	if err := handler.parseInput(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	account, err := handler.auth.Authenticate(input.MembershipID, input.Credential)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			return apiError(c, fiber.StatusUnauthorized, "no account matches that membership id")
		case errors.Is(err, services.ErrInvalidCredential):
			return apiError(c, fiber.StatusUnauthorized, "incorrect credential")
		case errors.Is(err, services.ErrAccountPending):
			return apiError(c, fiber.StatusForbidden, "account pending manager approval")
		case errors.Is(err, services.ErrAccountDeactivated):
			return apiError(c, fiber.StatusForbidden, "this account has been deactivated")
		default:
			return handler.respondServiceError(c, err)
		}
	}

	if err := handler.setAuthCookie(c, account); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"ok":                        true,
		"account":                   accountToView(account),
		"credential_reset_required": account.RequiresCredentialReset,
	})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(fiber.Map{"account": accountToView(account)})
}

// ChangeCredential serves both the forced first-login reset and any later
// voluntary change.
func (handler *Handler) ChangeCredential(c *fiber.Ctx) error {
	account, ok := currentAccount(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	input := changeCredentialInput{}
	if err := handler.parseInput(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	updated, err := handler.accounts.SetCredential(account.ID, input.NewCredential)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"ok": true, "account": accountToView(updated)})
}
