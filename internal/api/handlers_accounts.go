package api

import (
	"contribhub/internal/security"
	"github.com/gofiber/fiber/v2"
)

const generatedCredentialLength = 10

func (handler *Handler) ListAccounts(c *fiber.Ctx) error {
	accounts, err := handler.accounts.List()
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"accounts": accountsToViews(accounts)})
}

// ApproveAccount assigns a membership id and a temporary credential. When the
// manager does not supply a credential, one is generated and returned exactly
// once in the response so it can be passed on to the member.
func (handler *Handler) ApproveAccount(c *fiber.Ctx) error {
	input := approveAccountInput{}
	if err := handler.parseInput(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	credential := input.Credential
	generated := false
	if credential == "" {
		temporary, err := security.RandomString(generatedCredentialLength, security.TempCredentialAlphabet)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to generate credential")
		}
		credential = temporary
		generated = true
	}

	account, err := handler.accounts.Approve(c.Params("id"), input.MembershipID, credential)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	response := fiber.Map{"ok": true, "account": accountToView(account)}
	if generated {
		response["temporary_credential"] = credential
	}
	return c.JSON(response)
}

func (handler *Handler) RejectAccount(c *fiber.Ctx) error {
	account, err := handler.accounts.Reject(c.Params("id"))
	if err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "account": accountToView(account)})
}

func (handler *Handler) DeleteAccount(c *fiber.Ctx) error {
	if err := handler.accounts.DeleteAccount(c.Params("id")); err != nil {
		return handler.respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

// ResetAccountCredential is the admin override: the member is forced back
// through the first-login credential change.
func (handler *Handler) ResetAccountCredential(c *fiber.Ctx) error {
	input := resetCredentialInput{}
	if err := handler.parseInput(c, &input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	credential := input.Credential
	generated := false
	if credential == "" {
		temporary, err := security.RandomString(generatedCredentialLength, security.TempCredentialAlphabet)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to generate credential")
		}
		credential = temporary
		generated = true
	}

	account, err := handler.accounts.ResetCredential(c.Params("id"), credential)
	if err != nil {
		return handler.respondServiceError(c, err)
	}

	response := fiber.Map{"ok": true, "account": accountToView(account)}
	if generated {
		response["temporary_credential"] = credential
	}
	return c.JSON(response)
}
