package api

import (
	"errors"
	"time"

	"contribhub/internal/db"
	"contribhub/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Handler struct {
	accounts      *services.AccountService
	auth          *services.AuthService
	payments      *services.PaymentService
	notifications *services.NotificationService
	settings      *services.SettingsService
	secretKey     []byte
	cookieSecure  bool
	logger        *zap.Logger
	validate      *validator.Validate
}

func NewHandler(collections *db.Collections, secretKey string, cookieSecure bool, logger *zap.Logger) *Handler {
	notifications := services.NewNotificationService(collections.Notifications)
	return &Handler{
		accounts:      services.NewAccountService(collections.Accounts, collections.Payments, notifications),
		auth:          services.NewAuthService(collections.Accounts),
		payments:      services.NewPaymentService(collections.Payments, collections.Accounts),
		notifications: notifications,
		settings:      services.NewSettingsService(collections.Settings),
		secretKey:     []byte(secretKey),
		cookieSecure:  cookieSecure,
		logger:        logger,
		validate:      validator.New(),
	}
}

type registerInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required"`
}

type loginInput struct {
	MembershipID string `json:"membership_id" validate:"required"`
	Credential   string `json:"credential" validate:"required"`
}

type changeCredentialInput struct {
	NewCredential string `json:"new_credential" validate:"required"`
}

type approveAccountInput struct {
	MembershipID string `json:"membership_id" validate:"required"`
	Credential   string `json:"credential"`
}

type resetCredentialInput struct {
	Credential string `json:"credential"`
}

type submitPaymentInput struct {
	Amount           decimal.Decimal `json:"amount"`
	Category         string          `json:"category" validate:"required"`
	ReceiptReference string          `json:"receipt_reference"`
}

type reviewPaymentInput struct {
	Decision string `json:"decision" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

type sendNotificationInput struct {
	RecipientID string `json:"recipient_id" validate:"required"`
	Body        string `json:"body" validate:"required"`
}

type updateSettingsInput struct {
	RemindersEnabled *bool `json:"reminders_enabled" validate:"required"`
}

func (handler *Handler) parseInput(c *fiber.Ctx, input any) error {
	if err := c.BodyParser(input); err != nil {
		return err
	}
	return handler.validate.Struct(input)
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps domain failure kinds onto HTTP statuses. Anything
// outside the taxonomy is a storage failure and never silently swallowed.
func (handler *Handler) respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return apiError(c, fiber.StatusNotFound, "not found")
	case errors.Is(err, services.ErrValidation):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrAccountPending):
		return apiError(c, fiber.StatusForbidden, "account pending manager approval")
	case errors.Is(err, services.ErrAccountDeactivated):
		return apiError(c, fiber.StatusForbidden, "this account has been deactivated")
	case errors.Is(err, services.ErrInvalidCredential):
		return apiError(c, fiber.StatusUnauthorized, "incorrect credential")
	default:
		handler.logger.Error("storage failure", zap.String("path", c.Path()), zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "storage failure")
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "time": time.Now().Format(time.RFC3339)})
}
