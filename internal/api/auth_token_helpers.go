package api

import (
	"errors"
	"time"

	"contribhub/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const authTokenTTL = 24 * time.Hour

type authClaims struct {
	AccountID string `json:"account_id"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

func (handler *Handler) setAuthCookie(c *fiber.Ctx, account models.Account) error {
	token, err := handler.buildToken(account, authTokenTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(authTokenTTL),
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.cookieSecure,
		SameSite: "Lax",
		Expires:  time.Now().Add(-1 * time.Hour),
	})
}

func (handler *Handler) buildToken(account models.Account, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := authClaims{
		AccountID: account.ID,
		Role:      account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   account.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

var errUnauthenticated = errors.New("unauthenticated request")

// authenticateRequest resolves the session cookie back to a live account.
// The account's status is re-checked on every request: a session issued
// before a rejection stops working immediately.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (models.Account, error) {
	rawToken := c.Cookies(authCookieName)
	if rawToken == "" {
		return models.Account{}, errUnauthenticated
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(*jwt.Token) (any, error) {
		return handler.secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return models.Account{}, errUnauthenticated
	}

	account, err := handler.accounts.FindByID(claims.AccountID)
	if err != nil {
		return models.Account{}, errUnauthenticated
	}
	if account.Status != models.StatusApproved {
		return models.Account{}, errUnauthenticated
	}
	return account, nil
}
