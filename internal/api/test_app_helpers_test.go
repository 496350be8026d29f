package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"contribhub/internal/db"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "contribhub-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	handler := NewHandler(db.NewCollections(database), "test-secret-key", false, zap.NewNop())
	app := fiber.New()
	RegisterRoutes(app, handler)
	return app
}

func performJSON(t *testing.T, app *fiber.App, method string, path string, authCookie string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode %s %s payload: %v", method, path, err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func decodeJSONBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer response.Body.Close()

	decoded := map[string]any{}
	if err := json.NewDecoder(response.Body).Decode(&decoded); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return decoded
}

func authCookieFromResponse(t *testing.T, response *http.Response) string {
	t.Helper()

	for _, cookie := range response.Cookies() {
		if cookie.Name == authCookieName && cookie.Value != "" {
			return authCookieName + "=" + cookie.Value
		}
	}
	t.Fatal("expected an auth cookie in the response")
	return ""
}

func loginAs(t *testing.T, app *fiber.App, membershipID string, credential string) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", "", map[string]any{
		"membership_id": membershipID,
		"credential":    credential,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("login as %s expected status 200, got %d", membershipID, response.StatusCode)
	}
	cookie := authCookieFromResponse(t, response)
	response.Body.Close()
	return cookie
}

func registerAndApprove(t *testing.T, app *fiber.App, managerCookie string, name string, email string, membershipID string, credential string) string {
	t.Helper()

	response := performJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name":  name,
		"email": email,
	})
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register expected status 201, got %d", response.StatusCode)
	}
	registered := decodeJSONBody(t, response)
	account := registered["account"].(map[string]any)
	accountID := account["id"].(string)

	response = performJSON(t, app, http.MethodPost, "/api/accounts/"+accountID+"/approve", managerCookie, map[string]any{
		"membership_id": membershipID,
		"credential":    credential,
	})
	if response.StatusCode != http.StatusOK {
		t.Fatalf("approve expected status 200, got %d", response.StatusCode)
	}
	response.Body.Close()
	return accountID
}
