package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/cyclenote/internal/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testPassword = "StrongPass1"

func newTestApp(t *testing.T) (*fiber.App, *Handler, *gorm.DB) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "cyclenote-api-test.db")
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

	handler, err := NewHandler(database, "test-secret-key-with-enough-length-000", time.UTC, false)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	handler.authService.WithHashCost(bcrypt.MinCost)

	app := fiber.New()
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app, handler, database
}

func doJSONRequest(t *testing.T, app *fiber.App, method string, path string, body string, authCookie string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}
	request.Header.Set("Accept", "application/json")
	if authCookie != "" {
		request.Header.Set("Cookie", authCookie)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	return response
}

func registerAndExtractAuthCookie(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPost, "/api/auth/register",
		`{"email":"`+email+`","password":"`+testPassword+`"}`, "")
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected register status 201, got %d", response.StatusCode)
	}

	cookie := responseCookie(response.Cookies(), authCookieName)
	if cookie == nil || cookie.Value == "" {
		t.Fatal("auth cookie is missing in register response")
	}
	return cookie.Name + "=" + cookie.Value
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]any{}
	decodeJSONBody(t, body, &payload)
	message, _ := payload["error"].(string)
	return message
}

func decodeJSONBody(t *testing.T, body io.Reader, target any) {
	t.Helper()

	bytes, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(bytes, target); err != nil {
		t.Fatalf("decode response body %q: %v", string(bytes), err)
	}
}

func putLog(t *testing.T, app *fiber.App, authCookie string, date string, body string) {
	t.Helper()

	response := doJSONRequest(t, app, http.MethodPut, "/api/logs/"+date, body, authCookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected save status 200 for %s, got %d: %s", date, response.StatusCode, readAPIError(t, response.Body))
	}
}

func doBearerRequest(t *testing.T, app *fiber.App, path string, token string) *http.Response {
	t.Helper()

	request := httptest.NewRequest(http.MethodGet, path, nil)
	request.Header.Set("Authorization", "Bearer "+token)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return response
}
