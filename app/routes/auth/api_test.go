package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"

	"mokykla/app/routes/auth"
	"mokykla/app/testutil"
)

func TestLoginAPI(t *testing.T) {
	db := testutil.SetupTestDB(t)

	testutil.CreateTestStudent(t, db, "Jonas", "Petraitis")

	app := fiber.New()
	auth.SetupAuthRoutes(app, db)

	body, _ := json.Marshal(map[string]string{"username": "jonas", "password": "Petraitis"})
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	var payload struct {
		Role  string `json:"role"`
		ID    int    `json:"id"`
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if payload.Role != "student" || payload.Token == "" {
		t.Errorf("Unexpected login payload: %+v", payload)
	}

	claims, err := auth.ValidateJWT(payload.Token)
	if err != nil {
		t.Fatalf("Issued token does not validate: %v", err)
	}
	if claims.UserID != payload.ID {
		t.Errorf("Token identity %d does not match response id %d", claims.UserID, payload.ID)
	}
}

func TestLoginAPIInvalidCredentials(t *testing.T) {
	db := testutil.SetupTestDB(t)

	app := fiber.New()
	auth.SetupAuthRoutes(app, db)

	body, _ := json.Marshal(map[string]string{"username": "niekas", "password": "nieko"})
	req, _ := http.NewRequest("POST", "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected 401, got %d", resp.StatusCode)
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	app := fiber.New()
	app.Get("/api/protected", auth.AuthMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req, _ := http.NewRequest("GET", "/api/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("Expected 401, got %d", resp.StatusCode)
	}
}
