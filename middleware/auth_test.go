package middleware_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"quizforge/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/me", middleware.AuthMiddleware, func(c *fiber.Ctx) error {
		id, err := middleware.GetUserID(c)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"id": id})
	})
	app.Get("/admin", middleware.AdminAuthMiddleware, func(c *fiber.Ctx) error {
		return c.SendStatus(200)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret")
	app := newProtectedApp()

	validToken := signToken(t, "test-secret-test-secret-test-secret", jwt.MapClaims{
		"user_id": 42,
		"name":    "Tester",
		"role":    "user",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	tests := []struct {
		name       string
		path       string
		authHeader string
		wantStatus int
	}{
		{"missing header", "/me", "", 401},
		{"malformed header", "/me", "Token abc", 401},
		{"garbage token", "/me", "Bearer not.a.token", 401},
		{"valid token", "/me", "Bearer " + validToken, 200},
		{"user role denied admin", "/admin", "Bearer " + validToken, 403},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, resp.StatusCode)
			}
		})
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret")
	app := newProtectedApp()

	expired := signToken(t, "test-secret-test-secret-test-secret", jwt.MapClaims{
		"user_id": 42,
		"role":    "user",
		"exp":     time.Now().Add(-time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Errorf("expected 401 for expired token, got %d", resp.StatusCode)
	}
}

func TestAdminRoleAllowed(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret-test-secret-test-secret")
	app := newProtectedApp()

	adminToken := signToken(t, "test-secret-test-secret-test-secret", jwt.MapClaims{
		"user_id": 1,
		"role":    "admin",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest("GET", "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("expected 200 for admin token, got %d", resp.StatusCode)
	}
}
