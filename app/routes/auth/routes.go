package auth

import (
	"database/sql"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SetupAuthRoutes sets up the login and logout endpoints.
func SetupAuthRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/auth")
	api.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, db) })
	api.Post("/logout", LogoutAPI)
}

// AuthMiddleware validates the JWT and sets the identity on the context.
func AuthMiddleware(c *fiber.Ctx) error {
	// Token comes from the cookie or the Authorization header
	tokenString := c.Cookies("jwt_token")
	if tokenString == "" {
		auth := c.Get("Authorization")
		if strings.HasPrefix(auth, "Bearer ") {
			tokenString = strings.TrimPrefix(auth, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "No token found"})
	}

	claims, err := ValidateJWT(tokenString)
	if err != nil || !claims.Role.Valid() {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid token"})
	}

	c.Locals("user_id", claims.UserID)
	c.Locals("role", claims.Role)
	return c.Next()
}
