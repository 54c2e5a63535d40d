package middleware

import (
	"log"
	"strings"

	"globalbazaar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired gates a route behind a valid session token. The credential
// is read from the Authorization header ("Bearer <token>") or, failing
// that, from the http-only "token" cookie the /jwt route sets. On success
// the verified principal email is stored in the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := bearerToken(c.Get("Authorization"))
		if tokenString == "" {
			tokenString = c.Cookies("token")
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorize Access",
			})
		}

		email, err := authService.VerifyToken(tokenString)
		if err != nil {
			log.Printf("Token verification failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorize Access",
			})
		}

		c.Locals("email", email)
		return c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}
