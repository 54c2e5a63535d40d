package handlers

import (
	"log"
	"time"

	"globalbazaar/internal/models"
	"globalbazaar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for session tokens and accounts.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the auth routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/jwt", h.HandleIssueToken)

	authRoutes := router.Group("/auth")
	authRoutes.Post("/register", h.HandleRegister)
	authRoutes.Post("/login", h.HandleLogin)
}

// TokenRequest is the body of POST /jwt.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleIssueToken issues a session token for the given email and sets it
// as an http-only cookie, mirroring the upstream /jwt contract.
func (h *AuthHandler) HandleIssueToken(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	token, err := h.authService.IssueToken(req.Email)
	if err != nil {
		return fail(c, err)
	}

	h.setTokenCookie(c, token)
	return c.JSON(fiber.Map{
		"message": "jwt created successfully",
	})
}

// HandleRegister creates a new account.
func (h *AuthHandler) HandleRegister(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(user); err != nil {
		return badRequest(c, err)
	}

	if err := h.authService.Register(&user); err != nil {
		log.Printf("Error registering %s: %v", user.Email, err)
		return fail(c, err)
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// HandleLogin verifies an account's password and returns a session token,
// also set as the same cookie /jwt uses.
func (h *AuthHandler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return badRequest(c, err)
	}

	token, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	h.setTokenCookie(c, token)
	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
	})
}

func (h *AuthHandler) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(7 * 24 * time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
	})
}
