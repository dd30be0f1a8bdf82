package delivery

import (
	"sponsorship/domain"
	"sponsorship/middleware"

	"github.com/gofiber/fiber/v2"
)

type authHandler struct {
	uc domain.AuthUseCase
}

func NewAuthHandler(app *fiber.App, useCase domain.AuthUseCase) {
	handler := &authHandler{
		uc: useCase,
	}

	group := app.Group("/auth")
	group.Post("/login", handler.Login)
	group.Post("/register", middleware.AuthRequired(), middleware.RoleRequired(domain.RoleAdmin), handler.Register)
	group.Put("/password", middleware.AuthRequired(), middleware.RoleRequired(staffRoles...), handler.ChangePassword)
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	var req domain.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err, "Invalid request body", "Login")
	}

	resp, err := h.uc.Login(c.Context(), &req)
	if err != nil {
		return fail(c, err, "Login failed", "Login")
	}

	return ok(c, fiber.StatusOK, "Login successful", resp, "Login")
}

func (h *authHandler) Register(c *fiber.Ctx) error {
	var req domain.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err, "Invalid request body", "Register")
	}

	user, err := h.uc.Register(c.Context(), &req)
	if err != nil {
		return fail(c, err, "Failed to register user", "Register")
	}

	return ok(c, fiber.StatusCreated, "User registered successfully", user, "Register")
}

func (h *authHandler) ChangePassword(c *fiber.Ctx) error {
	var req domain.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err, "Invalid request body", "ChangePassword")
	}

	if err := h.uc.ChangePassword(c.Context(), middleware.ClaimsFrom(c).UserID, &req); err != nil {
		return fail(c, err, "Failed to change password", "ChangePassword")
	}

	return ok(c, fiber.StatusOK, "Password changed successfully", nil, "ChangePassword")
}
