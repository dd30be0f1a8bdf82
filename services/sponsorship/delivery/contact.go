package delivery

import (
	"sponsorship/domain"

	"github.com/gofiber/fiber/v2"
)

type contactHandler struct {
	uc domain.ContactUseCase
}

func NewContactHandler(app *fiber.App, useCase domain.ContactUseCase) {
	handler := &contactHandler{
		uc: useCase,
	}

	app.Post("/contact", handler.SubmitContactMessage)
}

func (h *contactHandler) SubmitContactMessage(c *fiber.Ctx) error {
	var msg domain.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		return badRequest(c, err, "Invalid request body", "SubmitContactMessage")
	}

	if err := h.uc.SubmitContactMessage(c.Context(), &msg); err != nil {
		return fail(c, err, "Failed to send message", "SubmitContactMessage")
	}

	return ok(c, fiber.StatusCreated, "Your message has been sent successfully!", nil, "SubmitContactMessage")
}
