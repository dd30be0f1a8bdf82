package delivery

import (
	"io"
	"sponsorship/domain"
	"sponsorship/middleware"

	"github.com/gofiber/fiber/v2"
)

type profileHandler struct {
	uc domain.ProfileUseCase
}

func NewProfileHandler(app *fiber.App, useCase domain.ProfileUseCase) {
	handler := &profileHandler{
		uc: useCase,
	}

	auth := middleware.AuthRequired()
	staff := middleware.RoleRequired(staffRoles...)

	group := app.Group("/profile")
	group.Get("/", auth, staff, handler.GetProfile)
	group.Put("/", auth, staff, handler.UpdateProfile)
}

func (h *profileHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.uc.GetProfile(c.Context(), middleware.ClaimsFrom(c).UserID)
	if err != nil {
		return fail(c, err, "Failed to get profile", "GetProfile")
	}

	return ok(c, fiber.StatusOK, "Profile retrieved successfully", profile, "GetProfile")
}

// UpdateProfile takes a JSON or form body. A multipart "avatar" file replaces the picture.
func (h *profileHandler) UpdateProfile(c *fiber.Ctx) error {
	var form domain.ProfileForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, err, "Invalid request body", "UpdateProfile")
	}

	var (
		avatarName string
		avatar     io.Reader
	)
	if fileHeader, err := c.FormFile("avatar"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return badRequest(c, err, "Could not open uploaded avatar", "UpdateProfile")
		}
		defer file.Close()
		avatarName, avatar = fileHeader.Filename, file
	}

	profile, err := h.uc.UpdateProfile(c.Context(), middleware.ClaimsFrom(c).UserID, &form, avatarName, avatar)
	if err != nil {
		return fail(c, err, "Failed to update profile", "UpdateProfile")
	}

	return ok(c, fiber.StatusOK, "Your profile is updated successfully", profile, "UpdateProfile")
}
