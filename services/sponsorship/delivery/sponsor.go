package delivery

import (
	"sponsorship/domain"
	"sponsorship/middleware"

	"github.com/gofiber/fiber/v2"
)

type sponsorHandler struct {
	uc domain.SponsorUseCase
}

func NewSponsorHandler(app *fiber.App, useCase domain.SponsorUseCase) {
	handler := &sponsorHandler{
		uc: useCase,
	}

	auth := middleware.AuthRequired()
	staff := middleware.RoleRequired(staffRoles...)

	group := app.Group("/sponsor")
	group.Get("/", auth, staff, handler.ListSponsors)
	group.Post("/", auth, staff, handler.CreateSponsor)
	group.Get("/departed", auth, staff, handler.ListDepartedSponsors)
	group.Get("/:id", auth, staff, handler.GetSponsor)
	group.Put("/:id", auth, staff, handler.UpdateSponsor)
	group.Delete("/:id", auth, staff, handler.DeleteSponsor)
	group.Post("/:id/depart", auth, staff, handler.DepartSponsor)
	group.Post("/:id/reinstate", auth, staff, handler.ReinstateSponsor)
}

func (h *sponsorHandler) ListSponsors(c *fiber.Ctx) error {
	sponsors, meta, err := h.uc.ListSponsors(c.Context(), c.Query("search"), c.Query("page"))
	if err != nil {
		return fail(c, err, "Failed to get sponsors", "ListSponsors")
	}

	return okPage(c, "Sponsors retrieved successfully", sponsors, meta, "ListSponsors")
}

func (h *sponsorHandler) ListDepartedSponsors(c *fiber.Ctx) error {
	sponsors, meta, err := h.uc.ListDepartedSponsors(c.Context(), c.Query("search"), c.Query("page"))
	if err != nil {
		return fail(c, err, "Failed to get departed sponsors", "ListDepartedSponsors")
	}

	return okPage(c, "Departed sponsors retrieved successfully", sponsors, meta, "ListDepartedSponsors")
}

func (h *sponsorHandler) GetSponsor(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on sponsor id", "GetSponsor")
	}

	sponsor, err := h.uc.GetSponsor(c.Context(), id)
	if err != nil {
		return fail(c, err, "Failed to get sponsor", "GetSponsor")
	}

	return ok(c, fiber.StatusOK, "Sponsor retrieved successfully", sponsor, "GetSponsor")
}

func (h *sponsorHandler) CreateSponsor(c *fiber.Ctx) error {
	var form domain.SponsorForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, err, "Invalid request body", "CreateSponsor")
	}

	sponsor, err := h.uc.CreateSponsor(c.Context(), &form)
	if err != nil {
		return fail(c, err, "Failed to create sponsor", "CreateSponsor")
	}

	return ok(c, fiber.StatusCreated, "Sponsor created successfully", sponsor, "CreateSponsor")
}

func (h *sponsorHandler) UpdateSponsor(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on sponsor id", "UpdateSponsor")
	}

	var form domain.SponsorForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, err, "Invalid request body", "UpdateSponsor")
	}

	sponsor, err := h.uc.UpdateSponsor(c.Context(), id, &form)
	if err != nil {
		return fail(c, err, "Failed to update sponsor", "UpdateSponsor")
	}

	return ok(c, fiber.StatusOK, "Sponsor updated successfully", sponsor, "UpdateSponsor")
}

func (h *sponsorHandler) DeleteSponsor(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on sponsor id", "DeleteSponsor")
	}

	if err := h.uc.DeleteSponsor(c.Context(), id); err != nil {
		return fail(c, err, "Failed to delete sponsor", "DeleteSponsor")
	}

	return ok(c, fiber.StatusOK, "Sponsor deleted successfully", nil, "DeleteSponsor")
}

func (h *sponsorHandler) DepartSponsor(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on sponsor id", "DepartSponsor")
	}

	var req domain.DepartureRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err, "Invalid request body", "DepartSponsor")
	}

	departure, err := h.uc.DepartSponsor(c.Context(), id, &req)
	if err != nil {
		return fail(c, err, "Failed to record departure", "DepartSponsor")
	}

	return ok(c, fiber.StatusCreated, "Sponsor departure recorded successfully", departure, "DepartSponsor")
}

func (h *sponsorHandler) ReinstateSponsor(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on sponsor id", "ReinstateSponsor")
	}

	if err := h.uc.ReinstateSponsor(c.Context(), id); err != nil {
		return fail(c, err, "Failed to reinstate sponsor", "ReinstateSponsor")
	}

	return ok(c, fiber.StatusOK, "Sponsor reinstated successfully", nil, "ReinstateSponsor")
}
