package delivery

import (
	"errors"
	"sponsorship/domain"
	"sponsorship/middleware"

	"github.com/gofiber/fiber/v2"
)

type sponsorshipHandler struct {
	uc domain.SponsorshipUseCase
}

func NewSponsorshipHandler(app *fiber.App, useCase domain.SponsorshipUseCase) {
	handler := &sponsorshipHandler{
		uc: useCase,
	}

	auth := middleware.AuthRequired()
	staff := middleware.RoleRequired(staffRoles...)

	group := app.Group("/sponsorship")
	group.Get("/candidates", auth, staff, handler.ListCandidates)
	group.Post("/", auth, staff, handler.CreateSponsorship)
	group.Get("/report", auth, staff, handler.ListSponsoredChildren)
	group.Get("/report/:child_id", auth, staff, handler.GetChildReport)
	group.Post("/terminate/:child_id", auth, staff, handler.TerminateSponsorship)
	group.Delete("/:id", auth, staff, handler.DeleteSponsorship)
}

func (h *sponsorshipHandler) ListCandidates(c *fiber.Ctx) error {
	data, err := h.uc.ListCandidates(c.Context())
	if err != nil {
		return fail(c, err, "Failed to get sponsorship candidates", "ListCandidates")
	}

	return ok(c, fiber.StatusOK, "Candidates retrieved successfully", fiber.Map{
		"children": childViews(data.Children),
		"sponsors": data.Sponsors,
	}, "ListCandidates")
}

func (h *sponsorshipHandler) CreateSponsorship(c *fiber.Ctx) error {
	var req domain.SponsorshipRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, err, "Invalid request body", "CreateSponsorship")
	}

	sponsorship, err := h.uc.CreateSponsorship(c.Context(), &req)
	if err != nil {
		message := "Failed to create sponsorship"
		if errors.Is(err, domain.ErrSponsorshipExists) {
			message = "Sponsorship already exists for this child and sponsor."
		}
		return fail(c, err, message, "CreateSponsorship")
	}

	return ok(c, fiber.StatusCreated, "Sponsorship created successfully", sponsorship, "CreateSponsorship")
}

func (h *sponsorshipHandler) ListSponsoredChildren(c *fiber.Ctx) error {
	children, meta, err := h.uc.ListSponsoredChildren(c.Context(), c.Query("search"), c.Query("page"))
	if err != nil {
		return fail(c, err, "Failed to get sponsorship report", "ListSponsoredChildren")
	}

	return okPage(c, "Sponsorship report retrieved successfully", childViews(*children), meta, "ListSponsoredChildren")
}

func (h *sponsorshipHandler) GetChildReport(c *fiber.Ctx) error {
	childID, err := parseID(c, "child_id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "GetChildReport")
	}

	report, err := h.uc.GetChildReport(c.Context(), childID)
	if err != nil {
		return fail(c, err, "Failed to get child sponsorship report", "GetChildReport")
	}

	return ok(c, fiber.StatusOK, "Child sponsorship report retrieved successfully", report, "GetChildReport")
}

func (h *sponsorshipHandler) TerminateSponsorship(c *fiber.Ctx) error {
	childID, err := parseID(c, "child_id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "TerminateSponsorship")
	}

	if err := h.uc.TerminateSponsorship(c.Context(), childID); err != nil {
		return fail(c, err, "Failed to terminate sponsorship", "TerminateSponsorship")
	}

	return ok(c, fiber.StatusOK, "Sponsorship terminated successfully", nil, "TerminateSponsorship")
}

func (h *sponsorshipHandler) DeleteSponsorship(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on sponsorship id", "DeleteSponsorship")
	}

	if err := h.uc.DeleteSponsorship(c.Context(), id); err != nil {
		return fail(c, err, "Failed to delete sponsorship", "DeleteSponsorship")
	}

	return ok(c, fiber.StatusOK, "Sponsorship deleted successfully", nil, "DeleteSponsorship")
}
