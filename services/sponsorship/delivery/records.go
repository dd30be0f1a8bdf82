package delivery

import (
	"sponsorship/domain"

	"github.com/gofiber/fiber/v2"
)

func (h *childHandler) ListCorrespondence(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "ListCorrespondence")
	}

	correspondence, err := h.uc.ListCorrespondence(c.Context(), id)
	if err != nil {
		return fail(c, err, "Failed to get correspondence", "ListCorrespondence")
	}

	return ok(c, fiber.StatusOK, "Correspondence retrieved successfully", correspondence, "ListCorrespondence")
}

func (h *childHandler) CreateCorrespondence(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "CreateCorrespondence")
	}

	var form domain.CorrespondenceForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, err, "Invalid request body", "CreateCorrespondence")
	}

	correspondence, err := h.uc.CreateCorrespondence(c.Context(), id, &form)
	if err != nil {
		return fail(c, err, "Failed to create correspondence", "CreateCorrespondence")
	}

	return ok(c, fiber.StatusCreated, "Correspondence created successfully", correspondence, "CreateCorrespondence")
}

func (h *childHandler) DeleteCorrespondence(c *fiber.Ctx) error {
	id, err := parseID(c, "correspondence_id")
	if err != nil {
		return badRequest(c, err, "Converter failure on correspondence id", "DeleteCorrespondence")
	}

	if err := h.uc.DeleteCorrespondence(c.Context(), id); err != nil {
		return fail(c, err, "Failed to delete correspondence", "DeleteCorrespondence")
	}

	return ok(c, fiber.StatusOK, "Correspondence deleted successfully", nil, "DeleteCorrespondence")
}

func (h *childHandler) ListIncidents(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "ListIncidents")
	}

	incidents, err := h.uc.ListIncidents(c.Context(), id)
	if err != nil {
		return fail(c, err, "Failed to get incidents", "ListIncidents")
	}

	return ok(c, fiber.StatusOK, "Incidents retrieved successfully", incidents, "ListIncidents")
}

func (h *childHandler) CreateIncident(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "CreateIncident")
	}

	var form domain.IncidentForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, err, "Invalid request body", "CreateIncident")
	}

	reportedBy := ""
	if username := currentUsername(c); username != nil {
		reportedBy = *username
	}

	incident, err := h.uc.CreateIncident(c.Context(), id, reportedBy, &form)
	if err != nil {
		return fail(c, err, "Failed to create incident", "CreateIncident")
	}

	return ok(c, fiber.StatusCreated, "Incident created successfully", incident, "CreateIncident")
}

func (h *childHandler) DeleteIncident(c *fiber.Ctx) error {
	id, err := parseID(c, "incident_id")
	if err != nil {
		return badRequest(c, err, "Converter failure on incident id", "DeleteIncident")
	}

	if err := h.uc.DeleteIncident(c.Context(), id); err != nil {
		return fail(c, err, "Failed to delete incident", "DeleteIncident")
	}

	return ok(c, fiber.StatusOK, "Incident deleted successfully", nil, "DeleteIncident")
}
