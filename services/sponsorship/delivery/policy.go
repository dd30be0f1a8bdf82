package delivery

import (
	"sponsorship/domain"
	"sponsorship/middleware"

	"github.com/gofiber/fiber/v2"
)

type policyHandler struct {
	uc domain.PolicyUseCase
}

func NewPolicyHandler(app *fiber.App, useCase domain.PolicyUseCase) {
	handler := &policyHandler{
		uc: useCase,
	}

	auth := middleware.AuthRequired()
	staff := middleware.RoleRequired(staffRoles...)

	group := app.Group("/policy")
	group.Get("/", auth, staff, handler.ListPolicies)
	group.Post("/", auth, staff, handler.CreatePolicy)
	group.Get("/:id", auth, staff, handler.GetPolicy)
	group.Put("/:id", auth, staff, handler.UpdatePolicy)
	group.Delete("/:id", auth, staff, handler.DeletePolicy)
	group.Post("/:id/validate", auth, staff, handler.ValidatePolicy)
	group.Post("/:id/read", auth, staff, handler.MarkPolicyRead)
}

func (h *policyHandler) ListPolicies(c *fiber.Ctx) error {
	policies, meta, err := h.uc.ListPolicies(c.Context(), c.Query("search"), c.Query("page"))
	if err != nil {
		return fail(c, err, "Failed to get policies", "ListPolicies")
	}

	return okPage(c, "Policies retrieved successfully", policies, meta, "ListPolicies")
}

func (h *policyHandler) GetPolicy(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on policy id", "GetPolicy")
	}

	policy, err := h.uc.GetPolicy(c.Context(), id)
	if err != nil {
		return fail(c, err, "Failed to get policy", "GetPolicy")
	}

	return ok(c, fiber.StatusOK, "Policy retrieved successfully", policy, "GetPolicy")
}

func (h *policyHandler) CreatePolicy(c *fiber.Ctx) error {
	var policy domain.Policy
	if err := c.BodyParser(&policy); err != nil {
		return badRequest(c, err, "Invalid request body", "CreatePolicy")
	}

	created, err := h.uc.CreatePolicy(c.Context(), &policy, middleware.ClaimsFrom(c).UserID)
	if err != nil {
		return fail(c, err, "Failed to create policy", "CreatePolicy")
	}

	return ok(c, fiber.StatusCreated, "Policy created successfully", created, "CreatePolicy")
}

func (h *policyHandler) UpdatePolicy(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on policy id", "UpdatePolicy")
	}

	var policy domain.Policy
	if err := c.BodyParser(&policy); err != nil {
		return badRequest(c, err, "Invalid request body", "UpdatePolicy")
	}

	updated, err := h.uc.UpdatePolicy(c.Context(), id, &policy)
	if err != nil {
		return fail(c, err, "Failed to update policy", "UpdatePolicy")
	}

	return ok(c, fiber.StatusOK, "Policy updated successfully", updated, "UpdatePolicy")
}

func (h *policyHandler) DeletePolicy(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on policy id", "DeletePolicy")
	}

	if err := h.uc.DeletePolicy(c.Context(), id); err != nil {
		return fail(c, err, "Failed to delete policy", "DeletePolicy")
	}

	return ok(c, fiber.StatusOK, "Policy deleted successfully", nil, "DeletePolicy")
}

func (h *policyHandler) ValidatePolicy(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on policy id", "ValidatePolicy")
	}

	changed, err := h.uc.ValidatePolicy(c.Context(), id)
	if err != nil {
		return fail(c, err, "Failed to validate policy", "ValidatePolicy")
	}

	message := "Policy validated successfully."
	if !changed {
		message = "Policy is already valid."
	}
	return ok(c, fiber.StatusOK, message, fiber.Map{"is_valid": true}, "ValidatePolicy")
}

func (h *policyHandler) MarkPolicyRead(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on policy id", "MarkPolicyRead")
	}

	read, created, err := h.uc.MarkPolicyRead(c.Context(), middleware.ClaimsFrom(c).UserID, id)
	if err != nil {
		return fail(c, err, "Failed to mark policy as read", "MarkPolicyRead")
	}

	if !created {
		return ok(c, fiber.StatusOK, "Policy already read.", read, "MarkPolicyRead")
	}
	return ok(c, fiber.StatusCreated, "Policy marked as read.", read, "MarkPolicyRead")
}
