package delivery

import (
	"sponsorship/domain"
	"sponsorship/middleware"
	"time"

	"github.com/gofiber/fiber/v2"
)

type childHandler struct {
	uc domain.ChildUseCase
}

func NewChildHandler(app *fiber.App, useCase domain.ChildUseCase) {
	handler := &childHandler{
		uc: useCase,
	}

	auth := middleware.AuthRequired()
	staff := middleware.RoleRequired(staffRoles...)
	admin := middleware.RoleRequired(domain.RoleAdmin)

	app.Get("/dashboard", auth, staff, handler.GetDashboard)

	group := app.Group("/child")
	group.Get("/", auth, staff, handler.ListChildren)
	group.Post("/", auth, staff, handler.CreateChild)
	group.Delete("/", auth, admin, handler.DeleteAllChildren)
	group.Post("/import", auth, admin, handler.ImportChildren)
	group.Delete("/progress/:progress_id", auth, staff, handler.DeleteProgress)
	group.Delete("/correspondence/:correspondence_id", auth, staff, handler.DeleteCorrespondence)
	group.Delete("/incident/:incident_id", auth, staff, handler.DeleteIncident)
	group.Get("/:id", auth, staff, handler.GetChild)
	group.Put("/:id", auth, staff, handler.UpdateChild)
	group.Delete("/:id", auth, staff, handler.DeleteChild)
	group.Put("/:id/picture", auth, staff, handler.UploadProfilePicture)
	group.Get("/:id/progress", auth, staff, handler.ListProgress)
	group.Post("/:id/progress", auth, staff, handler.CreateProgress)
	group.Get("/:id/correspondence", auth, staff, handler.ListCorrespondence)
	group.Post("/:id/correspondence", auth, staff, handler.CreateCorrespondence)
	group.Get("/:id/incident", auth, staff, handler.ListIncidents)
	group.Post("/:id/incident", auth, staff, handler.CreateIncident)
}

func (h *childHandler) GetDashboard(c *fiber.Ctx) error {
	data, err := h.uc.GetDashboard(c.Context())
	if err != nil {
		return fail(c, err, "Failed to get dashboard", "GetDashboard")
	}

	return ok(c, fiber.StatusOK, "Dashboard retrieved successfully", data, "GetDashboard")
}

func (h *childHandler) ListChildren(c *fiber.Ctx) error {
	children, meta, err := h.uc.ListChildren(c.Context(), c.Query("search"), c.Query("page"))
	if err != nil {
		return fail(c, err, "Failed to get children", "ListChildren")
	}

	return okPage(c, "Children retrieved successfully", childViews(*children), meta, "ListChildren")
}

func (h *childHandler) GetChild(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "GetChild")
	}

	child, err := h.uc.GetChild(c.Context(), id)
	if err != nil {
		return fail(c, err, "Failed to get child", "GetChild")
	}

	return ok(c, fiber.StatusOK, "Child retrieved successfully", domain.NewChildView(*child, time.Now()), "GetChild")
}

func (h *childHandler) CreateChild(c *fiber.Ctx) error {
	var form domain.ChildForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, err, "Invalid request body", "CreateChild")
	}

	child, err := h.uc.CreateChild(c.Context(), &form)
	if err != nil {
		return fail(c, err, "Failed to create child", "CreateChild")
	}

	return ok(c, fiber.StatusCreated, "Child created successfully", domain.NewChildView(*child, time.Now()), "CreateChild")
}

func (h *childHandler) UpdateChild(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "UpdateChild")
	}

	var form domain.ChildForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, err, "Invalid request body", "UpdateChild")
	}

	child, err := h.uc.UpdateChild(c.Context(), id, &form)
	if err != nil {
		return fail(c, err, "Failed to update child", "UpdateChild")
	}

	return ok(c, fiber.StatusOK, "Child updated successfully", domain.NewChildView(*child, time.Now()), "UpdateChild")
}

func (h *childHandler) DeleteChild(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "DeleteChild")
	}

	if err := h.uc.DeleteChild(c.Context(), id); err != nil {
		return fail(c, err, "Failed to delete child", "DeleteChild")
	}

	return ok(c, fiber.StatusOK, "Child deleted successfully", nil, "DeleteChild")
}

func (h *childHandler) DeleteAllChildren(c *fiber.Ctx) error {
	deleted, err := h.uc.DeleteAllChildren(c.Context())
	if err != nil {
		return fail(c, err, "Failed to delete children", "DeleteAllChildren")
	}

	return ok(c, fiber.StatusOK, "Children deleted successfully", fiber.Map{"deleted": deleted}, "DeleteAllChildren")
}

func (h *childHandler) ImportChildren(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, err, "No file uploaded", "ImportChildren")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, err, "Could not open uploaded file", "ImportChildren")
	}
	defer file.Close()

	created, err := h.uc.ImportChildren(c.Context(), fileHeader.Filename, file)
	if err != nil {
		return fail(c, err, "Failed to import children", "ImportChildren")
	}

	return ok(c, fiber.StatusCreated, "Data imported successfully", fiber.Map{"created": created}, "ImportChildren")
}

func (h *childHandler) UploadProfilePicture(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "UploadProfilePicture")
	}

	fileHeader, err := c.FormFile("picture")
	if err != nil {
		return badRequest(c, err, "No picture uploaded", "UploadProfilePicture")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return badRequest(c, err, "Could not open uploaded picture", "UploadProfilePicture")
	}
	defer file.Close()

	pic, err := h.uc.UploadProfilePicture(c.Context(), id, fileHeader.Filename, file)
	if err != nil {
		return fail(c, err, "Failed to upload picture", "UploadProfilePicture")
	}

	return ok(c, fiber.StatusOK, "Picture uploaded successfully", pic, "UploadProfilePicture")
}

func (h *childHandler) ListProgress(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "ListProgress")
	}

	progress, err := h.uc.ListProgress(c.Context(), id)
	if err != nil {
		return fail(c, err, "Failed to get progress", "ListProgress")
	}

	return ok(c, fiber.StatusOK, "Progress retrieved successfully", progress, "ListProgress")
}

func (h *childHandler) CreateProgress(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return badRequest(c, err, "Converter failure on child id", "CreateProgress")
	}

	var form domain.ProgressForm
	if err := c.BodyParser(&form); err != nil {
		return badRequest(c, err, "Invalid request body", "CreateProgress")
	}

	progress, err := h.uc.CreateProgress(c.Context(), id, &form)
	if err != nil {
		return fail(c, err, "Failed to create progress", "CreateProgress")
	}

	return ok(c, fiber.StatusCreated, "Progress created successfully", progress, "CreateProgress")
}

func (h *childHandler) DeleteProgress(c *fiber.Ctx) error {
	id, err := parseID(c, "progress_id")
	if err != nil {
		return badRequest(c, err, "Converter failure on progress id", "DeleteProgress")
	}

	if err := h.uc.DeleteProgress(c.Context(), id); err != nil {
		return fail(c, err, "Failed to delete progress", "DeleteProgress")
	}

	return ok(c, fiber.StatusOK, "Progress deleted successfully", nil, "DeleteProgress")
}
