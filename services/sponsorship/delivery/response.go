package delivery

import (
	"errors"
	"fmt"
	"sponsorship/config"
	"sponsorship/domain"
	"sponsorship/middleware"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

var staffRoles = []domain.Role{domain.RoleAdmin, domain.RoleStaff}

func currentUsername(c *fiber.Ctx) *string {
	if claims := middleware.ClaimsFrom(c); claims != nil {
		return &claims.Username
	}
	return nil
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	raw := c.Params(param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q", param, raw)
	}
	return uint(id), nil
}

// errorStatus maps a use case error to its HTTP status and the value sent as "error".
func errorStatus(err error) (int, interface{}) {
	var (
		importErr     *domain.ImportError
		validationErr *domain.ValidationError
		externalErr   *domain.ExternalServiceError
	)

	switch {
	case errors.As(err, &importErr):
		return fiber.StatusBadRequest, "Error importing data: " + importErr.Error()
	case errors.As(err, &validationErr):
		return fiber.StatusBadRequest, validationErr.Fields
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, err.Error()
	case errors.As(err, &externalErr):
		return fiber.StatusBadGateway, externalErr.Service + " service is unavailable"
	default:
		return fiber.StatusInternalServerError, err.Error()
	}
}

func fail(c *fiber.Ctx, err error, message, functionName string) error {
	status, detail := errorStatus(err)
	if status >= fiber.StatusInternalServerError {
		config.GetLogrusInstance().WithError(err).WithField("handler", functionName).Error(message)
	}

	config.PrintLogInfo(currentUsername(c), status, functionName)
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   detail,
	})
}

func badRequest(c *fiber.Ctx, err error, message, functionName string) error {
	config.PrintLogInfo(currentUsername(c), fiber.StatusBadRequest, functionName)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"message": message,
		"error":   err.Error(),
	})
}

func ok(c *fiber.Ctx, status int, message string, data interface{}, functionName string) error {
	config.PrintLogInfo(currentUsername(c), status, functionName)
	return c.Status(status).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func okPage(c *fiber.Ctx, message string, data interface{}, meta *domain.PageMeta, functionName string) error {
	config.PrintLogInfo(currentUsername(c), fiber.StatusOK, functionName)
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
		"meta":    meta,
	})
}

func childViews(children []domain.Child) []domain.ChildView {
	now := time.Now()
	views := make([]domain.ChildView, 0, len(children))
	for _, child := range children {
		views = append(views, domain.NewChildView(child, now))
	}
	return views
}
