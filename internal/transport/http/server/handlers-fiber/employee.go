package handlers_fiber

import (
	"net/http"

	"employee-records/internal/api"
	"employee-records/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// ListEmployees returns all employee records.
func (h *Handler) ListEmployees(c *fiber.Ctx) error {
	employees, err := h.uc.Employees(c.Context())
	if err != nil {
		h.log.Errorw("failed to list employees", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIEmployeeList(employees))
}

// GetEmployee returns a single employee by id.
func (h *Handler) GetEmployee(c *fiber.Ctx) error {
	emp, err := h.uc.Employee(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIEmployee(*emp))
}

// CreateEmployee validates the payload and stores a new record.
func (h *Handler) CreateEmployee(c *fiber.Ctx) error {
	var body api.CreateEmployeeRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badBody(c)
	}
	if err := h.validate.Struct(body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, validationMessage(err)))
	}

	emp, err := h.uc.CreateEmployee(c.Context(), mapper.FromCreateEmployeeRequest(body))
	if err != nil {
		h.log.Errorw("failed to create employee", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIEmployee(*emp))
}

// UpdateEmployee applies a partial update to an existing record.
func (h *Handler) UpdateEmployee(c *fiber.Ctx) error {
	var body api.UpdateEmployeeRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badBody(c)
	}
	if err := h.validate.Struct(body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, validationMessage(err)))
	}

	emp, err := h.uc.UpdateEmployee(c.Context(), c.Params("id"), mapper.FromUpdateEmployeeRequest(body))
	if err != nil {
		h.log.Errorw("failed to update employee", "error", err.Error(), "employee_id", c.Params("id"))
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIEmployee(*emp))
}

// DeleteEmployee removes a record. Deleting an unknown id yields 404, not
// an error payload surprise; the operation is idempotent at the store.
func (h *Handler) DeleteEmployee(c *fiber.Ctx) error {
	deleted, err := h.uc.DeleteEmployee(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to delete employee", "error", err.Error(), "employee_id", c.Params("id"))
		return writeError(c, err)
	}
	if !deleted {
		return notFound(c)
	}

	return c.SendStatus(http.StatusNoContent)
}
