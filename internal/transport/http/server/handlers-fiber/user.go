package handlers_fiber

import (
	"net/http"

	"employee-records/internal/api"
	"employee-records/internal/mapper"

	"github.com/gofiber/fiber/v2"
)

// FindUser looks a user up by the username query parameter.
func (h *Handler) FindUser(c *fiber.Ctx) error {
	username := c.Query("username")
	if username == "" {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, "username query parameter is required"))
	}

	usr, err := h.uc.UserByUsername(c.Context(), username)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*usr))
}

// GetUser returns a single user by id.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	usr, err := h.uc.User(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*usr))
}

// CreateUser validates the payload and stores a new user.
func (h *Handler) CreateUser(c *fiber.Ctx) error {
	var body api.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		h.log.Errorw("failed to parse body", "error", err.Error())
		return badBody(c)
	}
	if err := h.validate.Struct(body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, validationMessage(err)))
	}

	usr, err := h.uc.CreateUser(c.Context(), mapper.FromCreateUserRequest(body))
	if err != nil {
		h.log.Errorw("failed to create user", "error", err.Error())
		return writeError(c, err)
	}

	return c.Status(http.StatusCreated).JSON(mapper.ToAPIUser(*usr))
}

// UpdateUser applies a partial update to an existing user.
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	var body api.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}
	if err := h.validate.Struct(body); err != nil {
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, validationMessage(err)))
	}

	usr, err := h.uc.UpdateUser(c.Context(), c.Params("id"), mapper.FromUpdateUserRequest(body))
	if err != nil {
		h.log.Errorw("failed to update user", "error", err.Error(), "user_id", c.Params("id"))
		return writeError(c, err)
	}

	return c.Status(http.StatusOK).JSON(mapper.ToAPIUser(*usr))
}

// DeleteUser removes a user account.
func (h *Handler) DeleteUser(c *fiber.Ctx) error {
	deleted, err := h.uc.DeleteUser(c.Context(), c.Params("id"))
	if err != nil {
		h.log.Errorw("failed to delete user", "error", err.Error(), "user_id", c.Params("id"))
		return writeError(c, err)
	}
	if !deleted {
		return notFound(c)
	}

	return c.SendStatus(http.StatusNoContent)
}
