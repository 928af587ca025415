package handlers_fiber

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"employee-records/internal/api"
	"employee-records/internal/entities"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.VALIDATIONFAILED
		msg = err.Error()
	case errors.Is(err, entities.ErrEmployeeNotFound), errors.Is(err, entities.ErrUserNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = "resource not found"
	case errors.Is(err, entities.ErrUsernameTaken):
		status = http.StatusConflict
		code = api.USERNAMETAKEN
		msg = "username already exists"
	default:
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

func notFound(c *fiber.Ctx) error {
	return c.Status(http.StatusNotFound).JSON(errorResponse(api.NOTFOUND, "resource not found"))
}

func badBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.VALIDATIONFAILED, "invalid body"))
}

// validationMessage flattens validator errors into a single readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: failed %q", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}
