// Package handlers_fiber wires HTTP delivery components.
package handlers_fiber

import (
	"employee-records/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Handler implements api.ServerInterface using usecase layer interfaces.
// Payload schema checks are delegated to the validator before anything
// reaches the store.
type Handler struct {
	log      *zap.SugaredLogger
	uc       usecase.InterfaceUsecase
	validate *validator.Validate
}

// NewHandler constructs an HTTP handler set with its dependencies.
func NewHandler(log *zap.SugaredLogger, uc usecase.InterfaceUsecase) *Handler {
	return &Handler{
		log:      log,
		uc:       uc,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}
