package handler

import (
	"log/slog"
	"net/http"

	"perpus/internal/delivery/http/response"
	"perpus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FineHandler holds dependencies for fine handlers.
type FineHandler struct {
	uc     usecase.FineUsecase
	logger *slog.Logger
}

// NewFineHandler is the constructor for FineHandler, injected by Fx.
func NewFineHandler(uc usecase.FineUsecase, logger *slog.Logger) *FineHandler {
	return &FineHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all recorded fines, newest first.
func (h *FineHandler) List(c echo.Context) error {
	records, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// Create records a fine against a member for a given book.
func (h *FineHandler) Create(c echo.Context) error {
	var input *usecase.FineInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fine input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	record, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Denda berhasil dicatat")
}
