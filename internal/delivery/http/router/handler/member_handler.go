package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"perpus/internal/delivery/http/response"
	"perpus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MemberHandler holds dependencies for member management handlers.
type MemberHandler struct {
	uc     usecase.MemberUsecase
	logger *slog.Logger
}

// NewMemberHandler is the constructor for MemberHandler, injected by Fx.
func NewMemberHandler(uc usecase.MemberUsecase, logger *slog.Logger) *MemberHandler {
	return &MemberHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all members, newest first.
func (h *MemberHandler) List(c echo.Context) error {
	records, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// Create registers a new member.
func (h *MemberHandler) Create(c echo.Context) error {
	var input *usecase.MemberInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	record, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Member berhasil ditambahkan")
}

// Update replaces a member's data.
func (h *MemberHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid member id")
	}

	var input *usecase.MemberInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid member input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	record, err := h.uc.Update(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Member berhasil diperbarui")
}

// Delete removes a member.
func (h *MemberHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid member id")
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Member berhasil dihapus")
}

// Card renders the member's card QR code as a PNG image.
func (h *MemberHandler) Card(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid member id")
	}

	png, err := h.uc.Card(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// pathID parses the numeric :id path parameter shared by the CRUD handlers.
func pathID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}

	return uint(id), nil
}
