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

// LoanHandler holds dependencies for loan handlers.
type LoanHandler struct {
	uc     usecase.LoanUsecase
	logger *slog.Logger
}

// NewLoanHandler is the constructor for LoanHandler, injected by Fx.
func NewLoanHandler(uc usecase.LoanUsecase, logger *slog.Logger) *LoanHandler {
	return &LoanHandler{
		uc:     uc,
		logger: logger,
	}
}

// List returns all loans, newest first.
func (h *LoanHandler) List(c echo.Context) error {
	records, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// ListByMember returns one member's loan history, newest first.
func (h *LoanHandler) ListByMember(c echo.Context) error {
	memberID, err := strconv.ParseUint(c.Param("memberId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid member id")
	}

	records, err := h.uc.ListByMember(c.Request().Context(), uint(memberID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// Create records a new loan. Stock is checked and decremented inside the
// same transaction, so a borrowed-out book yields a stock conflict rather
// than a negative count.
func (h *LoanHandler) Create(c echo.Context) error {
	var input *usecase.LoanInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid loan input")
	}
	if err := c.Validate(input); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	record, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, record, "Peminjaman berhasil ditambahkan")
}

// MarkReturned flips a loan's returned flag.
func (h *LoanHandler) MarkReturned(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid loan id")
	}

	record, err := h.uc.MarkReturned(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, record, "Buku berhasil dikembalikan")
}
