package handler

import (
	"log/slog"
	"net/http"

	"hokhau/internal/delivery/http/response"
	"hokhau/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ResidentHandler holds dependencies for resident handlers.
type ResidentHandler struct {
	uc     usecase.ResidentUsecase
	logger *slog.Logger
}

// NewResidentHandler is the constructor for ResidentHandler, injected by Fx.
func NewResidentHandler(uc usecase.ResidentUsecase, logger *slog.Logger) *ResidentHandler {
	return &ResidentHandler{
		uc:     uc,
		logger: logger,
	}
}

// Get retrieves a single resident.
func (h *ResidentHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mã nhân khẩu không hợp lệ")
	}

	resident, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, resident, "")
}

// ListTempRecords retrieves a resident's temporary residence/absence records.
func (h *ResidentHandler) ListTempRecords(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mã nhân khẩu không hợp lệ")
	}

	records, err := h.uc.ListTempRecords(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// ListLifeEvents retrieves a resident's life events.
func (h *ResidentHandler) ListLifeEvents(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mã nhân khẩu không hợp lệ")
	}

	events, err := h.uc.ListLifeEvents(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, events, "")
}
