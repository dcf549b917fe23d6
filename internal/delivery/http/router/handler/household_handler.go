package handler

import (
	"log/slog"
	"net/http"

	"hokhau/internal/delivery/http/response"
	"hokhau/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HouseholdHandler holds dependencies for household handlers.
type HouseholdHandler struct {
	uc     usecase.HouseholdUsecase
	logger *slog.Logger
}

// NewHouseholdHandler is the constructor for HouseholdHandler, injected by Fx.
func NewHouseholdHandler(uc usecase.HouseholdUsecase, logger *slog.Logger) *HouseholdHandler {
	return &HouseholdHandler{
		uc:     uc,
		logger: logger,
	}
}

// activateInput carries the designated head for household activation.
type activateInput struct {
	ChuHoID uint `json:"chuHoId" validate:"required"`
}

// List retrieves all households.
func (h *HouseholdHandler) List(c echo.Context) error {
	households, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, households, "")
}

// Get retrieves a household together with its members.
func (h *HouseholdHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mã hộ khẩu không hợp lệ")
	}

	household, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, household, "")
}

// Create registers a new inactive household.
func (h *HouseholdHandler) Create(c echo.Context) error {
	input := new(usecase.CreateHouseholdInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dữ liệu hộ khẩu không hợp lệ")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	household, err := h.uc.Create(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, household, "Đã tạo hộ khẩu")
}

// Activate assigns the head and marks the household active.
func (h *HouseholdHandler) Activate(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mã hộ khẩu không hợp lệ")
	}

	var input activateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dữ liệu kích hoạt không hợp lệ")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	household, err := h.uc.Activate(c.Request().Context(), id, input.ChuHoID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, household, "Đã kích hoạt hộ khẩu")
}

// ListResidents retrieves the household's members.
func (h *HouseholdHandler) ListResidents(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mã hộ khẩu không hợp lệ")
	}

	residents, err := h.uc.ListResidents(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, residents, "")
}

// ListAudit retrieves the household's change history.
func (h *HouseholdHandler) ListAudit(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mã hộ khẩu không hợp lệ")
	}

	entries, err := h.uc.ListAudit(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}
