package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"hokhau/internal/delivery/http/middleware"
	"hokhau/internal/delivery/http/response"
	"hokhau/internal/domain/entity"
	"hokhau/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RequestHandler holds dependencies for change-request handlers.
type RequestHandler struct {
	uc     usecase.RequestUsecase
	logger *slog.Logger
}

// NewRequestHandler is the constructor for RequestHandler, injected by Fx.
func NewRequestHandler(uc usecase.RequestUsecase, logger *slog.Logger) *RequestHandler {
	return &RequestHandler{
		uc:     uc,
		logger: logger,
	}
}

// rejectInput carries the mandatory rejection reason.
type rejectInput struct {
	Reason string `json:"reason"`
}

// Create handles a citizen's new change request. Citizen accounts must be
// linked to a registered resident before they may submit.
func (h *RequestHandler) Create(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Thiếu thông tin định danh")
	}
	if actor.Role == entity.RoleNguoiDan && actor.NhanKhauID == nil {
		return response.Forbidden(c, "FORBIDDEN", "Tài khoản chưa được liên kết với nhân khẩu")
	}

	input := new(usecase.CreateRequestInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dữ liệu yêu cầu không hợp lệ")
	}
	if err := c.Validate(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dữ liệu yêu cầu không hợp lệ")
	}

	request, err := h.uc.Create(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, request, "Đã tiếp nhận yêu cầu")
}

// Get retrieves a single request.
func (h *RequestHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mã yêu cầu không hợp lệ")
	}

	request, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "")
}

// ListMine retrieves the actor's own requests.
func (h *RequestHandler) ListMine(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Thiếu thông tin định danh")
	}

	requests, err := h.uc.ListMine(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// ListPending retrieves all unresolved requests for reviewers.
func (h *RequestHandler) ListPending(c echo.Context) error {
	requests, err := h.uc.ListPending(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, requests, "")
}

// Approve applies the request's registry side effect and marks it APPROVED.
func (h *RequestHandler) Approve(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Thiếu thông tin định danh")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mã yêu cầu không hợp lệ")
	}

	outcome, err := h.uc.Approve(c.Request().Context(), actor, id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, outcome, "Đã duyệt yêu cầu")
}

// Reject marks a PENDING request REJECTED with the given reason.
func (h *RequestHandler) Reject(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Thiếu thông tin định danh")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mã yêu cầu không hợp lệ")
	}

	var input rejectInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dữ liệu từ chối không hợp lệ")
	}

	request, err := h.uc.Reject(c.Request().Context(), actor, id, input.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, request, "Đã từ chối yêu cầu")
}

// parseIDParam reads the numeric :id path parameter.
func parseIDParam(c echo.Context) (uint, error) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.Errorf("invalid id parameter %q", raw)
	}

	return uint(id), nil
}
