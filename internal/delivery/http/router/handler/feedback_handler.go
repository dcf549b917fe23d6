package handler

import (
	"log/slog"
	"net/http"

	"hokhau/internal/delivery/http/middleware"
	"hokhau/internal/delivery/http/response"
	"hokhau/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// FeedbackHandler holds dependencies for citizen feedback handlers.
type FeedbackHandler struct {
	uc     usecase.FeedbackUsecase
	logger *slog.Logger
}

// NewFeedbackHandler is the constructor for FeedbackHandler, injected by Fx.
func NewFeedbackHandler(uc usecase.FeedbackUsecase, logger *slog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit records a new feedback entry from the actor.
func (h *FeedbackHandler) Submit(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Thiếu thông tin định danh")
	}

	input := new(usecase.SubmitFeedbackInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dữ liệu phản ánh không hợp lệ")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	feedback, err := h.uc.Submit(c.Request().Context(), actor, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, feedback, "Đã ghi nhận phản ánh")
}

// ListMine retrieves the actor's own feedback.
func (h *FeedbackHandler) ListMine(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Thiếu thông tin định danh")
	}

	entries, err := h.uc.ListMine(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// List retrieves all feedback entries for reviewers.
func (h *FeedbackHandler) List(c echo.Context) error {
	entries, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// Respond records a reviewer response and advances the entry's status.
func (h *FeedbackHandler) Respond(c echo.Context) error {
	actor, ok := middleware.ActorFrom(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Thiếu thông tin định danh")
	}

	id, err := parseIDParam(c)
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Mã phản ánh không hợp lệ")
	}

	input := new(usecase.RespondFeedbackInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Dữ liệu trả lời không hợp lệ")
	}
	if err := c.Validate(input); err != nil {
		return err
	}

	feedback, err := h.uc.Respond(c.Request().Context(), actor, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, feedback, "Đã trả lời phản ánh")
}
