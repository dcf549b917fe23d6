package handler

import (
	"log/slog"
	"net/http"

	"hokhau/internal/delivery/http/response"
	"hokhau/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AttachmentHandler stores and serves uploaded request attachments.
type AttachmentHandler struct {
	store  service.AttachmentStore
	logger *slog.Logger
}

// NewAttachmentHandler is the constructor for AttachmentHandler, injected by Fx.
func NewAttachmentHandler(store service.AttachmentStore, logger *slog.Logger) *AttachmentHandler {
	return &AttachmentHandler{
		store:  store,
		logger: logger,
	}
}

// Upload stores a multipart file and returns the attachment descriptor for
// embedding in a request payload. File content is stored opaquely.
func (h *AttachmentHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Thiếu tệp đính kèm")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	attachment, err := h.store.Save(c.Request().Context(), fileHeader.Filename, mimeType, src)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, attachment, "Đã lưu tệp đính kèm")
}

// Download streams a previously uploaded attachment.
func (h *AttachmentHandler) Download(c echo.Context) error {
	name := c.Param("name")
	if name == "" {
		return response.BindingError(c, "INVALID_INPUT", "Thiếu tên tệp")
	}

	reader, err := h.store.Open(c.Request().Context(), name)
	if err != nil {
		return response.NotFound(c, "NOT_FOUND", "Không tìm thấy tệp đính kèm")
	}
	defer reader.Close()

	return c.Stream(http.StatusOK, "application/octet-stream", reader)
}
