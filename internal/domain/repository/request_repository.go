package repository

import (
	"context"
	"errors"

	"hokhau/internal/domain/entity"
)

// ErrRequestNotFound is a domain-specific error returned when a request is not found.
var ErrRequestNotFound = errors.New("request not found")

// RequestRepository defines the operations for request persistence.
type RequestRepository interface {
	// Create persists a new request row; the caller sets Status.
	Create(ctx context.Context, request *entity.Request) error

	// FindByID retrieves a single request by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Request, error)

	// FindByIDForUpdate retrieves a request and locks its row for the
	// duration of the surrounding transaction, so that two concurrent
	// approve/reject calls on the same ID cannot both succeed.
	FindByIDForUpdate(ctx context.Context, id uint) (*entity.Request, error)

	// UpdateResolution persists the resolved status together with
	// reviewedBy/reviewedAt and, for rejections, the reason.
	UpdateResolution(ctx context.Context, request *entity.Request) error

	// ListByRequester retrieves all requests submitted by the given account,
	// newest first.
	ListByRequester(ctx context.Context, nguoiYeuCauID uint) ([]*entity.Request, error)

	// ListByStatus retrieves all requests in the given status, oldest first.
	ListByStatus(ctx context.Context, status entity.RequestStatus) ([]*entity.Request, error)
}
