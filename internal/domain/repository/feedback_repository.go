package repository

import (
	"context"
	"errors"

	"hokhau/internal/domain/entity"
)

// ErrFeedbackNotFound is a domain-specific error returned when a feedback entry is not found.
var ErrFeedbackNotFound = errors.New("feedback not found")

// FeedbackRepository defines the operations for citizen feedback persistence.
type FeedbackRepository interface {
	// Create persists a new feedback entry.
	Create(ctx context.Context, feedback *entity.Feedback) error

	// FindByID retrieves a single feedback entry by its unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Feedback, error)

	// ListBySender retrieves all feedback submitted by the given account, newest first.
	ListBySender(ctx context.Context, nguoiGuiID uint) ([]*entity.Feedback, error)

	// List retrieves all feedback entries, newest first.
	List(ctx context.Context) ([]*entity.Feedback, error)

	// Update persists status/response changes on an existing entry.
	Update(ctx context.Context, feedback *entity.Feedback) error
}
