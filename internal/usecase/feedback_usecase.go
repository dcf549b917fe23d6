package usecase

import (
	"context"

	"hokhau/internal/domain/entity"
)

// SubmitFeedbackInput carries a citizen's feedback entry.
type SubmitFeedbackInput struct {
	TieuDe  string `json:"tieuDe" validate:"required"`
	NoiDung string `json:"noiDung" validate:"required"`
	TheLoai string `json:"theLoai"`
}

// RespondFeedbackInput carries a reviewer's response to a feedback entry.
type RespondFeedbackInput struct {
	TraLoi string `json:"traLoi" validate:"required"`
	// Resolved marks the entry RESOLVED; otherwise it moves to PROCESSING.
	Resolved bool `json:"resolved"`
}

// FeedbackUsecase covers the citizen feedback/complaint flow.
type FeedbackUsecase interface {
	// Submit records a new feedback entry from the actor.
	Submit(ctx context.Context, actor entity.Actor, input *SubmitFeedbackInput) (*entity.Feedback, error)

	// ListMine retrieves the actor's own feedback, newest first.
	ListMine(ctx context.Context, actor entity.Actor) ([]*entity.Feedback, error)

	// List retrieves all feedback entries for reviewers, newest first.
	List(ctx context.Context) ([]*entity.Feedback, error)

	// Respond records a reviewer response and advances the entry's status.
	Respond(ctx context.Context, actor entity.Actor, id uint, input *RespondFeedbackInput) (*entity.Feedback, error)
}
