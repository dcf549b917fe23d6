package impl

import (
	"context"
	"time"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/errors"
	"hokhau/internal/usecase"

	"go.uber.org/fx"
)

type feedbackService struct {
	feedbackRepo repository.FeedbackRepository
}

// FeedbackServiceParams holds dependencies for FeedbackService, injected by Fx.
type FeedbackServiceParams struct {
	fx.In

	FeedbackRepo repository.FeedbackRepository
}

// NewFeedbackService creates the citizen feedback service.
func NewFeedbackService(params FeedbackServiceParams) usecase.FeedbackUsecase {
	return &feedbackService{feedbackRepo: params.FeedbackRepo}
}

// Submit records a new feedback entry from the actor.
func (s *feedbackService) Submit(ctx context.Context, actor entity.Actor, input *usecase.SubmitFeedbackInput) (*entity.Feedback, error) {
	feedback := &entity.Feedback{
		NguoiGuiID: actor.ID,
		TieuDe:     input.TieuDe,
		NoiDung:    input.NoiDung,
		TheLoai:    input.TheLoai,
		Status:     entity.FeedbackPending,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to create feedback")
	}

	return feedback, nil
}

// ListMine retrieves the actor's own feedback.
func (s *feedbackService) ListMine(ctx context.Context, actor entity.Actor) ([]*entity.Feedback, error) {
	entries, err := s.feedbackRepo.ListBySender(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return entries, nil
}

// List retrieves all feedback entries for reviewers.
func (s *feedbackService) List(ctx context.Context) ([]*entity.Feedback, error) {
	entries, err := s.feedbackRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return entries, nil
}

// Respond records a reviewer response and advances the entry's status.
func (s *feedbackService) Respond(ctx context.Context, actor entity.Actor, id uint, input *usecase.RespondFeedbackInput) (*entity.Feedback, error) {
	feedback, err := s.feedbackRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrFeedbackNotFound) {
			return nil, domainerrors.ErrFeedbackNotFound
		}
		return nil, errors.Wrap(err, "failed to load feedback")
	}

	now := time.Now()
	feedback.TraLoi = input.TraLoi
	feedback.NguoiTraLoiID = &actor.ID
	feedback.TraLoiLuc = &now
	if input.Resolved {
		feedback.Status = entity.FeedbackResolved
	} else {
		feedback.Status = entity.FeedbackProcessing
	}

	if err := s.feedbackRepo.Update(ctx, feedback); err != nil {
		return nil, errors.Wrap(err, "failed to update feedback")
	}

	return feedback, nil
}
