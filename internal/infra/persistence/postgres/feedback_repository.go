package postgres

import (
	"context"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	db *gorm.DB
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *gorm.DB) repository.FeedbackRepository {
	return &feedbackRepository{
		db: db,
	}
}

// Create persists a new feedback entry.
func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedbackM := fromFeedbackDomain(feedback)

	if err := repo.db.WithContext(ctx).Create(feedbackM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidation("Thiếu thông tin phản ánh bắt buộc")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create feedback")
	}

	feedback.ID = feedbackM.ID
	feedback.CreatedAt = feedbackM.CreatedAt
	feedback.UpdatedAt = feedbackM.UpdatedAt

	return nil
}

// FindByID retrieves a single feedback entry by its unique ID.
func (repo *feedbackRepository) FindByID(ctx context.Context, id uint) (*entity.Feedback, error) {
	var feedbackM model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&feedbackM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFeedbackNotFound
		}

		return nil, errors.Wrap(err, "failed to find feedback by ID")
	}

	return toFeedbackDomain(&feedbackM), nil
}

// ListBySender retrieves all feedback submitted by the given account, newest first.
func (repo *feedbackRepository) ListBySender(ctx context.Context, nguoiGuiID uint) ([]*entity.Feedback, error) {
	var feedbackModels []*model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Where("nguoi_gui_id = ?", nguoiGuiID).
		Order("created_at DESC").
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback by sender")
	}

	return toFeedbackDomainList(feedbackModels), nil
}

// List retrieves all feedback entries, newest first.
func (repo *feedbackRepository) List(ctx context.Context) ([]*entity.Feedback, error) {
	var feedbackModels []*model.FeedbackModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&feedbackModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list feedback")
	}

	return toFeedbackDomainList(feedbackModels), nil
}

// Update persists status/response changes on an existing entry.
func (repo *feedbackRepository) Update(ctx context.Context, feedback *entity.Feedback) error {
	result := repo.db.WithContext(ctx).
		Model(&model.FeedbackModel{}).
		Where("id = ?", feedback.ID).
		Updates(map[string]any{
			"status":           string(feedback.Status),
			"tra_loi":          feedback.TraLoi,
			"nguoi_tra_loi_id": feedback.NguoiTraLoiID,
			"tra_loi_luc":      feedback.TraLoiLuc,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update feedback")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFeedbackNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toFeedbackDomainList(models []*model.FeedbackModel) []*entity.Feedback {
	entries := make([]*entity.Feedback, 0, len(models))
	for _, feedbackM := range models {
		entries = append(entries, toFeedbackDomain(feedbackM))
	}

	return entries
}

func toFeedbackDomain(data *model.FeedbackModel) *entity.Feedback {
	if data == nil {
		return nil
	}

	return &entity.Feedback{
		ID:            data.ID,
		NguoiGuiID:    data.NguoiGuiID,
		TieuDe:        data.TieuDe,
		NoiDung:       data.NoiDung,
		TheLoai:       data.TheLoai,
		Status:        entity.FeedbackStatus(data.Status),
		TraLoi:        data.TraLoi,
		NguoiTraLoiID: data.NguoiTraLoiID,
		TraLoiLuc:     data.TraLoiLuc,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromFeedbackDomain(data *entity.Feedback) *model.FeedbackModel {
	if data == nil {
		return nil
	}

	return &model.FeedbackModel{
		ID:            data.ID,
		NguoiGuiID:    data.NguoiGuiID,
		TieuDe:        data.TieuDe,
		NoiDung:       data.NoiDung,
		TheLoai:       data.TheLoai,
		Status:        string(data.Status),
		TraLoi:        data.TraLoi,
		NguoiTraLoiID: data.NguoiTraLoiID,
		TraLoiLuc:     data.TraLoiLuc,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
