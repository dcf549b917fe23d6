package postgres

import (
	"context"
	"encoding/json"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// requestRepository implements the repository.RequestRepository interface.
type requestRepository struct {
	db *gorm.DB
}

// NewRequestRepository is the constructor for requestRepository.
func NewRequestRepository(db *gorm.DB) repository.RequestRepository {
	return &requestRepository{
		db: db,
	}
}

// Create persists a new request row.
func (repo *requestRepository) Create(ctx context.Context, request *entity.Request) error {
	requestM := fromRequestDomain(request)

	if err := repo.db.WithContext(ctx).Create(requestM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFKViolation
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidation("Thiếu thông tin yêu cầu bắt buộc")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create request")
	}

	request.ID = requestM.ID
	request.CreatedAt = requestM.CreatedAt

	return nil
}

// FindByID retrieves a single request by its unique ID.
func (repo *requestRepository) FindByID(ctx context.Context, id uint) (*entity.Request, error) {
	var requestM model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to find request by ID")
	}

	return toRequestDomain(&requestM), nil
}

// FindByIDForUpdate retrieves a request and locks its row for the duration of
// the surrounding transaction. Row locks are only issued on dialects that
// support SELECT ... FOR UPDATE; SQLite serializes writers at the transaction
// level instead.
func (repo *requestRepository) FindByIDForUpdate(ctx context.Context, id uint) (*entity.Request, error) {
	var requestM model.RequestModel

	query := repo.db.WithContext(ctx)
	if repo.db.Dialector.Name() == "postgres" {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	if err := query.
		Where("id = ?", id).
		First(&requestM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRequestNotFound
		}

		return nil, errors.Wrap(err, "failed to lock request row")
	}

	return toRequestDomain(&requestM), nil
}

// UpdateResolution persists the resolved status together with the reviewer
// fields and, for rejections, the reason.
func (repo *requestRepository) UpdateResolution(ctx context.Context, request *entity.Request) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RequestModel{}).
		Where("id = ?", request.ID).
		Updates(map[string]any{
			"status":           string(request.Status),
			"rejection_reason": request.RejectionReason,
			"reviewed_by":      request.ReviewedBy,
			"reviewed_at":      request.ReviewedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update request resolution")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRequestNotFound
	}

	return nil
}

// ListByRequester retrieves all requests submitted by the given account, newest first.
func (repo *requestRepository) ListByRequester(ctx context.Context, nguoiYeuCauID uint) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("nguoi_yeu_cau_id = ?", nguoiYeuCauID).
		Order("created_at DESC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests by requester")
	}

	return toRequestDomainList(requestModels), nil
}

// ListByStatus retrieves all requests in the given status, oldest first.
func (repo *requestRepository) ListByStatus(ctx context.Context, status entity.RequestStatus) ([]*entity.Request, error) {
	var requestModels []*model.RequestModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", string(status)).
		Order("created_at ASC").
		Find(&requestModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list requests by status")
	}

	return toRequestDomainList(requestModels), nil
}

// --- Mapper Functions ---

func toRequestDomainList(models []*model.RequestModel) []*entity.Request {
	requests := make([]*entity.Request, 0, len(models))
	for _, requestM := range models {
		requests = append(requests, toRequestDomain(requestM))
	}

	return requests
}

// toRequestDomain converts a GORM RequestModel to a domain Request entity.
func toRequestDomain(data *model.RequestModel) *entity.Request {
	if data == nil {
		return nil
	}

	return &entity.Request{
		ID:               data.ID,
		NguoiYeuCauID:    data.NguoiYeuCauID,
		Type:             entity.RequestType(data.Type),
		Payload:          json.RawMessage(data.Payload),
		Status:           entity.RequestStatus(data.Status),
		TargetHoKhauID:   data.TargetHoKhauID,
		TargetNhanKhauID: data.TargetNhanKhauID,
		RejectionReason:  data.RejectionReason,
		ReviewedBy:       data.ReviewedBy,
		ReviewedAt:       data.ReviewedAt,
		CreatedAt:        data.CreatedAt,
	}
}

// fromRequestDomain converts a domain Request entity to a GORM RequestModel.
func fromRequestDomain(data *entity.Request) *model.RequestModel {
	if data == nil {
		return nil
	}

	return &model.RequestModel{
		ID:               data.ID,
		NguoiYeuCauID:    data.NguoiYeuCauID,
		Type:             string(data.Type),
		Payload:          []byte(data.Payload),
		Status:           string(data.Status),
		TargetHoKhauID:   data.TargetHoKhauID,
		TargetNhanKhauID: data.TargetNhanKhauID,
		RejectionReason:  data.RejectionReason,
		ReviewedBy:       data.ReviewedBy,
		ReviewedAt:       data.ReviewedAt,
		CreatedAt:        data.CreatedAt,
	}
}
