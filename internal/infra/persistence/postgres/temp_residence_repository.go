package postgres

import (
	"context"
	"time"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tempResidenceRepository implements the repository.TempResidenceRepository interface.
type tempResidenceRepository struct {
	db *gorm.DB
}

// NewTempResidenceRepository is the constructor for tempResidenceRepository.
func NewTempResidenceRepository(db *gorm.DB) repository.TempResidenceRepository {
	return &tempResidenceRepository{
		db: db,
	}
}

// Create persists a new temporary residence/absence record.
func (repo *tempResidenceRepository) Create(ctx context.Context, record *entity.TempResidenceRecord) error {
	recordM := fromTempResidenceDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPersonNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create temporary record")
	}

	record.ID = recordM.ID
	record.CreatedAt = recordM.CreatedAt

	return nil
}

// CountActiveByResident counts the resident's records that are still active
// at the given date: pending or approved, with a nil or unexpired end date.
func (repo *tempResidenceRepository) CountActiveByResident(ctx context.Context, nhanKhauID uint, today time.Time) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.TempResidenceModel{}).
		Where("nhan_khau_id = ?", nhanKhauID).
		Where("status IN ?", []string{string(entity.TempChoDuyet), string(entity.TempDaDuyet)}).
		Where("den_ngay IS NULL OR den_ngay >= ?", today).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count active temporary records")
	}

	return count, nil
}

// ListByResident retrieves all records of a resident, newest first.
func (repo *tempResidenceRepository) ListByResident(ctx context.Context, nhanKhauID uint) ([]*entity.TempResidenceRecord, error) {
	var recordModels []*model.TempResidenceModel

	if err := repo.db.WithContext(ctx).
		Where("nhan_khau_id = ?", nhanKhauID).
		Order("created_at DESC").
		Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list temporary records by resident")
	}

	records := make([]*entity.TempResidenceRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		records = append(records, toTempResidenceDomain(recordM))
	}

	return records, nil
}

// --- Mapper Functions ---

// toTempResidenceDomain converts a GORM TempResidenceModel to a domain entity.
func toTempResidenceDomain(data *model.TempResidenceModel) *entity.TempResidenceRecord {
	if data == nil {
		return nil
	}

	return &entity.TempResidenceRecord{
		ID:            data.ID,
		NhanKhauID:    data.NhanKhauID,
		Type:          entity.TempRecordType(data.Type),
		TuNgay:        data.TuNgay,
		DenNgay:       data.DenNgay,
		DiaChi:        data.DiaChi,
		LyDo:          data.LyDo,
		NguoiDangKyID: data.NguoiDangKyID,
		NguoiDuyetID:  data.NguoiDuyetID,
		Status:        entity.TempRecordStatus(data.Status),
		CreatedAt:     data.CreatedAt,
	}
}

// fromTempResidenceDomain converts a domain entity to a GORM TempResidenceModel.
func fromTempResidenceDomain(data *entity.TempResidenceRecord) *model.TempResidenceModel {
	if data == nil {
		return nil
	}

	return &model.TempResidenceModel{
		ID:            data.ID,
		NhanKhauID:    data.NhanKhauID,
		Type:          string(data.Type),
		TuNgay:        data.TuNgay,
		DenNgay:       data.DenNgay,
		DiaChi:        data.DiaChi,
		LyDo:          data.LyDo,
		NguoiDangKyID: data.NguoiDangKyID,
		NguoiDuyetID:  data.NguoiDuyetID,
		Status:        string(data.Status),
		CreatedAt:     data.CreatedAt,
	}
}
