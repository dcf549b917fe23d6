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

// residentRepository implements the repository.ResidentRepository interface.
type residentRepository struct {
	db *gorm.DB
}

// NewResidentRepository is the constructor for residentRepository.
func NewResidentRepository(db *gorm.DB) repository.ResidentRepository {
	return &residentRepository{
		db: db,
	}
}

// FindByID retrieves a single resident by their unique ID.
func (repo *residentRepository) FindByID(ctx context.Context, id uint) (*entity.Resident, error) {
	var residentM model.ResidentModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&residentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find resident by ID")
	}

	return toResidentDomain(&residentM), nil
}

// FindByHousehold retrieves all residents of a household ordered by ID.
func (repo *residentRepository) FindByHousehold(ctx context.Context, hoKhauID uint) ([]*entity.Resident, error) {
	var residentModels []*model.ResidentModel

	if err := repo.db.WithContext(ctx).
		Where("ho_khau_id = ?", hoKhauID).
		Order("id ASC").
		Find(&residentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find residents by household")
	}

	residents := make([]*entity.Resident, 0, len(residentModels))
	for _, residentM := range residentModels {
		residents = append(residents, toResidentDomain(residentM))
	}

	return residents, nil
}

// FindByCCCD retrieves the resident holding the given national ID, if any.
func (repo *residentRepository) FindByCCCD(ctx context.Context, cccd string) (*entity.Resident, error) {
	var residentM model.ResidentModel

	if err := repo.db.WithContext(ctx).
		Where("cccd = ?", cccd).
		First(&residentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResidentNotFound
		}

		return nil, errors.Wrap(err, "failed to find resident by CCCD")
	}

	return toResidentDomain(&residentM), nil
}

// ExistsByNameAndBirthDate reports whether the household already has a
// resident with the given full name and birth date.
func (repo *residentRepository) ExistsByNameAndBirthDate(ctx context.Context, hoKhauID uint, hoTen string, ngaySinh time.Time) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ResidentModel{}).
		Where("ho_khau_id = ? AND ho_ten = ? AND ngay_sinh = ?", hoKhauID, hoTen, ngaySinh).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check resident by name and birth date")
	}

	return count > 0, nil
}

// CountByRelation counts residents of the household with the given relation.
func (repo *residentRepository) CountByRelation(ctx context.Context, hoKhauID uint, quanHe entity.Relation) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.ResidentModel{}).
		Where("ho_khau_id = ? AND quan_he = ?", hoKhauID, string(quanHe)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count residents by relation")
	}

	return count, nil
}

// Create persists a new resident.
func (repo *residentRepository) Create(ctx context.Context, resident *entity.Resident) error {
	residentM := fromResidentDomain(resident)

	if err := repo.db.WithContext(ctx).Create(residentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateCCCD
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrHouseholdNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidation("Thiếu thông tin nhân khẩu bắt buộc")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create resident")
	}

	resident.ID = residentM.ID
	resident.CreatedAt = residentM.CreatedAt
	resident.UpdatedAt = residentM.UpdatedAt

	return nil
}

// UpdateStatus sets the resident's residency status.
func (repo *residentRepository) UpdateStatus(ctx context.Context, id uint, trangThai entity.ResidencyStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ResidentModel{}).
		Where("id = ?", id).
		Update("trang_thai", string(trangThai))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update resident status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResidentNotFound
	}

	return nil
}

// UpdateRelation sets the resident's relation to the head of household.
func (repo *residentRepository) UpdateRelation(ctx context.Context, id uint, quanHe entity.Relation) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ResidentModel{}).
		Where("id = ?", id).
		Update("quan_he", string(quanHe))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update resident relation")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResidentNotFound
	}

	return nil
}

// MoveToHousehold reassigns the resident to another household.
func (repo *residentRepository) MoveToHousehold(ctx context.Context, id uint, hoKhauID uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ResidentModel{}).
		Where("id = ?", id).
		Update("ho_khau_id", hoKhauID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to move resident to household")
	}

	if result.RowsAffected == 0 {
		return repository.ErrResidentNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toResidentDomain converts a GORM ResidentModel to a domain Resident entity.
func toResidentDomain(data *model.ResidentModel) *entity.Resident {
	if data == nil {
		return nil
	}

	cccd := ""
	if data.CCCD != nil {
		cccd = *data.CCCD
	}

	return &entity.Resident{
		ID:         data.ID,
		HoKhauID:   data.HoKhauID,
		HoTen:      data.HoTen,
		CCCD:       cccd,
		NgaySinh:   data.NgaySinh,
		GioiTinh:   entity.Sex(data.GioiTinh),
		NoiSinh:    data.NoiSinh,
		DanToc:     data.DanToc,
		TonGiao:    data.TonGiao,
		QuocTich:   data.QuocTich,
		QuanHe:     entity.Relation(data.QuanHe),
		TrangThai:  entity.ResidencyStatus(data.TrangThai),
		NgayDangKy: data.NgayDangKy,
		TaiKhoanID: data.TaiKhoanID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromResidentDomain converts a domain Resident entity to a GORM ResidentModel.
// An empty CCCD is stored as NULL so the unique index only applies to rows
// that actually carry a national ID.
func fromResidentDomain(data *entity.Resident) *model.ResidentModel {
	if data == nil {
		return nil
	}

	var cccd *string
	if data.CCCD != "" {
		value := data.CCCD
		cccd = &value
	}

	return &model.ResidentModel{
		ID:         data.ID,
		HoKhauID:   data.HoKhauID,
		HoTen:      data.HoTen,
		CCCD:       cccd,
		NgaySinh:   data.NgaySinh,
		GioiTinh:   string(data.GioiTinh),
		NoiSinh:    data.NoiSinh,
		DanToc:     data.DanToc,
		TonGiao:    data.TonGiao,
		QuocTich:   data.QuocTich,
		QuanHe:     string(data.QuanHe),
		TrangThai:  string(data.TrangThai),
		NgayDangKy: data.NgayDangKy,
		TaiKhoanID: data.TaiKhoanID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
