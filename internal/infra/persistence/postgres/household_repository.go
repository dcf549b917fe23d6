// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// householdRepository implements the repository.HouseholdRepository interface.
type householdRepository struct {
	db *gorm.DB
}

// NewHouseholdRepository is the constructor for householdRepository.
func NewHouseholdRepository(db *gorm.DB) repository.HouseholdRepository {
	return &householdRepository{
		db: db,
	}
}

// FindByID retrieves a single household by its unique ID.
func (repo *householdRepository) FindByID(ctx context.Context, id uint) (*entity.Household, error) {
	var householdM model.HouseholdModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&householdM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHouseholdNotFound
		}

		return nil, errors.Wrap(err, "failed to find household by ID")
	}

	return toHouseholdDomain(&householdM), nil
}

// FindBySoHoKhau retrieves a household by its unique code.
func (repo *householdRepository) FindBySoHoKhau(ctx context.Context, soHoKhau string) (*entity.Household, error) {
	var householdM model.HouseholdModel

	if err := repo.db.WithContext(ctx).
		Where("so_ho_khau = ?", soHoKhau).
		First(&householdM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHouseholdNotFound
		}

		return nil, errors.Wrap(err, "failed to find household by code")
	}

	return toHouseholdDomain(&householdM), nil
}

// List retrieves all households ordered by ID.
func (repo *householdRepository) List(ctx context.Context) ([]*entity.Household, error) {
	var householdModels []*model.HouseholdModel

	if err := repo.db.WithContext(ctx).
		Order("id ASC").
		Find(&householdModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list households")
	}

	households := make([]*entity.Household, 0, len(householdModels))
	for _, householdM := range householdModels {
		households = append(households, toHouseholdDomain(householdM))
	}

	return households, nil
}

// Create persists a new household.
func (repo *householdRepository) Create(ctx context.Context, household *entity.Household) error {
	householdM := fromHouseholdDomain(household)

	if err := repo.db.WithContext(ctx).Create(householdM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicate
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewValidation("Thiếu thông tin hộ khẩu bắt buộc")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create household")
	}

	household.ID = householdM.ID
	household.CreatedAt = householdM.CreatedAt
	household.UpdatedAt = householdM.UpdatedAt

	return nil
}

// SetHead updates the household's head-of-household reference only.
func (repo *householdRepository) SetHead(ctx context.Context, id uint, chuHoID *uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HouseholdModel{}).
		Where("id = ?", id).
		Update("chu_ho_id", chuHoID)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set head of household")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHouseholdNotFound
	}

	return nil
}

// Activate marks the household active and assigns its head in one update.
func (repo *householdRepository) Activate(ctx context.Context, id uint, chuHoID uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HouseholdModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":    string(entity.HouseholdActive),
			"chu_ho_id": chuHoID,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to activate household")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHouseholdNotFound
	}

	return nil
}

// Deactivate marks the household inactive and clears its head.
func (repo *householdRepository) Deactivate(ctx context.Context, id uint) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HouseholdModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":    string(entity.HouseholdInactive),
			"chu_ho_id": nil,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate household")
	}

	if result.RowsAffected == 0 {
		return repository.ErrHouseholdNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toHouseholdDomain converts a GORM HouseholdModel to a domain Household entity.
func toHouseholdDomain(data *model.HouseholdModel) *entity.Household {
	if data == nil {
		return nil
	}

	return &entity.Household{
		ID:        data.ID,
		SoHoKhau:  data.SoHoKhau,
		DiaChi:    data.DiaChi,
		Phuong:    data.Phuong,
		Quan:      data.Quan,
		ThanhPho:  data.ThanhPho,
		Status:    entity.HouseholdStatus(data.Status),
		ChuHoID:   data.ChuHoID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromHouseholdDomain converts a domain Household entity to a GORM HouseholdModel.
func fromHouseholdDomain(data *entity.Household) *model.HouseholdModel {
	if data == nil {
		return nil
	}

	return &model.HouseholdModel{
		ID:        data.ID,
		SoHoKhau:  data.SoHoKhau,
		DiaChi:    data.DiaChi,
		Phuong:    data.Phuong,
		Quan:      data.Quan,
		ThanhPho:  data.ThanhPho,
		Status:    string(data.Status),
		ChuHoID:   data.ChuHoID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
