package repository

import (
	"context"
	"errors"
	"time"

	"hokhau/internal/domain/entity"
)

// ErrResidentNotFound is a domain-specific error returned when a resident is not found.
var ErrResidentNotFound = errors.New("resident not found")

// ResidentRepository defines the standard operations for resident persistence.
// Residents are never deleted; lifecycle changes are status updates.
type ResidentRepository interface {
	// FindByID retrieves a single resident by their unique ID.
	FindByID(ctx context.Context, id uint) (*entity.Resident, error)

	// FindByHousehold retrieves all residents of a household ordered by ID.
	FindByHousehold(ctx context.Context, hoKhauID uint) ([]*entity.Resident, error)

	// FindByCCCD retrieves the resident holding the given national ID, if any.
	FindByCCCD(ctx context.Context, cccd string) (*entity.Resident, error)

	// ExistsByNameAndBirthDate reports whether the household already has a
	// resident with the given full name and birth date.
	ExistsByNameAndBirthDate(ctx context.Context, hoKhauID uint, hoTen string, ngaySinh time.Time) (bool, error)

	// CountByRelation counts residents of the household with the given relation.
	CountByRelation(ctx context.Context, hoKhauID uint, quanHe entity.Relation) (int64, error)

	// Create persists a new resident entity to the storage.
	Create(ctx context.Context, resident *entity.Resident) error

	// UpdateStatus sets the resident's residency status.
	UpdateStatus(ctx context.Context, id uint, trangThai entity.ResidencyStatus) error

	// UpdateRelation sets the resident's relation to the head of household.
	UpdateRelation(ctx context.Context, id uint, quanHe entity.Relation) error

	// MoveToHousehold reassigns the resident to another household.
	MoveToHousehold(ctx context.Context, id uint, hoKhauID uint) error
}
