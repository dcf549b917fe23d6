package repository

import (
	"context"
	"time"

	"hokhau/internal/domain/entity"
)

// TempResidenceRepository defines the operations for temporary
// residence/absence record persistence.
type TempResidenceRepository interface {
	// Create persists a new temporary residence/absence record.
	Create(ctx context.Context, record *entity.TempResidenceRecord) error

	// CountActiveByResident counts the resident's records that are still
	// active at the given date: status cho_duyet or da_duyet, with a nil or
	// not-yet-elapsed end date.
	CountActiveByResident(ctx context.Context, nhanKhauID uint, today time.Time) (int64, error)

	// ListByResident retrieves all records of a resident, newest first.
	ListByResident(ctx context.Context, nhanKhauID uint) ([]*entity.TempResidenceRecord, error)
}
