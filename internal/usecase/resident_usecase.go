package usecase

import (
	"context"

	"hokhau/internal/domain/entity"
)

// ResidentUsecase covers read access to residents and their records.
type ResidentUsecase interface {
	// Get retrieves a single resident.
	Get(ctx context.Context, id uint) (*entity.Resident, error)

	// ListTempRecords retrieves a resident's temporary residence/absence
	// records, newest first.
	ListTempRecords(ctx context.Context, id uint) ([]*entity.TempResidenceRecord, error)

	// ListLifeEvents retrieves a resident's life events, newest first.
	ListLifeEvents(ctx context.Context, id uint) ([]*entity.LifeEvent, error)
}
