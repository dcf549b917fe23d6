package impl

import (
	"context"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/errors"
	"hokhau/internal/usecase"

	"go.uber.org/fx"
)

type residentService struct {
	residentRepo  repository.ResidentRepository
	tempRepo      repository.TempResidenceRepository
	lifeEventRepo repository.LifeEventRepository
}

// ResidentServiceParams holds dependencies for ResidentService, injected by Fx.
type ResidentServiceParams struct {
	fx.In

	ResidentRepo  repository.ResidentRepository
	TempRepo      repository.TempResidenceRepository
	LifeEventRepo repository.LifeEventRepository
}

// NewResidentService creates the resident read service.
func NewResidentService(params ResidentServiceParams) usecase.ResidentUsecase {
	return &residentService{
		residentRepo:  params.ResidentRepo,
		tempRepo:      params.TempRepo,
		lifeEventRepo: params.LifeEventRepo,
	}
}

// Get retrieves a single resident.
func (s *residentService) Get(ctx context.Context, id uint) (*entity.Resident, error) {
	resident, err := s.residentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, domainerrors.ErrPersonNotFound
		}
		return nil, errors.Wrap(err, "failed to load resident")
	}

	return resident, nil
}

// ListTempRecords retrieves a resident's temporary residence and absence records.
func (s *residentService) ListTempRecords(ctx context.Context, id uint) ([]*entity.TempResidenceRecord, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	records, err := s.tempRepo.ListByResident(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list temporary records")
	}

	return records, nil
}

// ListLifeEvents retrieves a resident's life events.
func (s *residentService) ListLifeEvents(ctx context.Context, id uint) ([]*entity.LifeEvent, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return nil, err
	}

	events, err := s.lifeEventRepo.ListByResident(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list life events")
	}

	return events, nil
}
