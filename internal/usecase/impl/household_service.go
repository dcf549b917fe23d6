package impl

import (
	"context"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/domain/service"
	"hokhau/internal/errors"
	"hokhau/internal/usecase"

	"go.uber.org/fx"
)

type householdService struct {
	householdRepo repository.HouseholdRepository
	residentRepo  repository.ResidentRepository
	auditRepo     repository.AuditRepository
	txManager     repository.TransactionManager
	codeGen       service.HouseholdCodeGenerator
}

// HouseholdServiceParams holds dependencies for HouseholdService, injected by Fx.
type HouseholdServiceParams struct {
	fx.In

	HouseholdRepo repository.HouseholdRepository
	ResidentRepo  repository.ResidentRepository
	AuditRepo     repository.AuditRepository
	TxManager     repository.TransactionManager
	CodeGen       service.HouseholdCodeGenerator
}

// NewHouseholdService creates the household administration service.
func NewHouseholdService(params HouseholdServiceParams) usecase.HouseholdUsecase {
	return &householdService{
		householdRepo: params.HouseholdRepo,
		residentRepo:  params.ResidentRepo,
		auditRepo:     params.AuditRepo,
		txManager:     params.TxManager,
		codeGen:       params.CodeGen,
	}
}

// List retrieves all households.
func (s *householdService) List(ctx context.Context) ([]*entity.Household, error) {
	households, err := s.householdRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list households")
	}

	return households, nil
}

// Get retrieves a household together with its members.
func (s *householdService) Get(ctx context.Context, id uint) (*entity.Household, error) {
	household, err := s.householdRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrHouseholdNotFound) {
			return nil, domainerrors.ErrHouseholdNotFound
		}
		return nil, errors.Wrap(err, "failed to load household")
	}

	members, err := s.residentRepo.FindByHousehold(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load household members")
	}
	household.NhanKhaus = members

	return household, nil
}

// Create registers a new inactive household with a generated code and no head.
func (s *householdService) Create(ctx context.Context, input *usecase.CreateHouseholdInput) (*entity.Household, error) {
	household := &entity.Household{
		SoHoKhau: s.codeGen.Generate(),
		DiaChi:   input.DiaChi,
		Phuong:   input.Phuong,
		Quan:     input.Quan,
		ThanhPho: input.ThanhPho,
		Status:   entity.HouseholdInactive,
	}
	if err := s.householdRepo.Create(ctx, household); err != nil {
		return nil, err
	}

	return household, nil
}

// Activate assigns the head and marks the household active, atomically. The
// designated resident must be a member and no other member may already hold
// chu_ho, preserving the single-head invariant.
func (s *householdService) Activate(ctx context.Context, id uint, chuHoID uint) (*entity.Household, error) {
	var activated *entity.Household

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		households := repos.NewHouseholdRepository()
		residents := repos.NewResidentRepository()

		household, err := households.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrHouseholdNotFound) {
				return domainerrors.ErrHouseholdNotFound
			}
			return errors.Wrap(err, "failed to load household")
		}
		if household.Status == entity.HouseholdActive {
			return domainerrors.ErrInvalidState
		}

		head, err := residents.FindByID(ctx, chuHoID)
		if err != nil {
			if errors.Is(err, repository.ErrResidentNotFound) {
				return domainerrors.ErrPersonNotFound
			}
			return errors.Wrap(err, "failed to load designated head")
		}
		if head.HoKhauID != id {
			return domainerrors.ErrPersonOutsideHousehold
		}

		heads, err := residents.CountByRelation(ctx, id, entity.RelationChuHo)
		if err != nil {
			return errors.Wrap(err, "failed to count heads of household")
		}
		if heads > 0 && head.QuanHe != entity.RelationChuHo {
			return domainerrors.ErrDuplicateChuHo
		}

		if err := residents.UpdateRelation(ctx, chuHoID, entity.RelationChuHo); err != nil {
			return errors.Wrap(err, "failed to set head relation")
		}
		if err := households.Activate(ctx, id, chuHoID); err != nil {
			return errors.Wrap(err, "failed to activate household")
		}

		household.Status = entity.HouseholdActive
		household.ChuHoID = &chuHoID
		activated = household

		return nil
	})
	if err != nil {
		return nil, err
	}

	return activated, nil
}

// ListResidents retrieves the household's members.
func (s *householdService) ListResidents(ctx context.Context, id uint) ([]*entity.Resident, error) {
	if _, err := s.householdRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrHouseholdNotFound) {
			return nil, domainerrors.ErrHouseholdNotFound
		}
		return nil, errors.Wrap(err, "failed to load household")
	}

	members, err := s.residentRepo.FindByHousehold(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load household members")
	}

	return members, nil
}

// ListAudit retrieves the household's change history.
func (s *householdService) ListAudit(ctx context.Context, id uint) ([]*entity.AuditEntry, error) {
	entries, err := s.auditRepo.ListByHousehold(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries")
	}

	return entries, nil
}
