package impl

import (
	"context"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/errors"
	"hokhau/internal/usecase"
)

// applyAddPerson inserts a new resident into the target household. When the
// relation is chu_ho it also promotes the resident to head of household.
func (s *requestService) applyAddPerson(ctx context.Context, ac *approvalContext) (any, error) {
	var payload usecase.AddPersonPayload
	if err := parsePayload(ac.request.Payload, &payload); err != nil {
		return nil, err
	}

	household, err := resolveTargetHousehold(ctx, ac, payload.HoKhauID)
	if err != nil {
		return nil, err
	}

	quanHe := entity.Relation(payload.QuanHe)
	if payload.QuanHe == "" {
		quanHe = entity.RelationKhac
	}
	if !quanHe.IsValid() {
		return nil, domainerrors.ErrInvalidRelationship
	}

	resident, err := insertResident(ctx, ac, household, &payload, quanHe, entity.ResidencyActive, false)
	if err != nil {
		return nil, err
	}

	// A new head also becomes the household's head reference; the
	// DUPLICATE_CHU_HO check in insertResident already ruled out a second one.
	if quanHe == entity.RelationChuHo {
		if err := ac.repos.NewHouseholdRepository().SetHead(ctx, household.ID, &resident.ID); err != nil {
			return nil, errors.Wrap(err, "failed to update head of household")
		}
	}

	return resident, nil
}

// applyAddNewborn inserts a newborn into the target household. Newborns are
// always registered with relation con and today's registration date.
func (s *requestService) applyAddNewborn(ctx context.Context, ac *approvalContext) (any, error) {
	var payload usecase.AddPersonPayload
	if err := parsePayload(ac.request.Payload, &payload); err != nil {
		return nil, err
	}

	household, err := resolveTargetHousehold(ctx, ac, payload.HoKhauID)
	if err != nil {
		return nil, err
	}

	resident, err := insertResident(ctx, ac, household, &payload, entity.RelationCon, entity.ResidencyActive, true)
	if err != nil {
		return nil, err
	}

	return resident, nil
}

// insertResident runs the shared duplicate checks and persists the resident.
// All reads happen inside the approval transaction so the checks see current
// state, not submission-time state.
func insertResident(ctx context.Context, ac *approvalContext, household *entity.Household, payload *usecase.AddPersonPayload, quanHe entity.Relation, trangThai entity.ResidencyStatus, newborn bool) (*entity.Resident, error) {
	residents := ac.repos.NewResidentRepository()

	ngaySinh, err := usecase.ParseDate(payload.NgaySinh)
	if err != nil {
		return nil, domainerrors.NewValidation("Ngày sinh không hợp lệ")
	}

	if payload.CCCD != "" {
		existing, err := residents.FindByCCCD(ctx, payload.CCCD)
		if err != nil && !errors.Is(err, repository.ErrResidentNotFound) {
			return nil, errors.Wrap(err, "failed to check national ID uniqueness")
		}
		if existing != nil {
			return nil, domainerrors.ErrDuplicateCCCD
		}
	}

	exists, err := residents.ExistsByNameAndBirthDate(ctx, household.ID, payload.HoTen, ngaySinh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check duplicate resident")
	}
	if exists {
		if newborn {
			return nil, domainerrors.ErrDuplicateNewborn
		}
		return nil, domainerrors.ErrDuplicatePerson
	}

	if quanHe == entity.RelationChuHo {
		heads, err := residents.CountByRelation(ctx, household.ID, entity.RelationChuHo)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count heads of household")
		}
		if heads > 0 {
			return nil, domainerrors.ErrDuplicateChuHo
		}
	}

	resident := &entity.Resident{
		HoKhauID:   household.ID,
		HoTen:      payload.HoTen,
		CCCD:       payload.CCCD,
		NgaySinh:   ngaySinh,
		GioiTinh:   entity.Sex(payload.GioiTinh),
		NoiSinh:    payload.NoiSinh,
		DanToc:     payload.DanToc,
		TonGiao:    payload.TonGiao,
		QuocTich:   payload.QuocTich,
		QuanHe:     quanHe,
		TrangThai:  trangThai,
		NgayDangKy: today(),
	}
	if err := residents.Create(ctx, resident); err != nil {
		return nil, err
	}

	return resident, nil
}
