package impl

import (
	"context"
	"time"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/errors"
	"hokhau/internal/usecase"
)

// The temporary-status state machine: a resident enters tam_tru or tam_vang
// only from a non-temporary status, and only while no other active record
// exists. There is no modelled transition back once DenNgay elapses; the
// record keeps its window so an external process can derive expiry.

// applyTemporaryResidence registers a temporary residence period. Without a
// nhanKhauId it first creates the resident in the target household with
// residency status pre-set to tam_tru.
func (s *requestService) applyTemporaryResidence(ctx context.Context, ac *approvalContext) (any, error) {
	var payload usecase.TemporaryResidencePayload
	if err := parsePayload(ac.request.Payload, &payload); err != nil {
		return nil, err
	}

	tuNgay, denNgay, err := parseTempWindow(payload.TuNgay, payload.DenNgay)
	if err != nil {
		return nil, err
	}

	var residentID uint
	if payload.NhanKhauID != nil {
		resident, err := loadResidentForTempStatus(ctx, ac, *payload.NhanKhauID)
		if err != nil {
			return nil, err
		}
		residentID = resident.ID
	} else {
		person := payload.Person
		if person == nil {
			return nil, domainerrors.NewValidation("Thiếu thông tin nhân khẩu")
		}
		embedded := payload.HoKhauID
		if embedded == nil {
			embedded = person.HoKhauID
		}
		household, err := resolveTargetHousehold(ctx, ac, embedded)
		if err != nil {
			return nil, err
		}
		quanHe := entity.Relation(person.QuanHe)
		if person.QuanHe == "" {
			quanHe = entity.RelationKhac
		}
		if !quanHe.IsValid() {
			return nil, domainerrors.ErrInvalidRelationship
		}
		resident, err := insertResident(ctx, ac, household, person, quanHe, entity.ResidencyTamTru, false)
		if err != nil {
			return nil, err
		}
		residentID = resident.ID
	}

	if err := insertTempRecord(ctx, ac, residentID, entity.TempTamTru, tuNgay, denNgay, payload.DiaChi, payload.LyDo); err != nil {
		return nil, err
	}
	if err := ac.repos.NewResidentRepository().UpdateStatus(ctx, residentID, entity.ResidencyTamTru); err != nil {
		return nil, errors.Wrap(err, "failed to update residency status")
	}

	return map[string]uint{"id": residentID}, nil
}

// applyTemporaryAbsence registers a temporary absence period for an existing
// resident.
func (s *requestService) applyTemporaryAbsence(ctx context.Context, ac *approvalContext) (any, error) {
	var payload usecase.TemporaryAbsencePayload
	if err := parsePayload(ac.request.Payload, &payload); err != nil {
		return nil, err
	}

	tuNgay, err := usecase.ParseDate(payload.TuNgay)
	if err != nil {
		return nil, domainerrors.NewValidation("Ngày bắt đầu không hợp lệ")
	}
	var denNgay *time.Time
	if payload.DenNgay != "" {
		d, err := usecase.ParseDate(payload.DenNgay)
		if err != nil {
			return nil, domainerrors.NewValidation("Ngày kết thúc không hợp lệ")
		}
		denNgay = &d
	}

	resident, err := loadResidentForTempStatus(ctx, ac, payload.NhanKhauID)
	if err != nil {
		return nil, err
	}

	if err := insertTempRecord(ctx, ac, resident.ID, entity.TempTamVang, tuNgay, denNgay, payload.NoiDen, payload.LyDo); err != nil {
		return nil, err
	}
	if err := ac.repos.NewResidentRepository().UpdateStatus(ctx, resident.ID, entity.ResidencyTamVang); err != nil {
		return nil, errors.Wrap(err, "failed to update residency status")
	}

	return map[string]uint{"id": resident.ID}, nil
}

// loadResidentForTempStatus loads a resident and verifies the transition
// into a temporary status is permitted: not already tam_tru/tam_vang and no
// other currently-active record.
func loadResidentForTempStatus(ctx context.Context, ac *approvalContext, nhanKhauID uint) (*entity.Resident, error) {
	resident, err := ac.repos.NewResidentRepository().FindByID(ctx, nhanKhauID)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, domainerrors.ErrPersonNotFound
		}
		return nil, errors.Wrap(err, "failed to load resident")
	}
	if resident.TrangThai.InTempStatus() {
		return nil, domainerrors.ErrPersonAlreadyInTempStatus
	}

	active, err := ac.repos.NewTempResidenceRepository().CountActiveByResident(ctx, resident.ID, today())
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active temporary records")
	}
	if active > 0 {
		return nil, domainerrors.ErrActiveTempRecordExists
	}

	return resident, nil
}

// insertTempRecord persists the record pre-approved: this call is the
// approval step, so the row is born da_duyet with the reviewer as approver.
func insertTempRecord(ctx context.Context, ac *approvalContext, nhanKhauID uint, recordType entity.TempRecordType, tuNgay time.Time, denNgay *time.Time, diaChi, lyDo string) error {
	approver := ac.actor.ID
	record := &entity.TempResidenceRecord{
		NhanKhauID:    nhanKhauID,
		Type:          recordType,
		TuNgay:        tuNgay,
		DenNgay:       denNgay,
		DiaChi:        diaChi,
		LyDo:          lyDo,
		NguoiDangKyID: ac.request.NguoiYeuCauID,
		NguoiDuyetID:  &approver,
		Status:        entity.TempDaDuyet,
	}
	if err := ac.repos.NewTempResidenceRepository().Create(ctx, record); err != nil {
		return errors.Wrap(err, "failed to create temporary record")
	}
	return nil
}

func parseTempWindow(tuNgayStr, denNgayStr string) (time.Time, *time.Time, error) {
	tuNgay, err := usecase.ParseDate(tuNgayStr)
	if err != nil {
		return time.Time{}, nil, domainerrors.NewValidation("Ngày bắt đầu không hợp lệ")
	}
	denNgay, err := usecase.ParseDate(denNgayStr)
	if err != nil {
		return time.Time{}, nil, domainerrors.NewValidation("Ngày kết thúc không hợp lệ")
	}
	return tuNgay, &denNgay, nil
}
