package impl

import (
	"context"
	"fmt"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/errors"
	"hokhau/internal/usecase"
)

// SplitResult is the outcome of an approved SPLIT_HOUSEHOLD request.
type SplitResult struct {
	NewHouseholdID      uint   `json:"newHouseholdId"`
	NewSoHoKhau         string `json:"newSoHoKhau"`
	OriginalHouseholdID uint   `json:"originalHouseholdId"`
}

// applySplitHousehold moves the selected residents into a newly created
// household, promotes the designated head, and repairs the original
// household's head if it moved out. Runs entirely inside the approval
// transaction: any failure leaves no resident half-migrated.
func (s *requestService) applySplitHousehold(ctx context.Context, ac *approvalContext) (any, error) {
	var payload usecase.SplitHouseholdPayload
	if err := parsePayload(ac.request.Payload, &payload); err != nil {
		return nil, err
	}

	households := ac.repos.NewHouseholdRepository()
	residents := ac.repos.NewResidentRepository()

	origID := ac.request.TargetHoKhauID
	if origID == nil {
		origID = payload.HoKhauID
	}
	if origID == nil {
		return nil, domainerrors.ErrHouseholdRequired
	}
	original, err := households.FindByID(ctx, *origID)
	if err != nil {
		if errors.Is(err, repository.ErrHouseholdNotFound) {
			return nil, domainerrors.ErrHouseholdNotFound
		}
		return nil, errors.Wrap(err, "failed to load original household")
	}

	// Re-check membership against current state; a stale selection rejects
	// the whole operation rather than partially splitting.
	members, err := residents.FindByHousehold(ctx, original.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load household members")
	}
	byID := make(map[uint]*entity.Resident, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	for _, id := range payload.SelectedNhanKhauIDs {
		if _, ok := byID[id]; !ok {
			return nil, domainerrors.NewValidation(fmt.Sprintf("Nhân khẩu %d không thuộc hộ khẩu %d", id, original.ID))
		}
	}
	if !containsID(payload.SelectedNhanKhauIDs, payload.NewChuHoID) {
		return nil, domainerrors.NewValidation("Chủ hộ mới phải nằm trong danh sách nhân khẩu được tách")
	}

	newHousehold := &entity.Household{
		SoHoKhau: s.codeGen.Generate(),
		DiaChi:   payload.NewAddress,
		Phuong:   original.Phuong,
		Quan:     original.Quan,
		ThanhPho: original.ThanhPho,
		Status:   entity.HouseholdInactive,
	}
	if err := households.Create(ctx, newHousehold); err != nil {
		return nil, err
	}

	// Move everyone over. The designated head gets chu_ho; any other mover
	// holding chu_ho is demoted so two heads never coexist in the new
	// household, even transiently.
	lifeEvents := ac.repos.NewLifeEventRepository()
	for _, id := range payload.SelectedNhanKhauIDs {
		if err := residents.MoveToHousehold(ctx, id, newHousehold.ID); err != nil {
			return nil, errors.Wrap(err, "failed to move resident to new household")
		}
		if err := lifeEvents.Append(ctx, &entity.LifeEvent{
			NhanKhauID:   id,
			HoKhauID:     &newHousehold.ID,
			Type:         entity.LifeEventChuyenHoKhau,
			NgayBienDong: today(),
			NoiDung:      fmt.Sprintf("Chuyển từ hộ khẩu %s sang hộ khẩu %s", original.SoHoKhau, newHousehold.SoHoKhau),
			NguoiTaoID:   ac.actor.ID,
		}); err != nil {
			return nil, errors.Wrap(err, "failed to append household change event")
		}
		switch {
		case id == payload.NewChuHoID:
			if err := residents.UpdateRelation(ctx, id, entity.RelationChuHo); err != nil {
				return nil, errors.Wrap(err, "failed to promote new head")
			}
		case byID[id].QuanHe == entity.RelationChuHo:
			if err := residents.UpdateRelation(ctx, id, entity.RelationKhac); err != nil {
				return nil, errors.Wrap(err, "failed to demote moved head")
			}
		}
	}

	if err := households.Activate(ctx, newHousehold.ID, payload.NewChuHoID); err != nil {
		return nil, errors.Wrap(err, "failed to activate new household")
	}

	// If the original head moved out, back-fill from the remaining members
	// (lowest ID), or deactivate the household when nobody is left.
	if original.ChuHoID != nil && containsID(payload.SelectedNhanKhauIDs, *original.ChuHoID) {
		remaining, err := residents.FindByHousehold(ctx, original.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load remaining members")
		}
		if len(remaining) == 0 {
			if err := households.Deactivate(ctx, original.ID); err != nil {
				return nil, errors.Wrap(err, "failed to deactivate emptied household")
			}
		} else {
			successor := remaining[0]
			if err := residents.UpdateRelation(ctx, successor.ID, entity.RelationChuHo); err != nil {
				return nil, errors.Wrap(err, "failed to promote successor head")
			}
			if err := households.SetHead(ctx, original.ID, &successor.ID); err != nil {
				return nil, errors.Wrap(err, "failed to update original household head")
			}
		}
	}

	audits := ac.repos.NewAuditRepository()
	movedDetail := fmt.Sprintf("Tách %d nhân khẩu %v sang hộ khẩu %s", len(payload.SelectedNhanKhauIDs), payload.SelectedNhanKhauIDs, newHousehold.SoHoKhau)
	if err := audits.Append(ctx, &entity.AuditEntry{
		HoKhauID:   original.ID,
		Action:     "tach_ho_chuyen_di",
		NoiDung:    movedDetail,
		NguoiTaoID: ac.actor.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to write audit entry for original household")
	}
	provenance := fmt.Sprintf("Thành lập từ hộ khẩu %s với %d nhân khẩu %v", original.SoHoKhau, len(payload.SelectedNhanKhauIDs), payload.SelectedNhanKhauIDs)
	if err := audits.Append(ctx, &entity.AuditEntry{
		HoKhauID:   newHousehold.ID,
		Action:     "tach_ho_tao_moi",
		NoiDung:    provenance,
		NguoiTaoID: ac.actor.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to write audit entry for new household")
	}

	return &SplitResult{
		NewHouseholdID:      newHousehold.ID,
		NewSoHoKhau:         newHousehold.SoHoKhau,
		OriginalHouseholdID: original.ID,
	}, nil
}
