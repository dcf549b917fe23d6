package impl

import (
	"context"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/errors"
	"hokhau/internal/usecase"
)

// DeceasedResult is the outcome of an approved DECEASED request.
type DeceasedResult struct {
	PersonID uint   `json:"personId"`
	NgayMat  string `json:"ngayMat"`
	LyDo     string `json:"lyDo"`
	NoiMat   string `json:"noiMat,omitempty"`
}

// applyDeceased marks a resident khai_tu and appends the life event row.
func (s *requestService) applyDeceased(ctx context.Context, ac *approvalContext) (any, error) {
	var payload usecase.DeceasedPayload
	if err := parsePayload(ac.request.Payload, &payload); err != nil {
		return nil, err
	}

	personID := payload.ResolvePersonID()
	if personID == nil {
		return nil, domainerrors.NewValidation("Nhân khẩu khai tử (nhanKhauId) là bắt buộc")
	}
	ngayMat, err := usecase.ParseDate(payload.NgayMat)
	if err != nil {
		return nil, domainerrors.NewValidation("Ngày mất không hợp lệ")
	}

	residents := ac.repos.NewResidentRepository()
	resident, err := residents.FindByID(ctx, *personID)
	if err != nil {
		if errors.Is(err, repository.ErrResidentNotFound) {
			return nil, domainerrors.ErrPersonNotFound
		}
		return nil, errors.Wrap(err, "failed to load resident")
	}
	if resident.TrangThai == entity.ResidencyKhaiTu {
		return nil, domainerrors.ErrAlreadyDeceased
	}

	if err := residents.UpdateStatus(ctx, resident.ID, entity.ResidencyKhaiTu); err != nil {
		return nil, errors.Wrap(err, "failed to update residency status")
	}

	noiDung := payload.LyDo
	if payload.NoiMat != "" {
		noiDung += " - " + payload.NoiMat
	}
	hoKhauID := resident.HoKhauID
	if err := ac.repos.NewLifeEventRepository().Append(ctx, &entity.LifeEvent{
		NhanKhauID:   resident.ID,
		HoKhauID:     &hoKhauID,
		Type:         entity.LifeEventKhaiTu,
		NgayBienDong: ngayMat,
		NoiDung:      noiDung,
		NguoiTaoID:   ac.actor.ID,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to append life event")
	}

	return &DeceasedResult{
		PersonID: resident.ID,
		NgayMat:  payload.NgayMat,
		LyDo:     payload.LyDo,
		NoiMat:   payload.NoiMat,
	}, nil
}
