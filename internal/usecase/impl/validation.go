package impl

import (
	"encoding/json"
	"strings"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/usecase"
)

// The payload validators are pure: they inspect an already-parsed payload
// against the rules of one request type and return the first violated rule
// as a VALIDATION_ERROR, or nil. No registry state is consulted here; the
// approval handlers re-check everything stateful at apply time.

// parsePayload unmarshals raw into out, mapping malformed JSON to a
// VALIDATION_ERROR instead of leaking a decode error.
func parsePayload(raw json.RawMessage, out any) error {
	if len(raw) == 0 {
		return domainerrors.NewValidation("Thiếu dữ liệu yêu cầu")
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return domainerrors.NewValidation("Dữ liệu yêu cầu không hợp lệ")
	}
	return nil
}

// validateAddPerson checks the payload of an ADD_PERSON or ADD_NEWBORN
// request. hasTargetHousehold is true when the submitter is linked to a
// household (or the payload names one); quanHe is only required without it.
func validateAddPerson(p *usecase.AddPersonPayload, newborn bool, hasTargetHousehold bool) error {
	if err := validatePersonFields(p); err != nil {
		return err
	}
	if newborn && !p.IsMoiSinh {
		return domainerrors.NewValidation("Yêu cầu thêm trẻ mới sinh phải có đánh dấu isMoiSinh")
	}
	if !newborn && !hasTargetHousehold {
		if p.QuanHe == "" {
			return domainerrors.NewValidation("Quan hệ với chủ hộ là bắt buộc")
		}
		if !entity.Relation(p.QuanHe).IsValid() {
			return domainerrors.NewValidation("Quan hệ với chủ hộ không hợp lệ")
		}
	}
	return nil
}

// validatePersonFields is the AddPerson-style required-field check, shared
// with the nested person of a temporary-residence request.
func validatePersonFields(p *usecase.AddPersonPayload) error {
	if p == nil {
		return domainerrors.NewValidation("Thiếu thông tin nhân khẩu")
	}
	if strings.TrimSpace(p.HoTen) == "" {
		return domainerrors.NewValidation("Họ tên là bắt buộc")
	}
	if p.NgaySinh == "" {
		return domainerrors.NewValidation("Ngày sinh là bắt buộc")
	}
	if _, err := usecase.ParseDate(p.NgaySinh); err != nil {
		return domainerrors.NewValidation("Ngày sinh không hợp lệ")
	}
	if p.GioiTinh == "" {
		return domainerrors.NewValidation("Giới tính là bắt buộc")
	}
	if !entity.Sex(p.GioiTinh).IsValid() {
		return domainerrors.NewValidation("Giới tính không hợp lệ")
	}
	if strings.TrimSpace(p.NoiSinh) == "" {
		return domainerrors.NewValidation("Nơi sinh là bắt buộc")
	}
	return nil
}

// validateTemporaryResidence checks the payload of a TEMPORARY_RESIDENCE
// request. Without nhanKhauId the nested person must itself pass the
// AddPerson-style required-field check.
func validateTemporaryResidence(p *usecase.TemporaryResidencePayload) error {
	if p.TuNgay == "" {
		return domainerrors.NewValidation("Ngày bắt đầu (tuNgay) là bắt buộc")
	}
	if p.DenNgay == "" {
		return domainerrors.NewValidation("Ngày kết thúc (denNgay) là bắt buộc")
	}
	if strings.TrimSpace(p.DiaChi) == "" {
		return domainerrors.NewValidation("Địa chỉ tạm trú là bắt buộc")
	}
	if strings.TrimSpace(p.LyDo) == "" {
		return domainerrors.NewValidation("Lý do là bắt buộc")
	}
	if p.NhanKhauID == nil {
		if err := validatePersonFields(p.Person); err != nil {
			return err
		}
	}
	tuNgay, err := usecase.ParseDate(p.TuNgay)
	if err != nil {
		return domainerrors.NewValidation("Ngày bắt đầu không hợp lệ")
	}
	denNgay, err := usecase.ParseDate(p.DenNgay)
	if err != nil {
		return domainerrors.NewValidation("Ngày kết thúc không hợp lệ")
	}
	if !tuNgay.Before(denNgay) {
		return domainerrors.NewValidation("Ngày bắt đầu phải trước ngày kết thúc")
	}
	return nil
}

// validateTemporaryAbsence checks the payload of a TEMPORARY_ABSENCE request.
// denNgay is optional but must be a valid date strictly after tuNgay.
func validateTemporaryAbsence(p *usecase.TemporaryAbsencePayload) error {
	if p.NhanKhauID == 0 {
		return domainerrors.NewValidation("Nhân khẩu (nhanKhauId) là bắt buộc")
	}
	if p.TuNgay == "" {
		return domainerrors.NewValidation("Ngày bắt đầu (tuNgay) là bắt buộc")
	}
	tuNgay, err := usecase.ParseDate(p.TuNgay)
	if err != nil {
		return domainerrors.NewValidation("Ngày bắt đầu không hợp lệ")
	}
	if strings.TrimSpace(p.LyDo) == "" {
		return domainerrors.NewValidation("Lý do là bắt buộc")
	}
	if p.DenNgay != "" {
		denNgay, err := usecase.ParseDate(p.DenNgay)
		if err != nil {
			return domainerrors.NewValidation("Ngày kết thúc không hợp lệ")
		}
		if !denNgay.After(tuNgay) {
			return domainerrors.NewValidation("Ngày kết thúc phải sau ngày bắt đầu")
		}
	}
	return nil
}

// validateSplitHousehold checks the payload of a SPLIT_HOUSEHOLD request.
func validateSplitHousehold(p *usecase.SplitHouseholdPayload) error {
	if len(p.SelectedNhanKhauIDs) == 0 {
		return domainerrors.NewValidation("Danh sách nhân khẩu tách hộ không được rỗng")
	}
	if p.NewChuHoID == 0 {
		return domainerrors.NewValidation("Chủ hộ mới (newChuHoId) là bắt buộc")
	}
	if !containsID(p.SelectedNhanKhauIDs, p.NewChuHoID) {
		return domainerrors.NewValidation("Chủ hộ mới phải nằm trong danh sách nhân khẩu được tách")
	}
	if strings.TrimSpace(p.NewAddress) == "" {
		return domainerrors.NewValidation("Địa chỉ hộ mới là bắt buộc")
	}
	if p.ExpectedDate == "" {
		return domainerrors.NewValidation("Ngày dự kiến tách hộ là bắt buộc")
	}
	if _, err := usecase.ParseDate(p.ExpectedDate); err != nil {
		return domainerrors.NewValidation("Ngày dự kiến tách hộ không hợp lệ")
	}
	if strings.TrimSpace(p.Reason) == "" {
		return domainerrors.NewValidation("Lý do tách hộ là bắt buộc")
	}
	return nil
}

// validateDeceased checks the payload of a DECEASED request.
func validateDeceased(p *usecase.DeceasedPayload) error {
	if id := p.ResolvePersonID(); id == nil || *id == 0 {
		return domainerrors.NewValidation("Nhân khẩu khai tử (nhanKhauId) là bắt buộc")
	}
	if p.NgayMat == "" {
		return domainerrors.NewValidation("Ngày mất là bắt buộc")
	}
	if _, err := usecase.ParseDate(p.NgayMat); err != nil {
		return domainerrors.NewValidation("Ngày mất không hợp lệ")
	}
	if strings.TrimSpace(p.LyDo) == "" {
		return domainerrors.NewValidation("Lý do khai tử là bắt buộc")
	}
	return nil
}

func containsID(ids []uint, id uint) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
