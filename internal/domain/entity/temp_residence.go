package entity

import "time"

// TempRecordType distinguishes temporary residence from temporary absence.
type TempRecordType string

const (
	TempTamTru  TempRecordType = "tam_tru"
	TempTamVang TempRecordType = "tam_vang"
)

// TempRecordStatus is the review state of a temporary residence/absence row.
type TempRecordStatus string

const (
	TempChoDuyet TempRecordStatus = "cho_duyet"
	TempDaDuyet  TempRecordStatus = "da_duyet"
	TempTuChoi   TempRecordStatus = "tu_choi"
)

// TempResidenceRecord is one temporary-residence or temporary-absence period
// for a resident (tam tru / tam vang). At most one record per resident may be
// concurrently active: status cho_duyet or da_duyet with a nil or unexpired
// DenNgay. The approval handlers enforce this before insertion.
type TempResidenceRecord struct {
	ID           uint
	NhanKhauID   uint
	Type         TempRecordType
	TuNgay       time.Time
	DenNgay      *time.Time // nil = open-ended.
	DiaChi       string
	LyDo         string
	NguoiDangKyID uint  // Registrant account.
	NguoiDuyetID  *uint // Approving account.
	Status       TempRecordStatus
	CreatedAt    time.Time
}

// ActiveAt reports whether the record counts as active at the given date.
func (r *TempResidenceRecord) ActiveAt(today time.Time) bool {
	if r.Status != TempChoDuyet && r.Status != TempDaDuyet {
		return false
	}
	if r.DenNgay == nil {
		return true
	}
	return !r.DenNgay.Before(today)
}
