package entity

import "time"

// Sex is the registered sex of a resident.
type Sex string

const (
	SexNam  Sex = "nam"
	SexNu   Sex = "nu"
	SexKhac Sex = "khac"
)

// IsValid reports whether s is one of the accepted sex values.
func (s Sex) IsValid() bool {
	switch s {
	case SexNam, SexNu, SexKhac:
		return true
	}
	return false
}

// Relation is a resident's relation to the head of their household.
type Relation string

const (
	RelationChuHo    Relation = "chu_ho"
	RelationVoChong  Relation = "vo_chong"
	RelationCon      Relation = "con"
	RelationChaMe    Relation = "cha_me"
	RelationAnhChiEm Relation = "anh_chi_em"
	RelationOngBa    Relation = "ong_ba"
	RelationChau     Relation = "chau"
	RelationKhac     Relation = "khac"
)

// IsValid reports whether r is one of the accepted relation values.
func (r Relation) IsValid() bool {
	switch r {
	case RelationChuHo, RelationVoChong, RelationCon, RelationChaMe,
		RelationAnhChiEm, RelationOngBa, RelationChau, RelationKhac:
		return true
	}
	return false
}

// ResidencyStatus is a resident's current registration state. Residents are
// never hard-deleted; departures and deaths are status transitions.
type ResidencyStatus string

const (
	ResidencyActive   ResidencyStatus = "active"
	ResidencyTamTru   ResidencyStatus = "tam_tru"
	ResidencyTamVang  ResidencyStatus = "tam_vang"
	ResidencyChuyenDi ResidencyStatus = "chuyen_di"
	ResidencyKhaiTu   ResidencyStatus = "khai_tu"
)

// InTempStatus reports whether the resident currently holds a temporary
// residence or temporary absence status.
func (s ResidencyStatus) InTempStatus() bool {
	return s == ResidencyTamTru || s == ResidencyTamVang
}

// Resident is an individual registered under exactly one household
// (nhan khau).
type Resident struct {
	ID       uint
	HoKhauID uint
	HoTen    string
	CCCD     string // National ID number; optional but unique when present.
	NgaySinh time.Time
	GioiTinh Sex
	NoiSinh  string
	DanToc   string
	TonGiao  string
	QuocTich string
	QuanHe   Relation
	TrangThai ResidencyStatus
	NgayDangKy time.Time // Date the resident was registered to the household.
	TaiKhoanID *uint     // Linked user account, when the resident has one.

	CreatedAt time.Time
	UpdatedAt time.Time
}
