package usecase

import (
	"time"

	"hokhau/internal/domain/entity"
)

// DateLayout is the date-only format used throughout request payloads.
const DateLayout = "2006-01-02"

// ParseDate parses a payload date string in DateLayout.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// AddPersonPayload is the payload for ADD_PERSON and ADD_NEWBORN requests,
// and for the nested person of a TEMPORARY_RESIDENCE request that registers
// a new resident.
type AddPersonPayload struct {
	HoTen     string `json:"hoTen"`
	NgaySinh  string `json:"ngaySinh"`
	GioiTinh  string `json:"gioiTinh"`
	NoiSinh   string `json:"noiSinh"`
	CCCD      string `json:"cccd,omitempty"`
	DanToc    string `json:"danToc,omitempty"`
	TonGiao   string `json:"tonGiao,omitempty"`
	QuocTich  string `json:"quocTich,omitempty"`
	QuanHe    string `json:"quanHe,omitempty"`
	HoKhauID  *uint  `json:"hoKhauId,omitempty"`
	IsMoiSinh bool   `json:"isMoiSinh,omitempty"`
}

// TemporaryResidencePayload is the payload for TEMPORARY_RESIDENCE requests.
// Either NhanKhauID names an existing resident, or Person describes a new
// resident to register together with the temporary residence.
type TemporaryResidencePayload struct {
	NhanKhauID  *uint                `json:"nhanKhauId,omitempty"`
	Person      *AddPersonPayload    `json:"person,omitempty"`
	HoKhauID    *uint                `json:"hoKhauId,omitempty"`
	TuNgay      string               `json:"tuNgay"`
	DenNgay     string               `json:"denNgay"`
	DiaChi      string               `json:"diaChi"`
	LyDo        string               `json:"lyDo"`
	Attachments []entity.Attachment  `json:"attachments,omitempty"`
}

// TemporaryAbsencePayload is the payload for TEMPORARY_ABSENCE requests.
type TemporaryAbsencePayload struct {
	NhanKhauID uint   `json:"nhanKhauId"`
	TuNgay     string `json:"tuNgay"`
	DenNgay    string `json:"denNgay,omitempty"`
	NoiDen     string `json:"noiDen,omitempty"`
	LyDo       string `json:"lyDo"`
}

// SplitHouseholdPayload is the payload for SPLIT_HOUSEHOLD requests.
type SplitHouseholdPayload struct {
	HoKhauID            *uint  `json:"hoKhauId,omitempty"`
	SelectedNhanKhauIDs []uint `json:"selectedNhanKhauIds"`
	NewChuHoID          uint   `json:"newChuHoId"`
	NewAddress          string `json:"newAddress"`
	ExpectedDate        string `json:"expectedDate"`
	Reason              string `json:"reason"`
}

// DeceasedPayload is the payload for DECEASED requests. NhanKhauID and
// PersonID are accepted interchangeably; older clients send personId.
type DeceasedPayload struct {
	NhanKhauID *uint  `json:"nhanKhauId,omitempty"`
	PersonID   *uint  `json:"personId,omitempty"`
	NgayMat    string `json:"ngayMat"`
	LyDo       string `json:"lyDo"`
	NoiMat     string `json:"noiMat,omitempty"`
}

// ResolvePersonID returns the resident the payload targets.
func (p *DeceasedPayload) ResolvePersonID() *uint {
	if p.NhanKhauID != nil {
		return p.NhanKhauID
	}
	return p.PersonID
}
