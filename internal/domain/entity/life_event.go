package entity

import "time"

// LifeEventType classifies a bien dong (life event) row.
type LifeEventType string

const (
	LifeEventKhaiTu      LifeEventType = "khai_tu"
	LifeEventChuyenHoKhau LifeEventType = "chuyen_ho_khau"
)

// LifeEvent is an append-only record of a registry life event (bien dong).
// Handlers write these as a side effect; the core never reads them back
// except for display.
type LifeEvent struct {
	ID           uint
	NhanKhauID   uint
	HoKhauID     *uint
	Type         LifeEventType
	NgayBienDong time.Time
	NoiDung      string // Free-form detail: reason, place, destination.
	NguoiTaoID   uint   // Acting account.
	CreatedAt    time.Time
}
