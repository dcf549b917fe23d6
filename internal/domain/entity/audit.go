package entity

import "time"

// AuditEntry is an append-only history row for a household
// (lich su thay doi). Written by approval handlers, read only for display.
type AuditEntry struct {
	ID         uint
	HoKhauID   uint
	Action     string // e.g. "tach_ho_chuyen_di", "tach_ho_tao_moi".
	NoiDung    string // Human-readable detail of the change.
	NguoiTaoID uint   // Acting account.
	CreatedAt  time.Time
}
