package model

import "time"

// AuditModel is the GORM-specific struct for the 'lich_su_thay_doi' table.
// Rows are append-only household history.
type AuditModel struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	HoKhauID   uint   `gorm:"not null;index"`
	Action     string `gorm:"type:varchar(50);not null"`
	NoiDung    string `gorm:"type:text"`
	NguoiTaoID uint   `gorm:"not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditModel) TableName() string {
	return "lich_su_thay_doi"
}
