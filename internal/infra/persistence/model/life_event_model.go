package model

import "time"

// LifeEventModel is the GORM-specific struct for the 'bien_dong' table.
// Rows are append-only.
type LifeEventModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	NhanKhauID   uint   `gorm:"not null;index"`
	HoKhauID     *uint  `gorm:"index"`
	Type         string `gorm:"type:varchar(32);not null"`
	NgayBienDong time.Time
	NoiDung      string `gorm:"type:text"`
	NguoiTaoID   uint   `gorm:"not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LifeEventModel) TableName() string {
	return "bien_dong"
}
