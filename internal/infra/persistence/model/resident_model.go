package model

import "time"

// ResidentModel is the GORM-specific struct for the 'nhan_khau' table.
// Rows are never deleted; lifecycle changes are written to TrangThai.
type ResidentModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	HoKhauID   uint      `gorm:"not null;index"`
	HoTen      string    `gorm:"type:varchar(150);not null"`
	CCCD       *string   `gorm:"type:varchar(20);uniqueIndex"`
	NgaySinh   time.Time `gorm:"not null"`
	GioiTinh   string    `gorm:"type:varchar(8);not null"`
	NoiSinh    string    `gorm:"type:varchar(255)"`
	DanToc     string    `gorm:"type:varchar(50)"`
	TonGiao    string    `gorm:"type:varchar(50)"`
	QuocTich   string    `gorm:"type:varchar(50)"`
	QuanHe     string    `gorm:"type:varchar(20);not null"`
	TrangThai  string    `gorm:"type:varchar(16);not null;default:'active';index"`
	NgayDangKy time.Time `gorm:"not null"`
	TaiKhoanID *uint     `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResidentModel) TableName() string {
	return "nhan_khau"
}
