package model

import "time"

// FeedbackModel is the GORM-specific struct for the 'phan_anh' table.
type FeedbackModel struct {
	ID            uint   `gorm:"primaryKey;autoIncrement"`
	NguoiGuiID    uint   `gorm:"not null;index"`
	TieuDe        string `gorm:"type:varchar(255);not null"`
	NoiDung       string `gorm:"type:text;not null"`
	TheLoai       string `gorm:"type:varchar(50)"`
	Status        string `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	TraLoi        string `gorm:"type:text"`
	NguoiTraLoiID *uint
	TraLoiLuc     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (FeedbackModel) TableName() string {
	return "phan_anh"
}
