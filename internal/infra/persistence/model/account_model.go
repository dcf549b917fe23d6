package model

import "time"

// AccountModel is the GORM-specific struct for the 'tai_khoan' table.
type AccountModel struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(16);not null;default:'nguoi_dan'"`
	NhanKhauID   *uint  `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "tai_khoan"
}
