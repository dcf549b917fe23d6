package model

import "time"

// RequestModel is the GORM-specific struct for the 'yeu_cau' table.
type RequestModel struct {
	ID               uint   `gorm:"primaryKey;autoIncrement"`
	NguoiYeuCauID    uint   `gorm:"not null;index"`
	Type             string `gorm:"type:varchar(32);not null"`
	Payload          []byte `gorm:"type:jsonb"`
	Status           string `gorm:"type:varchar(16);not null;default:'PENDING';index"`
	TargetHoKhauID   *uint  `gorm:"index"`
	TargetNhanKhauID *uint  `gorm:"index"`
	RejectionReason  string `gorm:"type:text"`
	ReviewedBy       *uint
	ReviewedAt       *time.Time
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (RequestModel) TableName() string {
	return "yeu_cau"
}
