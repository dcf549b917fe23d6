package entity

import "time"

// FeedbackStatus is the handling state of a citizen feedback entry.
type FeedbackStatus string

const (
	FeedbackPending    FeedbackStatus = "PENDING"
	FeedbackProcessing FeedbackStatus = "PROCESSING"
	FeedbackResolved   FeedbackStatus = "RESOLVED"
)

// Feedback is a citizen-submitted complaint or suggestion (phan anh).
type Feedback struct {
	ID           uint
	NguoiGuiID   uint // Submitting account.
	TieuDe       string
	NoiDung      string
	TheLoai      string // Free-form category, e.g. "an_ninh", "ve_sinh".
	Status       FeedbackStatus
	TraLoi       string // Reviewer response.
	NguoiTraLoiID *uint
	TraLoiLuc    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
