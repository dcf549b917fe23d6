package repository

import (
	"context"

	"hokhau/internal/domain/entity"
)

// LifeEventRepository is the append-only sink for bien dong rows.
type LifeEventRepository interface {
	// Append persists a new life event row.
	Append(ctx context.Context, event *entity.LifeEvent) error

	// ListByResident retrieves a resident's life events, newest first.
	ListByResident(ctx context.Context, nhanKhauID uint) ([]*entity.LifeEvent, error)
}

// AuditRepository is the append-only sink for household history rows.
type AuditRepository interface {
	// Append persists a new audit entry.
	Append(ctx context.Context, entry *entity.AuditEntry) error

	// ListByHousehold retrieves a household's audit entries, newest first.
	ListByHousehold(ctx context.Context, hoKhauID uint) ([]*entity.AuditEntry, error)
}
