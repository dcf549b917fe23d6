package postgres

import (
	"context"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// lifeEventRepository implements the repository.LifeEventRepository interface.
type lifeEventRepository struct {
	db *gorm.DB
}

// NewLifeEventRepository is the constructor for lifeEventRepository.
func NewLifeEventRepository(db *gorm.DB) repository.LifeEventRepository {
	return &lifeEventRepository{
		db: db,
	}
}

// Append persists a new life event row.
func (repo *lifeEventRepository) Append(ctx context.Context, event *entity.LifeEvent) error {
	eventM := fromLifeEventDomain(event)

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append life event")
	}

	event.ID = eventM.ID
	event.CreatedAt = eventM.CreatedAt

	return nil
}

// ListByResident retrieves a resident's life events, newest first.
func (repo *lifeEventRepository) ListByResident(ctx context.Context, nhanKhauID uint) ([]*entity.LifeEvent, error) {
	var eventModels []*model.LifeEventModel

	if err := repo.db.WithContext(ctx).
		Where("nhan_khau_id = ?", nhanKhauID).
		Order("created_at DESC").
		Find(&eventModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list life events by resident")
	}

	events := make([]*entity.LifeEvent, 0, len(eventModels))
	for _, eventM := range eventModels {
		events = append(events, toLifeEventDomain(eventM))
	}

	return events, nil
}

// auditRepository implements the repository.AuditRepository interface.
type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository is the constructor for auditRepository.
func NewAuditRepository(db *gorm.DB) repository.AuditRepository {
	return &auditRepository{
		db: db,
	}
}

// Append persists a new audit entry.
func (repo *auditRepository) Append(ctx context.Context, entry *entity.AuditEntry) error {
	entryM := fromAuditDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append audit entry")
	}

	entry.ID = entryM.ID
	entry.CreatedAt = entryM.CreatedAt

	return nil
}

// ListByHousehold retrieves a household's audit entries, newest first.
func (repo *auditRepository) ListByHousehold(ctx context.Context, hoKhauID uint) ([]*entity.AuditEntry, error) {
	var entryModels []*model.AuditModel

	if err := repo.db.WithContext(ctx).
		Where("ho_khau_id = ?", hoKhauID).
		Order("created_at DESC").
		Find(&entryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list audit entries by household")
	}

	entries := make([]*entity.AuditEntry, 0, len(entryModels))
	for _, entryM := range entryModels {
		entries = append(entries, toAuditDomain(entryM))
	}

	return entries, nil
}

// --- Mapper Functions ---

func toLifeEventDomain(data *model.LifeEventModel) *entity.LifeEvent {
	if data == nil {
		return nil
	}

	return &entity.LifeEvent{
		ID:           data.ID,
		NhanKhauID:   data.NhanKhauID,
		HoKhauID:     data.HoKhauID,
		Type:         entity.LifeEventType(data.Type),
		NgayBienDong: data.NgayBienDong,
		NoiDung:      data.NoiDung,
		NguoiTaoID:   data.NguoiTaoID,
		CreatedAt:    data.CreatedAt,
	}
}

func fromLifeEventDomain(data *entity.LifeEvent) *model.LifeEventModel {
	if data == nil {
		return nil
	}

	return &model.LifeEventModel{
		ID:           data.ID,
		NhanKhauID:   data.NhanKhauID,
		HoKhauID:     data.HoKhauID,
		Type:         string(data.Type),
		NgayBienDong: data.NgayBienDong,
		NoiDung:      data.NoiDung,
		NguoiTaoID:   data.NguoiTaoID,
		CreatedAt:    data.CreatedAt,
	}
}

func toAuditDomain(data *model.AuditModel) *entity.AuditEntry {
	if data == nil {
		return nil
	}

	return &entity.AuditEntry{
		ID:         data.ID,
		HoKhauID:   data.HoKhauID,
		Action:     data.Action,
		NoiDung:    data.NoiDung,
		NguoiTaoID: data.NguoiTaoID,
		CreatedAt:  data.CreatedAt,
	}
}

func fromAuditDomain(data *entity.AuditEntry) *model.AuditModel {
	if data == nil {
		return nil
	}

	return &model.AuditModel{
		ID:         data.ID,
		HoKhauID:   data.HoKhauID,
		Action:     data.Action,
		NoiDung:    data.NoiDung,
		NguoiTaoID: data.NguoiTaoID,
		CreatedAt:  data.CreatedAt,
	}
}
