package impl

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hokhau/internal/domain/entity"
	"hokhau/internal/infra/hhcode"
	"hokhau/internal/infra/persistence/model"
	"hokhau/internal/infra/persistence/postgres"
	"hokhau/internal/usecase"
)

// openTestDB opens an in-memory sqlite database with the registry schema.
// The pool is pinned to a single connection so every statement sees the same
// in-memory database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.HouseholdModel{},
		&model.ResidentModel{},
		&model.RequestModel{},
		&model.TempResidenceModel{},
		&model.LifeEventModel{},
		&model.AuditModel{},
		&model.AccountModel{},
		&model.FeedbackModel{},
	))

	return db
}

func newTestRequestService(t *testing.T, db *gorm.DB) usecase.RequestUsecase {
	t.Helper()

	return NewRequestService(RequestServiceParams{
		RequestRepo: postgres.NewRequestRepository(db),
		TxManager:   postgres.NewTransactionManager(db),
		CodeGen:     hhcode.NewGenerator(),
	})
}

func newTestHouseholdService(t *testing.T, db *gorm.DB) usecase.HouseholdUsecase {
	t.Helper()

	return NewHouseholdService(HouseholdServiceParams{
		HouseholdRepo: postgres.NewHouseholdRepository(db),
		ResidentRepo:  postgres.NewResidentRepository(db),
		AuditRepo:     postgres.NewAuditRepository(db),
		TxManager:     postgres.NewTransactionManager(db),
		CodeGen:       hhcode.NewGenerator(),
	})
}

func reviewerActor() entity.Actor {
	return entity.Actor{ID: 1, Role: entity.RoleToTruong}
}

func citizenActor(id uint, nhanKhauID *uint) entity.Actor {
	return entity.Actor{ID: id, Role: entity.RoleNguoiDan, NhanKhauID: nhanKhauID}
}

// seedHousehold inserts a household with the given status and code.
func seedHousehold(t *testing.T, db *gorm.DB, code string, status entity.HouseholdStatus) *entity.Household {
	t.Helper()

	household := &entity.Household{
		SoHoKhau: code,
		DiaChi:   "12 Tràng Thi",
		Phuong:   "Hàng Trống",
		Quan:     "Hoàn Kiếm",
		ThanhPho: "Hà Nội",
		Status:   status,
	}
	require.NoError(t, postgres.NewHouseholdRepository(db).Create(context.Background(), household))

	return household
}

// seedResident inserts a resident into the given household.
func seedResident(t *testing.T, db *gorm.DB, hoKhauID uint, hoTen string, quanHe entity.Relation) *entity.Resident {
	t.Helper()

	resident := &entity.Resident{
		HoKhauID:   hoKhauID,
		HoTen:      hoTen,
		NgaySinh:   time.Date(1980, 5, 20, 0, 0, 0, 0, time.UTC),
		GioiTinh:   entity.SexNam,
		NoiSinh:    "Hà Nội",
		QuocTich:   "Việt Nam",
		QuanHe:     quanHe,
		TrangThai:  entity.ResidencyActive,
		NgayDangKy: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, postgres.NewResidentRepository(db).Create(context.Background(), resident))

	return resident
}

// seedActiveHousehold inserts a household with an assigned head, activated.
func seedActiveHousehold(t *testing.T, db *gorm.DB, code string) (*entity.Household, *entity.Resident) {
	t.Helper()

	household := seedHousehold(t, db, code, entity.HouseholdInactive)
	head := seedResident(t, db, household.ID, "Nguyễn Văn Trưởng", entity.RelationChuHo)
	require.NoError(t, postgres.NewHouseholdRepository(db).Activate(context.Background(), household.ID, head.ID))
	household.Status = entity.HouseholdActive
	household.ChuHoID = &head.ID

	return household, head
}

// createRequest submits a request through the service and fails the test on
// any validation error.
func createRequest(t *testing.T, svc usecase.RequestUsecase, actor entity.Actor, input *usecase.CreateRequestInput) *entity.Request {
	t.Helper()

	request, err := svc.Create(context.Background(), actor, input)
	require.NoError(t, err)
	require.NotZero(t, request.ID)

	return request
}

func uintPtr(v uint) *uint {
	return &v
}
