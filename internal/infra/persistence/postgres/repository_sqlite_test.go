package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/domain/repository"
	"hokhau/internal/infra/persistence/model"
)

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
	))

	return db
}

func testHousehold(code string) *entity.Household {
	return &entity.Household{
		SoHoKhau: code,
		DiaChi:   "12 Tràng Thi",
		Phuong:   "Hàng Trống",
		Quan:     "Hoàn Kiếm",
		ThanhPho: "Hà Nội",
		Status:   entity.HouseholdActive,
	}
}

func testResident(hoKhauID uint, hoTen, cccd string) *entity.Resident {
	return &entity.Resident{
		HoKhauID:   hoKhauID,
		HoTen:      hoTen,
		CCCD:       cccd,
		NgaySinh:   time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		GioiTinh:   entity.SexNam,
		NoiSinh:    "Hà Nội",
		QuanHe:     entity.RelationKhac,
		TrangThai:  entity.ResidencyActive,
		NgayDangKy: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestHouseholdRepository_UniqueCode(t *testing.T) {
	db := openTestDB(t)
	repo := NewHouseholdRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testHousehold("HK-UNIQ0001")))

	err := repo.Create(ctx, testHousehold("HK-UNIQ0001"))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicate)
}

func TestHouseholdRepository_FindByIDMissing(t *testing.T) {
	db := openTestDB(t)
	repo := NewHouseholdRepository(db)

	_, err := repo.FindByID(context.Background(), 9999)
	assert.ErrorIs(t, err, repository.ErrHouseholdNotFound)
}

func TestResidentRepository_UniqueCCCD(t *testing.T) {
	db := openTestDB(t)
	households := NewHouseholdRepository(db)
	residents := NewResidentRepository(db)
	ctx := context.Background()

	household := testHousehold("HK-CCCD0001")
	require.NoError(t, households.Create(ctx, household))

	require.NoError(t, residents.Create(ctx, testResident(household.ID, "Nguyễn Văn An", "001190000111")))

	err := residents.Create(ctx, testResident(household.ID, "Người Khác", "001190000111"))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateCCCD)

	// Residents without a national ID do not collide with each other.
	require.NoError(t, residents.Create(ctx, testResident(household.ID, "Trẻ Một", "")))
	require.NoError(t, residents.Create(ctx, testResident(household.ID, "Trẻ Hai", "")))

	loaded, err := residents.FindByCCCD(ctx, "001190000111")
	require.NoError(t, err)
	assert.Equal(t, "Nguyễn Văn An", loaded.HoTen)
}

func TestRequestRepository_LockAndResolve(t *testing.T) {
	db := openTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	request := &entity.Request{
		NguoiYeuCauID: 10,
		Type:          entity.RequestAddPerson,
		Payload:       []byte(`{"hoTen":"x"}`),
		Status:        entity.RequestPending,
	}
	require.NoError(t, repo.Create(ctx, request))

	// The locking clause is skipped on sqlite; the read itself must work.
	locked, err := repo.FindByIDForUpdate(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPending, locked.Status)

	now := time.Now()
	reviewer := uint(1)
	locked.Status = entity.RequestRejected
	locked.RejectionReason = "Thiếu giấy tờ"
	locked.ReviewedBy = &reviewer
	locked.ReviewedAt = &now
	require.NoError(t, repo.UpdateResolution(ctx, locked))

	stored, err := repo.FindByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.RequestRejected, stored.Status)
	assert.Equal(t, "Thiếu giấy tờ", stored.RejectionReason)

	_, err = repo.FindByIDForUpdate(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrRequestNotFound)
}

func TestTempResidenceRepository_CountActiveWindow(t *testing.T) {
	db := openTestDB(t)
	households := NewHouseholdRepository(db)
	residents := NewResidentRepository(db)
	temps := NewTempResidenceRepository(db)
	ctx := context.Background()

	household := testHousehold("HK-TEMP0001")
	require.NoError(t, households.Create(ctx, household))
	resident := testResident(household.ID, "Hoàng Thị Giang", "")
	require.NoError(t, residents.Create(ctx, resident))

	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	expired := today.AddDate(0, -1, 0)
	future := today.AddDate(1, 0, 0)

	// Expired window: not active.
	require.NoError(t, temps.Create(ctx, &entity.TempResidenceRecord{
		NhanKhauID:    resident.ID,
		Type:          entity.TempTamTru,
		TuNgay:        today.AddDate(-1, 0, 0),
		DenNgay:       &expired,
		LyDo:          "Đợt cũ",
		NguoiDangKyID: 10,
		Status:        entity.TempDaDuyet,
	}))
	count, err := temps.CountActiveByResident(ctx, resident.ID, today)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Rejected record: never active even with an open window.
	require.NoError(t, temps.Create(ctx, &entity.TempResidenceRecord{
		NhanKhauID:    resident.ID,
		Type:          entity.TempTamTru,
		TuNgay:        today,
		DenNgay:       &future,
		LyDo:          "Bị từ chối",
		NguoiDangKyID: 10,
		Status:        entity.TempTuChoi,
	}))
	count, err = temps.CountActiveByResident(ctx, resident.ID, today)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Open-ended approved record: active.
	require.NoError(t, temps.Create(ctx, &entity.TempResidenceRecord{
		NhanKhauID:    resident.ID,
		Type:          entity.TempTamVang,
		TuNgay:        today,
		LyDo:          "Đi công tác",
		NguoiDangKyID: 10,
		Status:        entity.TempDaDuyet,
	}))
	count, err = temps.CountActiveByResident(ctx, resident.ID, today)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
