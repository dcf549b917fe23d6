package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/infra/persistence/postgres"
	"hokhau/internal/usecase"
)

func TestHouseholdService_CreateStartsInactive(t *testing.T) {
	db := openTestDB(t)
	svc := newTestHouseholdService(t, db)

	household, err := svc.Create(context.Background(), &usecase.CreateHouseholdInput{
		DiaChi:   "12 Tràng Thi",
		Phuong:   "Hàng Trống",
		Quan:     "Hoàn Kiếm",
		ThanhPho: "Hà Nội",
	})
	require.NoError(t, err)

	assert.NotZero(t, household.ID)
	assert.Equal(t, entity.HouseholdInactive, household.Status)
	assert.Nil(t, household.ChuHoID)
	assert.True(t, strings.HasPrefix(household.SoHoKhau, "HK-"))
}

func TestHouseholdService_Activate(t *testing.T) {
	db := openTestDB(t)
	svc := newTestHouseholdService(t, db)
	ctx := context.Background()

	t.Run("assigns head and activates", func(t *testing.T) {
		household := seedHousehold(t, db, "HK-ACTV0001", entity.HouseholdInactive)
		member := seedResident(t, db, household.ID, "Ngô Văn Bảy", entity.RelationKhac)

		activated, err := svc.Activate(ctx, household.ID, member.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.HouseholdActive, activated.Status)
		require.NotNil(t, activated.ChuHoID)
		assert.Equal(t, member.ID, *activated.ChuHoID)

		head, err := postgres.NewResidentRepository(db).FindByID(ctx, member.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.RelationChuHo, head.QuanHe)
	})

	t.Run("unknown household", func(t *testing.T) {
		_, err := svc.Activate(ctx, 9999, 1)
		assert.ErrorIs(t, err, domainerrors.ErrHouseholdNotFound)
	})

	t.Run("already active", func(t *testing.T) {
		household, head := seedActiveHousehold(t, db, "HK-ACTV0002")
		_, err := svc.Activate(ctx, household.ID, head.ID)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidState)
	})

	t.Run("head from another household", func(t *testing.T) {
		household := seedHousehold(t, db, "HK-ACTV0003", entity.HouseholdInactive)
		other := seedHousehold(t, db, "HK-ACTV0004", entity.HouseholdInactive)
		outsider := seedResident(t, db, other.ID, "Người Hộ Khác", entity.RelationKhac)

		_, err := svc.Activate(ctx, household.ID, outsider.ID)
		assert.ErrorIs(t, err, domainerrors.ErrPersonOutsideHousehold)
	})

	t.Run("household already has a head member", func(t *testing.T) {
		household := seedHousehold(t, db, "HK-ACTV0005", entity.HouseholdInactive)
		seedResident(t, db, household.ID, "Chủ Hộ Cũ", entity.RelationChuHo)
		member := seedResident(t, db, household.ID, "Thành Viên Mới", entity.RelationCon)

		_, err := svc.Activate(ctx, household.ID, member.ID)
		assert.ErrorIs(t, err, domainerrors.ErrDuplicateChuHo)
	})
}

func TestHouseholdService_GetWithMembers(t *testing.T) {
	db := openTestDB(t)
	svc := newTestHouseholdService(t, db)
	household, head := seedActiveHousehold(t, db, "HK-GETM0001")
	seedResident(t, db, household.ID, "Nguyễn Văn Tám", entity.RelationCon)
	ctx := context.Background()

	loaded, err := svc.Get(ctx, household.ID)
	require.NoError(t, err)
	require.Len(t, loaded.NhanKhaus, 2)
	assert.Equal(t, head.ID, loaded.NhanKhaus[0].ID)

	_, err = svc.Get(ctx, 9999)
	assert.ErrorIs(t, err, domainerrors.ErrHouseholdNotFound)
}
