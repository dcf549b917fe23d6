package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hokhau/config"
	"hokhau/internal/domain/entity"
	domainerrors "hokhau/internal/domain/errors"
	"hokhau/internal/infra/auth"
	"hokhau/internal/infra/persistence/postgres"
	"hokhau/internal/usecase"
)

func newTestAuthService(t *testing.T) (usecase.AuthUsecase, func(username, password string, role entity.Role, nhanKhauID *uint) *entity.Account) {
	t.Helper()

	db := openTestDB(t)
	hasher := auth.NewBcryptHasher()

	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	svc := NewAuthService(AuthServiceParams{
		AccountRepo: postgres.NewAccountRepository(db),
		Hasher:      hasher,
		TokenSvc:    tokenSvc,
	})

	seed := func(username, password string, role entity.Role, nhanKhauID *uint) *entity.Account {
		hash, err := hasher.Hash(password)
		require.NoError(t, err)
		account := &entity.Account{
			Username:     username,
			PasswordHash: hash,
			Role:         role,
			NhanKhauID:   nhanKhauID,
		}
		require.NoError(t, postgres.NewAccountRepository(db).Create(context.Background(), account))
		return account
	}

	return svc, seed
}

func TestAuthService_Login(t *testing.T) {
	svc, seed := newTestAuthService(t)
	account := seed("totruong01", "mat-khau-manh", entity.RoleToTruong, nil)

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "totruong01",
		Password: "mat-khau-manh",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, output.Token)
	assert.Equal(t, account.ID, output.AccountID)
	assert.Equal(t, "totruong01", output.Username)
	assert.Equal(t, entity.RoleToTruong, output.Role)
	assert.Nil(t, output.NhanKhauID)
}

func TestAuthService_LoginLinkedResident(t *testing.T) {
	svc, seed := newTestAuthService(t)
	seed("nguoidan01", "mat-khau-manh", entity.RoleNguoiDan, uintPtr(42))

	output, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "nguoidan01",
		Password: "mat-khau-manh",
	})
	require.NoError(t, err)
	require.NotNil(t, output.NhanKhauID)
	assert.Equal(t, uint(42), *output.NhanKhauID)
}

func TestAuthService_LoginFailuresAreUniform(t *testing.T) {
	svc, seed := newTestAuthService(t)
	seed("canbo01", "mat-khau-manh", entity.RoleCanBo, nil)

	// Unknown username and wrong password yield the same error.
	_, err := svc.Login(context.Background(), &usecase.LoginInput{
		Username: "khong-ton-tai",
		Password: "mat-khau-manh",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &usecase.LoginInput{
		Username: "canbo01",
		Password: "sai-mat-khau",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
