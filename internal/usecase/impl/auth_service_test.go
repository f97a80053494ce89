package impl

import (
	"context"
	"testing"

	"perpus/internal/domain/entity"
	domainerrors "perpus/internal/domain/errors"
	"perpus/internal/domain/repository"
	mockSvc "perpus/internal/mocks/service"
	"perpus/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	*txFixture
	hasher *mockSvc.MockPasswordHasher
	tokens *mockSvc.MockTokenService
}

func newAuthFixture(t *testing.T) (*authFixture, usecase.AuthUsecase) {
	fixture := &authFixture{
		txFixture: newTxFixture(t),
		hasher:    mockSvc.NewMockPasswordHasher(t),
		tokens:    mockSvc.NewMockTokenService(t),
	}

	service := NewAuthService(AuthServiceParams{
		TxManager:    fixture.manager,
		StaffRepo:    fixture.staffs,
		Hasher:       fixture.hasher,
		TokenService: fixture.tokens,
		Logger:       testLogger(),
	})

	return fixture, service
}

func TestAuthService_Register(t *testing.T) {
	fixture, service := newAuthFixture(t)

	ctx := context.Background()

	fixture.hasher.EXPECT().
		Hash("rahasia-123").
		Return("$2a$10$hashed", nil)

	fixture.staffs.EXPECT().
		FindByEmail(ctx, "siti@perpus.id").
		Return(nil, repository.ErrStaffNotFound)

	fixture.staffs.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Staff")).
		Run(func(_ context.Context, staff *entity.Staff) {
			staff.ID = 1
		}).
		Return(nil)

	fixture.tokens.EXPECT().
		GenerateToken(uint(1), "siti@perpus.id").
		Return("signed-token", nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:      "Siti Aminah",
		Email:     "siti@perpus.id",
		Password:  "rahasia-123",
		CPassword: "rahasia-123",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, uint(1), output.User.ID)
	assert.Equal(t, "Siti Aminah", output.User.Name)
	assert.Equal(t, "siti@perpus.id", output.User.Email)
}

func TestAuthService_Register_EmailAlreadyRegistered(t *testing.T) {
	fixture, service := newAuthFixture(t)

	ctx := context.Background()

	fixture.hasher.EXPECT().
		Hash("rahasia-123").
		Return("$2a$10$hashed", nil)

	fixture.staffs.EXPECT().
		FindByEmail(ctx, "siti@perpus.id").
		Return(&entity.Staff{ID: 1, Email: "siti@perpus.id"}, nil)

	output, err := service.Register(ctx, &usecase.RegisterInput{
		Name:      "Siti Aminah",
		Email:     "siti@perpus.id",
		Password:  "rahasia-123",
		CPassword: "rahasia-123",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyRegistered)
}

func TestAuthService_Login(t *testing.T) {
	fixture, service := newAuthFixture(t)

	ctx := context.Background()

	fixture.staffs.EXPECT().
		FindByEmail(ctx, "siti@perpus.id").
		Return(&entity.Staff{ID: 1, Name: "Siti Aminah", Email: "siti@perpus.id", Password: "$2a$10$hashed"}, nil)

	fixture.hasher.EXPECT().
		Check("rahasia-123", "$2a$10$hashed").
		Return(true)

	fixture.tokens.EXPECT().
		GenerateToken(uint(1), "siti@perpus.id").
		Return("signed-token", nil)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "siti@perpus.id",
		Password: "rahasia-123",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "Siti Aminah", output.User.Name)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	fixture, service := newAuthFixture(t)

	ctx := context.Background()

	fixture.staffs.EXPECT().
		FindByEmail(ctx, "siti@perpus.id").
		Return(&entity.Staff{ID: 1, Email: "siti@perpus.id", Password: "$2a$10$hashed"}, nil)

	fixture.hasher.EXPECT().
		Check("salah", "$2a$10$hashed").
		Return(false)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "siti@perpus.id",
		Password: "salah",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	fixture, service := newAuthFixture(t)

	ctx := context.Background()

	fixture.staffs.EXPECT().
		FindByEmail(ctx, "ghost@perpus.id").
		Return(nil, repository.ErrStaffNotFound)

	output, err := service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@perpus.id",
		Password: "apapun",
	})
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
