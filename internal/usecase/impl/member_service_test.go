package impl

import (
	"context"
	"testing"
	"time"

	"perpus/internal/domain/entity"
	domainerrors "perpus/internal/domain/errors"
	"perpus/internal/domain/repository"
	mockRepo "perpus/internal/mocks/repository"
	mockSvc "perpus/internal/mocks/service"
	"perpus/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMemberService_Create(t *testing.T) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	cardService := mockSvc.NewMockCardService(t)
	service := NewMemberService(memberRepo, cardService, testLogger())

	ctx := context.Background()

	memberRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Member")).
		Run(func(_ context.Context, member *entity.Member) {
			member.ID = 3
		}).
		Return(nil)

	record, err := service.Create(ctx, &usecase.MemberInput{
		NoKTP:    "3173082501990001",
		Nama:     "Budi Santoso",
		Alamat:   "Jl. Merdeka 10, Jakarta",
		TglLahir: "1999-01-25",
	})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, uint(3), record.ID)
	assert.Equal(t, "3173082501990001", record.NoKTP)
	assert.Equal(t, "1999-01-25", record.TglLahir)
}

func TestMemberService_Create_DuplicateKTP(t *testing.T) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	cardService := mockSvc.NewMockCardService(t)
	service := NewMemberService(memberRepo, cardService, testLogger())

	ctx := context.Background()

	memberRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Member")).
		Return(domainerrors.ErrDuplicateKTP)

	record, err := service.Create(ctx, &usecase.MemberInput{
		NoKTP:    "3173082501990001",
		Nama:     "Budi Santoso",
		Alamat:   "Jl. Merdeka 10, Jakarta",
		TglLahir: "1999-01-25",
	})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateKTP)
}

func TestMemberService_Update_PreservesIdentity(t *testing.T) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	cardService := mockSvc.NewMockCardService(t)
	service := NewMemberService(memberRepo, cardService, testLogger())

	ctx := context.Background()
	createdAt := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)

	memberRepo.EXPECT().
		FindByID(ctx, uint(3)).
		Return(&entity.Member{ID: 3, NoKTP: "3173082501990001", CreatedAt: createdAt}, nil)

	memberRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(member *entity.Member) bool {
			return member.ID == 3 && member.CreatedAt.Equal(createdAt) && member.Alamat == "Jl. Sudirman 5, Bandung"
		})).
		Return(nil)

	record, err := service.Update(ctx, 3, &usecase.MemberInput{
		NoKTP:    "3173082501990001",
		Nama:     "Budi Santoso",
		Alamat:   "Jl. Sudirman 5, Bandung",
		TglLahir: "1999-01-25",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(3), record.ID)
	assert.Equal(t, "Jl. Sudirman 5, Bandung", record.Alamat)
}

func TestMemberService_Update_NotFound(t *testing.T) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	cardService := mockSvc.NewMockCardService(t)
	service := NewMemberService(memberRepo, cardService, testLogger())

	ctx := context.Background()

	memberRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrMemberNotFound)

	record, err := service.Update(ctx, 99, &usecase.MemberInput{
		NoKTP:    "3173082501990001",
		Nama:     "Budi Santoso",
		Alamat:   "Jl. Merdeka 10, Jakarta",
		TglLahir: "1999-01-25",
	})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}

func TestMemberService_Delete_NotFound(t *testing.T) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	cardService := mockSvc.NewMockCardService(t)
	service := NewMemberService(memberRepo, cardService, testLogger())

	ctx := context.Background()

	memberRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrMemberNotFound)

	err := service.Delete(ctx, 99)
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}

func TestMemberService_Card(t *testing.T) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	cardService := mockSvc.NewMockCardService(t)
	service := NewMemberService(memberRepo, cardService, testLogger())

	ctx := context.Background()
	member := &entity.Member{ID: 3, NoKTP: "3173082501990001", Nama: "Budi Santoso"}

	memberRepo.EXPECT().
		FindByID(ctx, uint(3)).
		Return(member, nil)

	cardService.EXPECT().
		GenerateMemberQR(member).
		Return([]byte{0x89, 0x50, 0x4E, 0x47}, nil)

	png, err := service.Card(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, png)
}

func TestMemberService_Card_NotFound(t *testing.T) {
	memberRepo := mockRepo.NewMockMemberRepository(t)
	cardService := mockSvc.NewMockCardService(t)
	service := NewMemberService(memberRepo, cardService, testLogger())

	ctx := context.Background()

	memberRepo.EXPECT().
		FindByID(ctx, uint(99)).
		Return(nil, repository.ErrMemberNotFound)

	png, err := service.Card(ctx, 99)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
}
