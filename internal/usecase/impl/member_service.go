package impl

import (
	"context"
	"log/slog"

	deliverycontext "perpus/internal/delivery/context"
	"perpus/internal/domain/entity"
	domainerrors "perpus/internal/domain/errors"
	"perpus/internal/domain/repository"
	"perpus/internal/domain/service"
	"perpus/internal/usecase"

	"github.com/pkg/errors"
)

// memberService implements the MemberUsecase interface.
type memberService struct {
	memberRepo  repository.MemberRepository
	cardService service.CardService
	logger      *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(memberRepo repository.MemberRepository, cardService service.CardService, logger *slog.Logger) usecase.MemberUsecase {
	return &memberService{
		memberRepo:  memberRepo,
		cardService: cardService,
		logger:      logger,
	}
}

func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *memberService) List(ctx context.Context) ([]usecase.MemberRecord, error) {
	members, err := srv.memberRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	records := make([]usecase.MemberRecord, 0, len(members))
	for _, member := range members {
		records = append(records, toMemberRecord(member))
	}

	return records, nil
}

func (srv *memberService) Create(ctx context.Context, input *usecase.MemberInput) (*usecase.MemberRecord, error) {
	member, err := memberFromInput(input)
	if err != nil {
		return nil, err
	}

	if err := srv.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Member created", slog.Any("memberID", member.ID), slog.String("noKTP", member.NoKTP))

	record := toMemberRecord(member)

	return &record, nil
}

func (srv *memberService) Update(ctx context.Context, id uint, input *usecase.MemberInput) (*usecase.MemberRecord, error) {
	existing, err := srv.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member")
	}

	updated, err := memberFromInput(input)
	if err != nil {
		return nil, err
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt

	if err := srv.memberRepo.Update(ctx, updated); err != nil {
		return nil, err
	}

	record := toMemberRecord(updated)

	return &record, nil
}

func (srv *memberService) Delete(ctx context.Context, id uint) error {
	if _, err := srv.memberRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return domainerrors.ErrMemberNotFound
		}

		return errors.Wrap(err, "failed to find member")
	}

	srv.log(ctx).Info("Member deleted", slog.Any("memberID", id))

	return srv.memberRepo.Delete(ctx, id)
}

// Card renders the member card QR code.
func (srv *memberService) Card(ctx context.Context, id uint) ([]byte, error) {
	member, err := srv.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, domainerrors.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member")
	}

	png, err := srv.cardService.GenerateMemberQR(member)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate member card")
	}

	return png, nil
}

func memberFromInput(input *usecase.MemberInput) (*entity.Member, error) {
	tglLahir, err := parseWireDate(input.TglLahir)
	if err != nil {
		return nil, err
	}

	return &entity.Member{
		NoKTP:    input.NoKTP,
		Nama:     input.Nama,
		Alamat:   input.Alamat,
		TglLahir: tglLahir,
	}, nil
}

func toMemberRecord(member *entity.Member) usecase.MemberRecord {
	return usecase.MemberRecord{
		ID:       member.ID,
		NoKTP:    member.NoKTP,
		Nama:     member.Nama,
		Alamat:   member.Alamat,
		TglLahir: formatWireDate(member.TglLahir),
	}
}
