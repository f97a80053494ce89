package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "perpus/internal/delivery/context"
	"perpus/internal/domain/entity"
	domainerrors "perpus/internal/domain/errors"
	"perpus/internal/domain/repository"
	"perpus/internal/usecase"

	"github.com/pkg/errors"
)

// fineService implements the FineUsecase interface.
type fineService struct {
	fineRepo repository.FineRepository
	logger   *slog.Logger
}

// NewFineService is the constructor for fineService.
func NewFineService(fineRepo repository.FineRepository, logger *slog.Logger) usecase.FineUsecase {
	return &fineService{
		fineRepo: fineRepo,
		logger:   logger,
	}
}

func (srv *fineService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *fineService) List(ctx context.Context) ([]usecase.FineRecord, error) {
	fines, err := srv.fineRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list fines")
	}

	records := make([]usecase.FineRecord, 0, len(fines))
	for _, fine := range fines {
		records = append(records, toFineRecord(fine))
	}

	return records, nil
}

func (srv *fineService) Create(ctx context.Context, input *usecase.FineInput) (*usecase.FineRecord, error) {
	kind := entity.FineKind(input.JenisDenda)
	if !kind.Valid() {
		return nil, domainerrors.ErrInvalidFineKind
	}
	if input.JumlahDenda < 0 {
		return nil, domainerrors.ErrNegativeFineAmount
	}

	fine := &entity.Fine{
		IDMember:    input.IDMember,
		IDBuku:      input.IDBuku,
		JumlahDenda: input.JumlahDenda,
		JenisDenda:  kind,
		Deskripsi:   input.Deskripsi,
	}

	if err := srv.fineRepo.Create(ctx, fine); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Fine recorded",
		slog.Any("fineID", fine.ID),
		slog.Any("memberID", fine.IDMember),
		slog.String("jenis", string(fine.JenisDenda)),
		slog.Int64("jumlah", fine.JumlahDenda),
	)

	record := toFineRecord(fine)

	return &record, nil
}

func toFineRecord(fine *entity.Fine) usecase.FineRecord {
	createdAt := ""
	if !fine.CreatedAt.IsZero() {
		createdAt = fine.CreatedAt.Format(time.RFC3339)
	}

	return usecase.FineRecord{
		ID:          fine.ID,
		IDMember:    fine.IDMember,
		IDBuku:      fine.IDBuku,
		JumlahDenda: fine.JumlahDenda,
		JenisDenda:  string(fine.JenisDenda),
		Deskripsi:   fine.Deskripsi,
		CreatedAt:   createdAt,
	}
}
