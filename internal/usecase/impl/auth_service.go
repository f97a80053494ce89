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
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	staffRepo    repository.StaffRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	StaffRepo    repository.StaffRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		staffRepo:    params.StaffRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new librarian account and signs it in immediately.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Registering staff account", slog.String("email", input.Email))

	hashed, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("hash password")
	}

	staff := &entity.Staff{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		staffRepo := repoFactory.NewStaffRepository()

		_, err := staffRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(err, repository.ErrStaffNotFound) {
			return errors.Wrap(err, "failed to look up staff email")
		}

		return staffRepo.Create(ctx, staff)
	})
	if err != nil {
		return nil, err
	}

	return srv.issueToken(ctx, staff)
}

// Login verifies credentials and issues a bearer token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	staff, err := srv.staffRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrStaffNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find staff by email")
	}

	if !srv.hasher.Check(input.Password, staff.Password) {
		srv.log(ctx).Warn("Login rejected", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return srv.issueToken(ctx, staff)
}

func (srv *authService) issueToken(ctx context.Context, staff *entity.Staff) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(staff.ID, staff.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{
		Token: token,
		User: usecase.StaffRecord{
			ID:    staff.ID,
			Name:  staff.Name,
			Email: staff.Email,
		},
	}, nil
}
