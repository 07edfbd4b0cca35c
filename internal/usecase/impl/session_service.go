package impl

import (
	"context"
	"log/slog"

	deliverycontext "patrol/internal/delivery/context"
	"patrol/internal/domain/entity"
	domainerrors "patrol/internal/domain/errors"
	"patrol/internal/domain/repository"
	"patrol/internal/domain/service"
	"patrol/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type sessionService struct {
	guardRepo    repository.GuardRepository
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	GuardRepo    repository.GuardRepository
	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService creates a new session service
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		guardRepo:    params.GuardRepo,
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GuardLogin checks the guard's PIN and issues tokens carrying the guard role.
func (srv *sessionService) GuardLogin(ctx context.Context, guardID entity.GuardID, pin string) (*usecase.LoginResult, error) {
	guard, err := srv.guardRepo.FindByID(ctx, guardID)
	if err != nil {
		if errors.Is(err, repository.ErrGuardNotFound) {
			srv.log(ctx).Warn("Guard login failed", slog.String("guardID", guardID.String()), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "guard login failed")
		}

		return nil, errors.Wrap(err, "failed to find guard")
	}

	if guard.PinHash == "" || !srv.hasher.Check(pin, guard.PinHash) {
		srv.log(ctx).Warn("Guard login failed", slog.String("guardID", guardID.String()), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "guard login failed")
	}

	if !guard.Active() {
		return nil, errors.Wrap(domainerrors.ErrGuardInactive, "guard login failed")
	}

	return srv.issue(ctx, guard.ID.String(), guard.Name, entity.Roles{entity.RoleGuard})
}

// AdminLogin checks the admin's password and issues tokens carrying the admin role.
func (srv *sessionService) AdminLogin(ctx context.Context, username, password string) (*usecase.LoginResult, error) {
	admin, err := srv.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			srv.log(ctx).Warn("Admin login failed", slog.String("username", username), slog.Any("error", err))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
		}

		return nil, errors.Wrap(err, "failed to find admin")
	}

	if !srv.hasher.Check(password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
	}

	displayName := admin.DisplayName
	if displayName == "" {
		displayName = admin.Username
	}

	return srv.issue(ctx, string(admin.ID), displayName, entity.Roles{entity.RoleAdmin})
}

func (srv *sessionService) issue(ctx context.Context, subject, displayName string, roles entity.Roles) (*usecase.LoginResult, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(subject, roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}
	srv.log(ctx).Debug("Login succeeded", slog.String("subject", subject), slog.Any("roles", roles))

	return &usecase.LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Subject:      subject,
		DisplayName:  displayName,
		Roles:        roles.ToStrings(),
	}, nil
}
