package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "mangahub/internal/delivery/context"
	"mangahub/internal/domain/entity"
	domainerrors "mangahub/internal/domain/errors"
	"mangahub/internal/domain/repository"
	"mangahub/internal/domain/service"
	"mangahub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPreferredLanguage = "en"

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerOr(ctx, srv.logger)
}

// Register creates a reader account and signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	userName := strings.TrimSpace(input.UserName)

	birthDate, err := parseDate(input.BirthDate)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	now := srv.now()
	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		if err := ensureEmailFree(ctx, userRepo, email, domainerrors.ErrEmailInUse); err != nil {
			return err
		}
		if err := ensureUserNameFree(ctx, userRepo, userName, domainerrors.ErrUserNameTaken); err != nil {
			return err
		}

		user := &entity.User{
			Name:              strings.TrimSpace(input.Name),
			LastName:          strings.TrimSpace(input.LastName),
			UserName:          userName,
			Email:             email,
			Password:          hash,
			BirthDate:         &birthDate,
			Role:              entity.RoleUser,
			IsActive:          true,
			ShowMatureContent: entity.AgeAt(birthDate, now) >= entity.AdultAge,
			PreferredLanguage: defaultPreferredLanguage,
			Theme:             entity.ThemeLight,
			LastLoginAt:       &now,
		}

		if err := mapDuplicate(userRepo.Create(ctx, user), "failed to create user"); err != nil {
			return err
		}

		tokens, err := srv.issueTokens(ctx, userRepo, user)
		if err != nil {
			return err
		}

		output = &usecase.AuthOutput{User: user, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", output.User.ID))

	return output, nil
}

// Login signs a user in with an email address or a user name.
// Unknown identifiers and wrong passwords fail identically.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	identifier := strings.TrimSpace(input.Identifier)

	var (
		user *entity.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		user, err = srv.userRepo.FindByEmail(ctx, normalizeEmail(identifier))
	} else {
		user, err = srv.userRepo.FindByUserName(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			srv.log(ctx).Info("Login with unknown identifier")

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.Password) {
		srv.log(ctx).Info("Login with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDeactivated
	}

	if srv.hasher.NeedsRehash(user.Password) {
		srv.rehashPassword(ctx, user, input.Password)
	}

	now := srv.now()
	if err := srv.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		return nil, errors.Wrap(err, "failed to record login")
	}
	user.LastLoginAt = &now

	tokens, err := srv.issueTokens(ctx, srv.userRepo, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

// rehashPassword upgrades a stored hash to the current cost. Failures only cost a retry on the next login.
func (srv *authService) rehashPassword(ctx context.Context, user *entity.User, password string) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		srv.log(ctx).Warn("Failed to rehash password", slog.Any("userID", user.ID), slog.Any("error", err))

		return
	}

	previous := user.Password
	user.Password = hash
	if err := srv.userRepo.Update(ctx, user); err != nil {
		user.Password = previous
		srv.log(ctx).Warn("Failed to store rehashed password", slog.Any("userID", user.ID), slog.Any("error", err))
	}
}

// RefreshToken exchanges the stored refresh token for a new pair. Both tokens are rotated,
// so a refresh token can be used only once.
func (srv *authService) RefreshToken(ctx context.Context, refreshToken string) (*usecase.TokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !user.IsActive || user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		srv.log(ctx).Warn("Refresh token rejected", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	tokens, err := srv.issueTokens(ctx, srv.userRepo, user)
	if err != nil {
		return nil, err
	}

	return &usecase.TokenOutput{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

// Logout clears the stored refresh token.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.SetRefreshToken(ctx, userID, nil); err != nil {
		return notFound(err, domainerrors.ErrUserNotFound, "failed to clear refresh token")
	}

	srv.log(ctx).Info("User logged out", slog.Any("userID", userID))

	return nil
}

// Me returns the signed-in user.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrUserNotFound, "failed to find user")
	}

	return user, nil
}

// Authenticate verifies an access token and loads its active user.
func (srv *authService) Authenticate(ctx context.Context, accessToken string) (*entity.User, error) {
	claims, err := srv.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, notFound(err, domainerrors.ErrAuthUserNotFound, "failed to find user")
	}

	if !user.IsActive {
		return nil, domainerrors.ErrAccountDeactivated
	}

	return user, nil
}

// issueTokens signs a new pair and stores its refresh token as the only valid one.
func (srv *authService) issueTokens(ctx context.Context, userRepo repository.UserRepository, user *entity.User) (*service.TokenPair, error) {
	tokens, err := srv.tokenService.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := userRepo.SetRefreshToken(ctx, user.ID, &tokens.RefreshToken); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}
	user.RefreshToken = &tokens.RefreshToken

	return tokens, nil
}

// ensureEmailFree fails with conflict when another account uses email.
func ensureEmailFree(ctx context.Context, userRepo repository.UserRepository, email string, conflict error) error {
	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return conflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return errors.Wrap(err, "failed to check email")
	}

	return nil
}

// ensureUserNameFree fails with conflict when another account uses userName.
func ensureUserNameFree(ctx context.Context, userRepo repository.UserRepository, userName string, conflict error) error {
	_, err := userRepo.FindByUserName(ctx, userName)
	if err == nil {
		return conflict
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return errors.Wrap(err, "failed to check user name")
	}

	return nil
}
