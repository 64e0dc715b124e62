package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"companion/config"
	deliverycontext "companion/internal/delivery/context"
	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/domain/service"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface: passwordless sign-in
// through single-use emailed magic links.
type authService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	magicLinkRepo repository.MagicLinkRepository
	hasher        service.SecretHasher
	tokenService  service.TokenService
	mailer        service.MagicLinkMailer
	sessionBus    service.SessionBus
	linkTTL       time.Duration
	baseURL       string
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	UserRepo      repository.UserRepository
	MagicLinkRepo repository.MagicLinkRepository
	Hasher        service.SecretHasher
	TokenService  service.TokenService
	Mailer        service.MagicLinkMailer
	SessionBus    service.SessionBus
	Config        *config.Config
	Logger        *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		magicLinkRepo: params.MagicLinkRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		mailer:        params.Mailer,
		sessionBus:    params.SessionBus,
		linkTTL:       params.Config.Auth.MagicLinkTTL,
		baseURL:       strings.TrimRight(params.Config.Auth.BaseURL, "/"),
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// BeginSignIn issues a magic link and mails it. The account itself is only
// created when the link is consumed, so mistyped addresses leave no trace.
func (srv *authService) BeginSignIn(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return domainerrors.ErrValidationFailed.WrapMessage("email is required")
	}

	secret := uuid.NewString()
	secretHash, err := srv.hasher.Hash(secret)
	if err != nil {
		srv.log(ctx).Error("Failed to hash magic link secret", slog.Any("error", err))

		return errors.Wrap(err, "failed to hash magic link secret")
	}

	link := &entity.MagicLink{
		ID:         uuid.New(),
		Email:      email,
		SecretHash: secretHash,
		ExpiresAt:  time.Now().Add(srv.linkTTL),
	}
	if err := srv.magicLinkRepo.CreateMagicLink(ctx, link); err != nil {
		srv.log(ctx).Error("Failed to persist magic link", slog.Any("error", err))

		return errors.Wrap(err, "failed to create magic link")
	}

	signInURL := srv.baseURL + "/auth/verify?token=" + link.ID.String() + "." + secret
	if err := srv.mailer.SendMagicLink(ctx, email, signInURL); err != nil {
		srv.log(ctx).Error("Failed to send magic link mail", slog.Any("error", err), slog.String("email", email))

		return domainerrors.ErrMailDeliveryFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Magic link issued", slog.String("email", email), slog.Any("link_id", link.ID))

	return nil
}

// CompleteSignIn consumes a magic link token atomically, creating the account
// on first sign-in, and returns a fresh JWT pair.
//
// Every invalid-token path collapses into ErrMagicLinkInvalid so the response
// never reveals whether a link existed, expired or was already used.
func (srv *authService) CompleteSignIn(ctx context.Context, token string) (*entity.SessionTokens, *entity.User, error) {
	linkID, secret, ok := splitMagicToken(token)
	if !ok {
		return nil, nil, domainerrors.ErrMagicLinkInvalid
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		linkRepo := repoFactory.MagicLinkRepo()
		userRepo := repoFactory.UserRepo()

		link, err := linkRepo.FindMagicLinkByID(ctx, linkID)
		if errors.Is(err, repository.ErrMagicLinkNotFound) {
			return domainerrors.ErrMagicLinkInvalid
		}
		if err != nil {
			return errors.Wrap(err, "failed to find magic link")
		}

		if !link.Usable(time.Now()) {
			return domainerrors.ErrMagicLinkInvalid
		}
		if err := srv.hasher.Compare(link.SecretHash, secret); err != nil {
			return domainerrors.ErrMagicLinkInvalid
		}

		// Consuming inside the same transaction keeps the link single-use
		// even under concurrent verification attempts.
		if err := linkRepo.ConsumeMagicLink(ctx, link.ID); err != nil {
			if errors.Is(err, repository.ErrMagicLinkNotFound) {
				return domainerrors.ErrMagicLinkInvalid
			}

			return errors.Wrap(err, "failed to consume magic link")
		}

		user, err = userRepo.FindUserByEmail(ctx, link.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			user = &entity.User{ID: uuid.New(), Email: link.Email}
			if err := userRepo.CreateUser(ctx, user); err != nil {
				return errors.Wrap(domainerrors.ErrUserCreationFailed, err.Error())
			}

			return nil
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by email")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-in completion failed", slog.Any("error", err))

		return nil, nil, err
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Email)
	if err != nil {
		srv.log(ctx).Error("Failed to generate session tokens", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.sessionBus.Publish(entity.SessionEvent{
		Type:   entity.SessionSignedIn,
		UserID: user.ID,
		Email:  user.Email,
	})

	srv.log(ctx).Info("Sign-in completed", slog.Any("user_id", user.ID))

	return &entity.SessionTokens{AccessToken: accessToken, RefreshToken: refreshToken}, user, nil
}

// SignOut publishes the signed-out transition. Tokens are stateless, so
// there is nothing to revoke server-side.
func (srv *authService) SignOut(ctx context.Context, userID uuid.UUID) error {
	if userID == uuid.Nil {
		return domainerrors.ErrUnauthenticated
	}

	srv.sessionBus.Publish(entity.SessionEvent{
		Type:   entity.SessionSignedOut,
		UserID: userID,
	})

	srv.log(ctx).Info("Signed out", slog.Any("user_id", userID))

	return nil
}

// splitMagicToken splits an emailed token into its link id and plain secret.
func splitMagicToken(token string) (uuid.UUID, string, bool) {
	idPart, secret, found := strings.Cut(token, ".")
	if !found || secret == "" {
		return uuid.Nil, "", false
	}

	linkID, err := uuid.Parse(idPart)
	if err != nil {
		return uuid.Nil, "", false
	}

	return linkID, secret, true
}
