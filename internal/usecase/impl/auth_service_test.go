package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"companion/config"
	"companion/internal/domain/entity"
	domainerrors "companion/internal/domain/errors"
	"companion/internal/domain/repository"
	"companion/internal/domain/service"
	"companion/internal/infra/auth"
	mockRepo "companion/internal/mocks/repository"
	mockSvc "companion/internal/mocks/service"
	"companion/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authFixtures holds all test dependencies for auth service tests. The
// hasher, token service and session bus are the real implementations; only
// the persistence boundary and the mailer are mocked.
type authFixtures struct {
	service       usecase.AuthUsecase
	txManager     *mockRepo.MockTransactionManager
	userRepo      *mockRepo.MockUserRepository
	magicLinkRepo *mockRepo.MockMagicLinkRepository
	mailer        *mockSvc.MockMagicLinkMailer
	hasher        service.SecretHasher
	sessionBus    service.SessionBus
}

func newAuthTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"
	cfg.Auth = &config.AuthConfig{
		BcryptCost:   4,
		MagicLinkTTL: 15 * time.Minute,
		BaseURL:      "https://companion.example.com",
	}

	return cfg
}

func createTestAuthService(t *testing.T) authFixtures {
	cfg := newAuthTestConfig()

	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	magicLinkRepo := mockRepo.NewMockMagicLinkRepository(t)
	mailer := mockSvc.NewMockMagicLinkMailer(t)
	hasher := auth.NewBcryptHasher(cfg)
	sessionBus := auth.NewSessionBus(newDiscardLogger())

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	svc := NewAuthService(AuthServiceParams{
		TxManager:     txManager,
		UserRepo:      userRepo,
		MagicLinkRepo: magicLinkRepo,
		Hasher:        hasher,
		TokenService:  tokenService,
		Mailer:        mailer,
		SessionBus:    sessionBus,
		Config:        cfg,
		Logger:        newDiscardLogger(),
	})

	return authFixtures{
		service:       svc,
		txManager:     txManager,
		userRepo:      userRepo,
		magicLinkRepo: magicLinkRepo,
		mailer:        mailer,
		hasher:        hasher,
		sessionBus:    sessionBus,
	}
}

// issueLink runs BeginSignIn and captures both the persisted link and the
// emailed token.
func issueLink(t *testing.T, fx authFixtures, email string) (*entity.MagicLink, string) {
	t.Helper()

	ctx := context.Background()

	var link *entity.MagicLink
	fx.magicLinkRepo.EXPECT().
		CreateMagicLink(ctx, mock.AnythingOfType("*entity.MagicLink")).
		Run(func(ctx context.Context, created *entity.MagicLink) {
			link = created
		}).
		Return(nil).
		Once()

	var token string
	fx.mailer.EXPECT().
		SendMagicLink(ctx, email, mock.AnythingOfType("string")).
		Run(func(ctx context.Context, email, url string) {
			_, token, _ = strings.Cut(url, "token=")
		}).
		Return(nil).
		Once()

	require.NoError(t, fx.service.BeginSignIn(ctx, email))
	require.NotNil(t, link)
	require.NotEmpty(t, token)

	return link, token
}

func TestAuthService_BeginSignIn_IssuesHashedLink(t *testing.T) {
	fx := createTestAuthService(t)

	link, token := issueLink(t, fx, "attendee@example.com")

	assert.Equal(t, "attendee@example.com", link.Email)
	assert.True(t, link.ExpiresAt.After(time.Now()))

	// The emailed token is "<link id>.<secret>"; only the bcrypt hash of the
	// secret is persisted.
	idPart, secret, found := strings.Cut(token, ".")
	require.True(t, found)
	assert.Equal(t, link.ID.String(), idPart)
	assert.NotEqual(t, secret, link.SecretHash)
	assert.NoError(t, fx.hasher.Compare(link.SecretHash, secret))
}

func TestAuthService_BeginSignIn_NormalizesEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	var link *entity.MagicLink
	fx.magicLinkRepo.EXPECT().
		CreateMagicLink(ctx, mock.AnythingOfType("*entity.MagicLink")).
		Run(func(ctx context.Context, created *entity.MagicLink) {
			link = created
		}).
		Return(nil).
		Once()
	fx.mailer.EXPECT().
		SendMagicLink(ctx, "attendee@example.com", mock.AnythingOfType("string")).
		Return(nil).
		Once()

	require.NoError(t, fx.service.BeginSignIn(ctx, "  Attendee@Example.COM "))
	require.NotNil(t, link)
	assert.Equal(t, "attendee@example.com", link.Email)
}

func TestAuthService_BeginSignIn_EmptyEmail(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.BeginSignIn(context.Background(), "   ")

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_BeginSignIn_MailFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.magicLinkRepo.EXPECT().
		CreateMagicLink(ctx, mock.AnythingOfType("*entity.MagicLink")).
		Return(nil).
		Once()
	fx.mailer.EXPECT().
		SendMagicLink(ctx, "attendee@example.com", mock.AnythingOfType("string")).
		Return(assert.AnError).
		Once()

	err := fx.service.BeginSignIn(ctx, "attendee@example.com")

	assert.ErrorIs(t, err, domainerrors.ErrMailDeliveryFailed)
}

// expectSignInTransaction wires the transactional sign-in completion against
// the given link and an optional existing user.
func expectSignInTransaction(t *testing.T, fx authFixtures, link *entity.MagicLink, existing *entity.User) {
	t.Helper()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			linkRepo := mockRepo.NewMockMagicLinkRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().MagicLinkRepo().Return(linkRepo)
			factory.EXPECT().UserRepo().Return(userRepo)

			linkRepo.EXPECT().FindMagicLinkByID(ctx, link.ID).Return(link, nil)
			linkRepo.EXPECT().ConsumeMagicLink(ctx, link.ID).Return(nil).Maybe()

			if existing != nil {
				userRepo.EXPECT().FindUserByEmail(ctx, link.Email).Return(existing, nil).Maybe()
			} else {
				userRepo.EXPECT().FindUserByEmail(ctx, link.Email).Return(nil, repository.ErrUserNotFound).Maybe()
				userRepo.EXPECT().CreateUser(ctx, mock.AnythingOfType("*entity.User")).Return(nil).Maybe()
			}

			return fn(factory)
		}).
		Once()
}

func TestAuthService_CompleteSignIn_CreatesAccountOnFirstSignIn(t *testing.T) {
	fx := createTestAuthService(t)

	events, cancel := fx.sessionBus.Subscribe()
	defer cancel()

	link, token := issueLink(t, fx, "attendee@example.com")
	expectSignInTransaction(t, fx, link, nil)

	tokens, user, err := fx.service.CompleteSignIn(context.Background(), token)

	require.NoError(t, err)
	require.NotNil(t, tokens)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	require.NotNil(t, user)
	assert.Equal(t, "attendee@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)

	select {
	case event := <-events:
		assert.Equal(t, entity.SessionSignedIn, event.Type)
		assert.Equal(t, user.ID, event.UserID)
	default:
		t.Fatal("expected a signed-in session event")
	}
}

func TestAuthService_CompleteSignIn_ReturnsExistingUser(t *testing.T) {
	fx := createTestAuthService(t)

	existing := &entity.User{ID: uuid.New(), Email: "attendee@example.com"}

	link, token := issueLink(t, fx, existing.Email)
	expectSignInTransaction(t, fx, link, existing)

	_, user, err := fx.service.CompleteSignIn(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)
}

func TestAuthService_CompleteSignIn_MalformedToken(t *testing.T) {
	fx := createTestAuthService(t)

	for _, token := range []string{"", "no-dot", "not-a-uuid.secret", uuid.NewString()} {
		_, _, err := fx.service.CompleteSignIn(context.Background(), token)
		assert.ErrorIs(t, err, domainerrors.ErrMagicLinkInvalid, "token %q", token)
	}
}

func TestAuthService_CompleteSignIn_WrongSecret(t *testing.T) {
	fx := createTestAuthService(t)

	link, _ := issueLink(t, fx, "attendee@example.com")
	expectSignInTransaction(t, fx, link, nil)

	_, _, err := fx.service.CompleteSignIn(context.Background(), link.ID.String()+".wrong-secret")

	assert.ErrorIs(t, err, domainerrors.ErrMagicLinkInvalid)
}

func TestAuthService_CompleteSignIn_ExpiredLink(t *testing.T) {
	fx := createTestAuthService(t)

	link, token := issueLink(t, fx, "attendee@example.com")
	link.ExpiresAt = time.Now().Add(-time.Minute)
	expectSignInTransaction(t, fx, link, nil)

	_, _, err := fx.service.CompleteSignIn(context.Background(), token)

	assert.ErrorIs(t, err, domainerrors.ErrMagicLinkInvalid)
}

func TestAuthService_CompleteSignIn_ConsumedLink(t *testing.T) {
	fx := createTestAuthService(t)

	link, token := issueLink(t, fx, "attendee@example.com")
	consumedAt := time.Now().Add(-time.Minute)
	link.ConsumedAt = &consumedAt
	expectSignInTransaction(t, fx, link, nil)

	_, _, err := fx.service.CompleteSignIn(context.Background(), token)

	assert.ErrorIs(t, err, domainerrors.ErrMagicLinkInvalid)
}

func TestAuthService_CompleteSignIn_UnknownLink(t *testing.T) {
	fx := createTestAuthService(t)

	linkID := uuid.New()

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			linkRepo := mockRepo.NewMockMagicLinkRepository(t)
			userRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().MagicLinkRepo().Return(linkRepo)
			factory.EXPECT().UserRepo().Return(userRepo)

			linkRepo.EXPECT().FindMagicLinkByID(ctx, linkID).Return(nil, repository.ErrMagicLinkNotFound)

			return fn(factory)
		}).
		Once()

	_, _, err := fx.service.CompleteSignIn(context.Background(), linkID.String()+".some-secret")

	assert.ErrorIs(t, err, domainerrors.ErrMagicLinkInvalid)
}

func TestAuthService_SignOut_PublishesEvent(t *testing.T) {
	fx := createTestAuthService(t)

	events, cancel := fx.sessionBus.Subscribe()
	defer cancel()

	userID := uuid.New()

	require.NoError(t, fx.service.SignOut(context.Background(), userID))

	select {
	case event := <-events:
		assert.Equal(t, entity.SessionSignedOut, event.Type)
		assert.Equal(t, userID, event.UserID)
	default:
		t.Fatal("expected a signed-out session event")
	}
}

func TestAuthService_SignOut_RequiresSignIn(t *testing.T) {
	fx := createTestAuthService(t)

	err := fx.service.SignOut(context.Background(), uuid.Nil)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
