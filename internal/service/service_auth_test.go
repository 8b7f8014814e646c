package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-route-handler/internal/config"
	"github.com/MKhiriev/go-route-handler/internal/logger"
	"github.com/MKhiriev/go-route-handler/internal/mock"
	"github.com/MKhiriev/go-route-handler/internal/store"
	"github.com/MKhiriev/go-route-handler/internal/validators"
	"github.com/MKhiriev/go-route-handler/models"
)

var testAppConfig = config.App{
	TokenSignKey:  "sign-key",
	TokenIssuer:   "test-issuer",
	TokenDuration: time.Hour,
}

// newTestAuthSvc builds an authService over a mocked UserRepository with
// the cheapest bcrypt cost.
func newTestAuthSvc(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(repo, testAppConfig, logger.Nop()).(*authService)
	svc.bcryptCost = bcrypt.MinCost

	return svc, repo
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, repo := newTestAuthSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "gopher", u.Login)
			assert.Empty(t, u.Password, "plain password must not reach the repository")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("password1")))
			u.UserID = 1
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.User{Login: "gopher", Password: "password1"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "gopher", Password: "short"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
	require.ErrorIs(t, err, validators.ErrPasswordTooShort)
}

func TestAuthService_RegisterUser_LoginTaken(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "gopher", Password: "password1"})
	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: 7, Login: "gopher", PasswordHash: hashed(t, "password1")}

	tests := []struct {
		name     string
		input    models.User
		repoUser models.User
		repoErr  error
		callRepo bool
		wantErr  error
	}{
		{name: "success", input: models.User{Login: "gopher", Password: "password1"}, repoUser: stored, callRepo: true},
		{name: "wrong password", input: models.User{Login: "gopher", Password: "password2"}, repoUser: stored, callRepo: true, wantErr: ErrWrongCredentials},
		{name: "unknown login", input: models.User{Login: "ghost", Password: "password1"}, repoErr: store.ErrNoUserWasFound, callRepo: true, wantErr: ErrWrongCredentials},
		{name: "storage failure", input: models.User{Login: "gopher", Password: "password1"}, repoErr: store.ErrExecutingQuery, callRepo: true, wantErr: store.ErrExecutingQuery},
		{name: "empty password", input: models.User{Login: "gopher"}, wantErr: ErrInvalidDataProvided},
		{name: "empty login", input: models.User{Password: "password1"}, wantErr: ErrInvalidDataProvided},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthSvc(t)
			if tt.callRepo {
				repo.EXPECT().FindUserByLogin(gomock.Any(), tt.input.Login).Return(tt.repoUser, tt.repoErr)
			}

			user, err := svc.Login(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.UserID, user.UserID)
		})
	}
}

func TestAuthService_Login_ShortPasswordStillChecked(t *testing.T) {
	svc, repo := newTestAuthSvc(t)

	// registration rules do not apply on login
	repo.EXPECT().FindUserByLogin(gomock.Any(), "gopher").
		Return(models.User{UserID: 1, Login: "gopher", PasswordHash: hashed(t, "x")}, nil)

	_, err := svc.Login(context.Background(), models.User{Login: "gopher", Password: "x"})
	require.NoError(t, err)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.String())
	require.NotEmpty(t, token.ID)

	parsed, err := svc.ParseToken(ctx, token.String())
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, token.ID, parsed.ID)
}

func TestAuthService_CreateToken_TokenIDsAreUnique(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	first, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)
	second, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestAuthService_CreateToken_MisconfiguredIssuer(t *testing.T) {
	svc, _ := newTestAuthSvc(t)
	svc.tokenIssuer = ""

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	other := NewAuthService(nil, config.App{
		TokenSignKey:  "other-key",
		TokenIssuer:   testAppConfig.TokenIssuer,
		TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(context.Background(), models.User{UserID: 1})
	require.NoError(t, err)

	for name, raw := range map[string]string{
		"garbage":      "not-a-token",
		"foreign key":  foreign.String(),
		"empty string": "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), raw)
			assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid))
		})
	}
}
