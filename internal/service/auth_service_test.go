package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"hr-records/internal/model"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) FindByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *mockUserStore) ExistsByUsernameOrEmail(ctx context.Context, username string, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserStore) Create(ctx context.Context, u model.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthServiceSignup(t *testing.T) {
	t.Parallel()

	t.Run("creates user and returns generated id", func(t *testing.T) {
		users := new(mockUserStore)
		svc := NewAuthService(users, NewTokenService("secret"))

		var created model.User
		users.On("ExistsByUsernameOrEmail", mock.Anything, "ann", "ann@x.com").Return(false, nil)
		users.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
			created = u
			return u.Username == "ann" && u.Email == "ann@x.com"
		})).Return(nil)

		id, err := svc.Signup(context.Background(), " ann ", "Ann@X.com", "secret1")
		require.NoError(t, err)
		require.Equal(t, created.ID, id)
		require.NotEmpty(t, id)

		// The stored hash verifies against the plaintext and is never the plaintext.
		require.NotEqual(t, "secret1", created.PasswordHash)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")))

		users.AssertExpectations(t)
	})

	t.Run("duplicate identity conflicts before hashing", func(t *testing.T) {
		users := new(mockUserStore)
		svc := NewAuthService(users, NewTokenService("secret"))

		users.On("ExistsByUsernameOrEmail", mock.Anything, "ann", "ann@x.com").Return(true, nil)

		_, err := svc.Signup(context.Background(), "ann", "ann@x.com", "secret1")
		require.ErrorIs(t, err, model.ErrUserAlreadyExists)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthServiceLogin(t *testing.T) {
	t.Parallel()

	user := func(t *testing.T) model.User {
		return model.User{
			ID:           "7e6f0b9a-63a4-4421-9df0-7f1b22a0c9d3",
			Username:     "ann",
			Email:        "ann@x.com",
			PasswordHash: hashOf(t, "secret1"),
		}
	}

	t.Run("login by email returns verifiable token", func(t *testing.T) {
		users := new(mockUserStore)
		tokens := NewTokenService("secret")
		svc := NewAuthService(users, tokens)

		users.On("FindByEmail", mock.Anything, "ann@x.com").Return(user(t), nil)

		token, err := svc.Login(context.Background(), "ann@x.com", "", "secret1")
		require.NoError(t, err)

		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "7e6f0b9a-63a4-4421-9df0-7f1b22a0c9d3", claims.UserID)
		require.Equal(t, "ann", claims.Username)
	})

	t.Run("login by username works when no email is given", func(t *testing.T) {
		users := new(mockUserStore)
		svc := NewAuthService(users, NewTokenService("secret"))

		users.On("FindByUsername", mock.Anything, "ann").Return(user(t), nil)

		_, err := svc.Login(context.Background(), "", "ann", "secret1")
		require.NoError(t, err)
		users.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("email takes precedence when both identifiers are supplied", func(t *testing.T) {
		users := new(mockUserStore)
		svc := NewAuthService(users, NewTokenService("secret"))

		users.On("FindByEmail", mock.Anything, "ann@x.com").Return(user(t), nil)

		_, err := svc.Login(context.Background(), "ann@x.com", "someone-else", "secret1")
		require.NoError(t, err)
		users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	})

	t.Run("unknown identifier and wrong password are indistinguishable", func(t *testing.T) {
		users := new(mockUserStore)
		svc := NewAuthService(users, NewTokenService("secret"))

		users.On("FindByEmail", mock.Anything, "ghost@x.com").Return(model.User{}, model.ErrUserNotFound)
		users.On("FindByEmail", mock.Anything, "ann@x.com").Return(user(t), nil)

		_, unknownErr := svc.Login(context.Background(), "ghost@x.com", "", "secret1")
		_, wrongPassErr := svc.Login(context.Background(), "ann@x.com", "", "wrong")

		require.ErrorIs(t, unknownErr, model.ErrInvalidCredentials)
		require.ErrorIs(t, wrongPassErr, model.ErrInvalidCredentials)
		require.Equal(t, unknownErr, wrongPassErr)
	})
}
