package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"hr-records/internal/model"
)

const bcryptCost = 10

// UserStore is the credential store the auth service consumes.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (model.User, error)
	FindByUsername(ctx context.Context, username string) (model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username string, email string) (bool, error)
	Create(ctx context.Context, u model.User) error
}

type AuthService struct {
	users  UserStore
	tokens *TokenService
}

func NewAuthService(users UserStore, tokens *TokenService) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Signup persists a new user and returns the generated id. A duplicate
// username or email fails with ErrUserAlreadyExists.
func (s *AuthService) Signup(ctx context.Context, username string, email string, password string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return "", err
	}
	if exists {
		return "", model.ErrUserAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	return user.ID, nil
}

// Login looks up by email when one is supplied, otherwise by username.
// Unknown identifiers and wrong passwords both return
// ErrInvalidCredentials so callers cannot tell which one happened.
func (s *AuthService) Login(ctx context.Context, email string, username string, password string) (string, error) {
	var (
		user model.User
		err  error
	)
	if strings.TrimSpace(email) != "" {
		user, err = s.users.FindByEmail(ctx, email)
	} else {
		user, err = s.users.FindByUsername(ctx, username)
	}
	if err != nil {
		return "", model.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", model.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Username)
}
