package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hr-records/internal/model"
)

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Signup(ctx context.Context, username string, email string, password string) (string, error) {
	args := m.Called(ctx, username, email, password)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email string, username string, password string) (string, error) {
	args := m.Called(ctx, email, username, password)
	return args.String(0), args.Error(1)
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) model.Response {
	t.Helper()

	var body model.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSignupHandler(t *testing.T) {
	t.Parallel()

	t.Run("valid payload returns 201 with user id", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		svc.On("Signup", mock.Anything, "ann", "ann@x.com", "secret1").
			Return("7e6f0b9a-63a4-4421-9df0-7f1b22a0c9d3", nil)

		rec := postJSON(t, h.Signup, "/user/signup",
			`{"username":"ann","email":"ann@x.com","password":"secret1"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		body := decodeResponse(t, rec)
		require.True(t, body.Success)
		require.Equal(t, "User created successfully.", body.Message)
		require.Equal(t, "7e6f0b9a-63a4-4421-9df0-7f1b22a0c9d3", body.UserID)
	})

	t.Run("violations accumulate into one 400", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		rec := postJSON(t, h.Signup, "/user/signup",
			`{"username":"  ","email":"nope","password":"123"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeResponse(t, rec)
		require.False(t, body.Success)
		require.Len(t, body.Errors, 3)
		svc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("duplicate identity returns 409", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		svc.On("Signup", mock.Anything, "ann", "ann@x.com", "secret1").
			Return("", model.ErrUserAlreadyExists)

		rec := postJSON(t, h.Signup, "/user/signup",
			`{"username":"ann","email":"ann@x.com","password":"secret1"}`)

		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, "User already exists", decodeResponse(t, rec).Message)
	})

	t.Run("invalid JSON returns 400", func(t *testing.T) {
		h := NewAuthHandler(new(mockAuthService))

		rec := postJSON(t, h.Signup, "/user/signup", `{not json`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials return the session token", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		svc.On("Login", mock.Anything, "ann@x.com", "", "secret1").
			Return("signed.jwt.token", nil)

		rec := postJSON(t, h.Login, "/user/login",
			`{"email":"ann@x.com","password":"secret1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeResponse(t, rec)
		require.True(t, body.Success)
		require.Equal(t, "Login successful.", body.Message)
		require.Equal(t, "signed.jwt.token", body.JWTToken)
	})

	t.Run("missing identifier fails validation", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		rec := postJSON(t, h.Login, "/user/login", `{"password":"secret1"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeResponse(t, rec)
		require.Len(t, body.Errors, 1)
		require.Equal(t, "email or username is required", body.Errors[0].Message)
	})

	t.Run("bad credentials return the generic 401", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		svc.On("Login", mock.Anything, "ann@x.com", "", "wrong").
			Return("", model.ErrInvalidCredentials)

		rec := postJSON(t, h.Login, "/user/login",
			`{"email":"ann@x.com","password":"wrong"}`)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, "Invalid Username and password", decodeResponse(t, rec).Message)
	})
}
