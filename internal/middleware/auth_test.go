package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"hr-records/internal/model"
)

type stubVerifier struct {
	claims *model.SessionClaims
	err    error
}

func (s *stubVerifier) Verify(string) (*model.SessionClaims, error) {
	return s.claims, s.err
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	protected := func(m *AuthMiddleware) (http.Handler, *bool, **model.SessionClaims) {
		reached := false
		var seen *model.SessionClaims
		h := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
			seen, _ = ClaimsFromContext(r.Context())
			w.WriteHeader(http.StatusOK)
		}))
		return h, &reached, &seen
	}

	t.Run("missing header is rejected before the handler", func(t *testing.T) {
		m := NewAuthMiddleware(&stubVerifier{})
		h, reached, _ := protected(m)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/emp/employees", nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, *reached)

		var body model.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.False(t, body.Success)
		require.Equal(t, "No token provided", body.Message)
	})

	t.Run("non-bearer scheme is rejected", func(t *testing.T) {
		m := NewAuthMiddleware(&stubVerifier{})
		h, reached, _ := protected(m)

		req := httptest.NewRequest(http.MethodGet, "/emp/employees", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, *reached)
	})

	t.Run("verifier failure is rejected", func(t *testing.T) {
		m := NewAuthMiddleware(&stubVerifier{err: model.ErrInvalidToken})
		h, reached, _ := protected(m)

		req := httptest.NewRequest(http.MethodGet, "/emp/employees", nil)
		req.Header.Set("Authorization", "Bearer expired")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, *reached)

		var body model.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "Invalid or expired token", body.Message)
	})

	t.Run("valid token attaches claims to context", func(t *testing.T) {
		claims := &model.SessionClaims{UserID: "user-1", Username: "ann"}
		m := NewAuthMiddleware(&stubVerifier{claims: claims})
		h, reached, seen := protected(m)

		req := httptest.NewRequest(http.MethodGet, "/emp/employees", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, *reached)
		require.Equal(t, claims, *seen)
	})
}
