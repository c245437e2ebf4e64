package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posts-api/internal/api/shared"
	"posts-api/internal/config"
	"posts-api/internal/service/auth"
)

func newAuthMiddleware(t *testing.T) (*AuthMiddleware, auth.JWTService) {
	t.Helper()
	jwtService, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-that-is-long-enough-for-testing",
		TokenLifetimeMinutes: 30,
	})
	require.NoError(t, err)
	return NewAuthMiddleware(jwtService), jwtService
}

func TestAuthenticatePassesValidToken(t *testing.T) {
	m, jwtService := newAuthMiddleware(t)

	token, err := jwtService.GenerateToken(context.Background(), "testuser")
	require.NoError(t, err)

	var gotSubject string
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = shared.GetSubject(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	r := httptest.NewRequest(http.MethodDelete, "/users/1", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "testuser", gotSubject)
}

// Every authentication failure must produce the same response shape so a
// caller cannot tell why it was rejected.
func TestAuthenticateFailuresAreIndistinguishable(t *testing.T) {
	m, _ := newAuthMiddleware(t)

	tests := []struct {
		name   string
		header func(t *testing.T) string
	}{
		{
			name:   "missing header",
			header: func(t *testing.T) string { return "" },
		},
		{
			name:   "not a bearer header",
			header: func(t *testing.T) string { return "Basic dGVzdDp0ZXN0" },
		},
		{
			name:   "malformed token",
			header: func(t *testing.T) string { return "Bearer not.a.token" },
		},
		{
			name: "token signed with another secret",
			header: func(t *testing.T) string {
				otherService, err := auth.NewJWTService(config.AuthConfig{
					JWTSecret:            "a-completely-different-32-char-secret!!!",
					TokenLifetimeMinutes: 30,
				})
				require.NoError(t, err)
				token, err := otherService.GenerateToken(context.Background(), "testuser")
				require.NoError(t, err)
				return "Bearer " + token
			},
		},
	}

	var bodies []shared.ErrorResponse
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Fatal("handler must not be reached")
			}))

			r := httptest.NewRequest(http.MethodPost, "/users", nil)
			if h := tc.header(t); h != "" {
				r.Header.Set("Authorization", h)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, r)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, shared.BearerChallenge, w.Header().Get("WWW-Authenticate"))

			var body shared.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Could not validate credentials", body.Error)
			bodies = append(bodies, body)
		})
	}

	for _, body := range bodies {
		assert.Equal(t, bodies[0].Error, body.Error)
	}
}

// expiredTokenService reports every token as expired, standing in for a
// token whose exp claim has passed.
type expiredTokenService struct{}

func (s expiredTokenService) GenerateToken(ctx context.Context, subject string) (string, error) {
	return "", nil
}

func (s expiredTokenService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	return nil, auth.ErrExpiredToken
}

func TestAuthenticateRejectsExpiredToken(t *testing.T) {
	m := NewAuthMiddleware(expiredTokenService{})

	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be reached")
	}))

	r := httptest.NewRequest(http.MethodPut, "/posts/1", nil)
	r.Header.Set("Authorization", "Bearer some-token")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, shared.BearerChallenge, w.Header().Get("WWW-Authenticate"))

	var body shared.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Could not validate credentials", body.Error)
}
