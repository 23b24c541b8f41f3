package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dreed/taskhub/internal/api/middleware"
	"github.com/dreed/taskhub/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	otherTokens := auth.NewTokenService("other-secret", time.Hour)

	validToken, err := tokens.Issue("ann@x.com", time.Hour)
	require.NoError(t, err)
	expiredToken, err := tokens.Issue("ann@x.com", -time.Minute)
	require.NoError(t, err)
	foreignToken, err := otherTokens.Issue("ann@x.com", time.Hour)
	require.NoError(t, err)

	var gotSubject string
	handler := middleware.Auth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = middleware.GetSubject(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"bare token", validToken, http.StatusUnauthorized},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized},
		{"wrong secret", "Bearer " + foreignToken, http.StatusUnauthorized},
		{"valid token", "Bearer " + validToken, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSubject = ""

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"), "401s advertise the bearer scheme")
				assert.Empty(t, gotSubject)
			} else {
				assert.Equal(t, "ann@x.com", gotSubject)
			}
		})
	}
}
