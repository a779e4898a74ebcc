package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okazimirov/learnlog-backend/internal/domain"
)

type authServiceMock struct {
	LoginFunc func(ctx context.Context, password string) (string, error)
}

func (m *authServiceMock) Login(ctx context.Context, password string) (string, error) {
	return m.LoginFunc(ctx, password)
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		svcToken    string
		svcErr      error
		wantStatus  int
		wantSuccess bool
	}{
		{
			name:        "correct password answers token",
			body:        `{"password": "hunter2"}`,
			svcToken:    "signed-token",
			wantStatus:  http.StatusOK,
			wantSuccess: true,
		},
		{
			name:       "wrong password answers 401",
			body:       `{"password": "wrong"}`,
			svcErr:     domain.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty password answers 400",
			body:       `{"password": ""}`,
			svcErr:     domain.NewValidationError("password", "is required"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "misconfigured server answers 500",
			body:       `{"password": "hunter2"}`,
			svcErr:     errors.New("verify password: no login password configured"),
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "malformed body answers 400",
			body:       `{"password": `,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &authServiceMock{
				LoginFunc: func(ctx context.Context, password string) (string, error) {
					return tt.svcToken, tt.svcErr
				},
			}
			h := NewAuthHandler(svc, testLogger())

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Login(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantSuccess {
				var resp loginResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, "signed-token", resp.Token)
			}
		})
	}
}

func TestAuthHandler_Login_DoesNotLeakConfigError(t *testing.T) {
	svc := &authServiceMock{
		LoginFunc: func(ctx context.Context, password string) (string, error) {
			return "", errors.New("verify password: invalid argon2id hash format")
		},
	}
	h := NewAuthHandler(svc, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password": "x"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "argon2id")
	assert.Contains(t, rec.Body.String(), "server configuration error")
}
