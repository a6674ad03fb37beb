package resetpassword

import (
	"accounts/internal/core/domain/user"
	service "accounts/internal/core/services/reset_password"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err error
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	return result, s.err
}

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           `{"token": "some-token", "newPassword": "Abcdef1!"}`,
			expectedStatus: http.StatusOK,
		},
		{
			id:             "missing-token",
			body:           `{"newPassword": "Abcdef1!"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing-password",
			body:           `{"token": "some-token"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "weak-password",
			body:           `{"token": "some-token", "newPassword": "weak"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "password-without-symbol",
			body:           `{"token": "some-token", "newPassword": "Abcdefg1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "invalid-token",
			body:           `{"token": "some-token", "newPassword": "Abcdef1!"}`,
			serviceErr:     user.ErrInvalidPasswordResetToken,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			handler := New(&stubService{err: testcase.serviceErr})

			req := httptest.NewRequest(http.MethodPost, "/api/reset-password", strings.NewReader(testcase.body))
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
		})
	}
}
