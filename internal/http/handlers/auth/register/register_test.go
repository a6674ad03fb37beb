package register

import (
	"accounts/internal/core/domain/user"
	service "accounts/internal/core/services/register"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubService struct {
	err   error
	input *service.Input
}

func (s *stubService) Run(ctx context.Context, input service.Input) (result service.Result, err error) {
	if s.err != nil {
		return result, s.err
	}
	s.input = &input
	return result, nil
}

const validBody = `{
	"firstName": " Somchai ",
	"lastName": "Jaidee",
	"email": "A@X.com",
	"phone": " 111 ",
	"password": "abcdef",
	"confirmPassword": "abcdef",
	"country": "TH",
	"receiveNews": "true",
	"terms": true
}`

func TestRegisterHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			id:             "success",
			body:           validBody,
			expectedStatus: http.StatusCreated,
		},
		{
			id:             "invalid-json",
			body:           "{",
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "missing-fields",
			body:           `{"email": "a@x.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id: "terms-not-accepted",
			body: `{"firstName": "a", "lastName": "b", "email": "a@x.com", "phone": "111",
				"password": "abcdef", "confirmPassword": "abcdef", "country": "TH", "terms": false}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id: "password-mismatch",
			body: `{"firstName": "a", "lastName": "b", "email": "a@x.com", "phone": "111",
				"password": "abcdef", "confirmPassword": "abcdeX", "country": "TH", "terms": true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id: "password-too-short",
			body: `{"firstName": "a", "lastName": "b", "email": "a@x.com", "phone": "111",
				"password": "abcde", "confirmPassword": "abcde", "country": "TH", "terms": true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id: "receive-news-not-a-boolean",
			body: `{"firstName": "a", "lastName": "b", "email": "a@x.com", "phone": "111",
				"password": "abcdef", "confirmPassword": "abcdef", "country": "TH",
				"receiveNews": "yes", "terms": true}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "email-conflict",
			body:           validBody,
			serviceErr:     user.ErrEmailAlreadyExists,
			expectedStatus: http.StatusBadRequest,
		},
		{
			id:             "phone-conflict",
			body:           validBody,
			serviceErr:     user.ErrPhoneAlreadyExists,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			stub := &stubService{err: testcase.serviceErr}
			handler := New(stub)

			req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(testcase.body))
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, req)

			assert.Equal(t, testcase.expectedStatus, recorder.Code)
		})
	}
}

func TestRegisterHandlerNormalizesInput(t *testing.T) {
	stub := &stubService{}
	handler := New(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(validBody))
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.NotNil(t, stub.input)
	assert.Equal(t, "Somchai", stub.input.FirstName)
	assert.Equal(t, "a@x.com", string(stub.input.Email))
	assert.Equal(t, "111", string(stub.input.Phone))
	assert.True(t, stub.input.ReceiveNews)
	assert.JSONEq(t, `{"success": true}`, recorder.Body.String())
}
