package signupwithemail

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	c "verimail/internal/core/domain/common"
	"verimail/internal/core/domain/identity"
	"verimail/internal/core/domain/user"
	signupwithemail "verimail/internal/core/services/sign_up_with_email"

	"github.com/stretchr/testify/require"
)

const TOKEN = "test-session-token"

type stubService struct {
	run func(ctx context.Context, input signupwithemail.Input) (signupwithemail.Result, error)
}

func (s *stubService) Run(ctx context.Context, input signupwithemail.Input) (signupwithemail.Result, error) {
	return s.run(ctx, input)
}

func TestSignUpSuccess(t *testing.T) {
	handler := New(&stubService{
		run: func(ctx context.Context, input signupwithemail.Input) (signupwithemail.Result, error) {
			return signupwithemail.Result{
				User:         user.User{ID: user.ID(1), Email: c.NewOptional(input.Email, true)},
				SessionToken: user.SessionToken(TOKEN),
				Code:         identity.ActivationCode("123456"),
			}, nil
		},
	}, false)

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, newRequest(`{"email": "test@test.test", "password": "secret-password"}`))

	assert := require.New(t)
	assert.Equal(http.StatusCreated, rw.Code)
	assert.Contains(rw.Body.String(), TOKEN)
	assert.Empty(rw.Header().Get("x-test-activation-code"))
}

func TestSignUpTestModeExposesCode(t *testing.T) {
	handler := New(&stubService{
		run: func(ctx context.Context, input signupwithemail.Input) (signupwithemail.Result, error) {
			return signupwithemail.Result{
				User:         user.User{ID: user.ID(1), Email: c.NewOptional(input.Email, true)},
				SessionToken: user.SessionToken(TOKEN),
				Code:         identity.ActivationCode("123456"),
			}, nil
		},
	}, true)

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, newRequest(`{"email": "test@test.test", "password": "secret-password"}`))

	assert := require.New(t)
	assert.Equal(http.StatusCreated, rw.Code)
	assert.Equal("123456", rw.Header().Get("x-test-activation-code"))
}

func TestDeliveryFailureStillReturnsSessionToken(t *testing.T) {
	handler := New(&stubService{
		run: func(ctx context.Context, input signupwithemail.Input) (signupwithemail.Result, error) {
			u := user.User{ID: user.ID(1), Email: c.NewOptional(input.Email, true)}
			return signupwithemail.Result{User: u, SessionToken: user.SessionToken(TOKEN)},
				&identity.ActivationCodeDeliveryError{Email: input.Email, Err: context.DeadlineExceeded}
		},
	}, false)

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, newRequest(`{"email": "test@test.test", "password": "secret-password"}`))

	assert := require.New(t)
	assert.Equal(http.StatusBadGateway, rw.Code)
	assert.Contains(rw.Body.String(), "could not deliver activation code")
	assert.Contains(rw.Body.String(), TOKEN)
}

func TestEmailAlreadyExists(t *testing.T) {
	handler := New(&stubService{
		run: func(ctx context.Context, input signupwithemail.Input) (signupwithemail.Result, error) {
			return signupwithemail.Result{}, user.ErrEmailAlreadyExists
		},
	}, false)

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, newRequest(`{"email": "test@test.test", "password": "secret-password"}`))

	assert := require.New(t)
	assert.Equal(http.StatusUnprocessableEntity, rw.Code)
	assert.Contains(rw.Body.String(), "email already exists")
}

func TestInvalidRequestData(t *testing.T) {
	cases := []struct {
		id   string
		body string
	}{
		{id: "not-json", body: "not json"},
		{id: "no-email", body: `{"password": "secret-password"}`},
		{id: "bad-email", body: `{"email": "not-an-email", "password": "secret-password"}`},
		{id: "short-password", body: `{"email": "test@test.test", "password": "abc"}`},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			handler := New(&stubService{
				run: func(ctx context.Context, input signupwithemail.Input) (signupwithemail.Result, error) {
					t.Fatal("service must not be called")
					return signupwithemail.Result{}, nil
				},
			}, false)

			rw := httptest.NewRecorder()
			handler.ServeHTTP(rw, newRequest(testcase.body))

			require.New(t).Equal(http.StatusBadRequest, rw.Code)
		})
	}
}

func TestNewRequiresService(t *testing.T) {
	require.New(t).Panics(func() {
		New(nil, false)
	})
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(body))
}
