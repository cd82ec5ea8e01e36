package activateuser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	c "verimail/internal/core/domain/common"
	"verimail/internal/core/domain/identity"
	"verimail/internal/core/domain/user"
	activateuser "verimail/internal/core/services/activate_user"

	"github.com/stretchr/testify/require"
)

type stubService struct {
	run func(ctx context.Context, input activateuser.Input) (activateuser.Result, error)
}

func (s *stubService) Run(ctx context.Context, input activateuser.Input) (activateuser.Result, error) {
	return s.run(ctx, input)
}

func TestActivationSuccess(t *testing.T) {
	activated := user.User{ID: user.ID(1), Email: c.NewOptional(c.Email("test@test.test"), true)}
	handler := New(&stubService{
		run: func(ctx context.Context, input activateuser.Input) (activateuser.Result, error) {
			return activateuser.Result{User: activated}, nil
		},
	})

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, newRequest(`{"code": "123456"}`))

	assert := require.New(t)
	assert.Equal(http.StatusOK, rw.Code)
	assert.Contains(rw.Body.String(), `"test@test.test"`)
}

func TestInvalidActivationCode(t *testing.T) {
	handler := New(&stubService{
		run: func(ctx context.Context, input activateuser.Input) (activateuser.Result, error) {
			return activateuser.Result{}, identity.ErrInvalidActivationCode
		},
	})

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, newRequest(`{"code": "999999"}`))

	assert := require.New(t)
	assert.Equal(http.StatusUnprocessableEntity, rw.Code)
	assert.Contains(rw.Body.String(), "invalid activation code")
}

func TestNotAuthenticated(t *testing.T) {
	handler := New(&stubService{
		run: func(ctx context.Context, input activateuser.Input) (activateuser.Result, error) {
			return activateuser.Result{}, user.ErrUserDoesNotExist
		},
	})

	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, newRequest(`{"code": "123456"}`))

	require.New(t).Equal(http.StatusUnauthorized, rw.Code)
}

func TestInvalidRequestData(t *testing.T) {
	cases := []struct {
		id   string
		body string
	}{
		{id: "not-json", body: "not json"},
		{id: "empty-code", body: `{"code": ""}`},
		{id: "no-code", body: `{}`},
	}
	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			handler := New(&stubService{
				run: func(ctx context.Context, input activateuser.Input) (activateuser.Result, error) {
					t.Fatal("service must not be called")
					return activateuser.Result{}, nil
				},
			})

			rw := httptest.NewRecorder()
			handler.ServeHTTP(rw, newRequest(testcase.body))

			require.New(t).Equal(http.StatusBadRequest, rw.Code)
		})
	}
}

func newRequest(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/auth/activate", strings.NewReader(body))
}
