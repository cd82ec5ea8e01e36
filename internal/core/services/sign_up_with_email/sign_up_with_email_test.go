package signupwithemail

import (
	"context"
	"errors"
	"testing"
	"time"
	accountevent "verimail/internal/core/domain/account_event"
	c "verimail/internal/core/domain/common"
	"verimail/internal/core/domain/logging"
	uow "verimail/internal/core/domain/unit_of_work"
	"verimail/internal/core/domain/user"
	"verimail/internal/core/services"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = c.Email("test@test.test")
	PASSWORD      = user.RawPassword("test-password")
	SESSION_TOKEN = "test-session-token"
)

var Now time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger    *logging.FakeLogger
	Uow       *uow.FakeUnitOfWork
	Publisher *accountevent.FakePublisher
	Service   services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.Uow = uow.NewFakeUnitOfWork()
	suite.Publisher = accountevent.NewFakePublisher()
	suite.Service = New(
		suite.Logger,
		suite.Uow,
		user.NewFakePasswordHasher(),
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		suite.Publisher,
		func() time.Time { return Now },
	)
}

func TestSignUpWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccessInactiveUserCreated() {
	result, err := s.Service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	assert := s.Require()
	assert.Nil(err)
	assert.False(result.User.IsActive())
	assert.Equal(EMAIL, result.User.Email.Value)
	assert.Equal(user.SessionToken(SESSION_TOKEN), result.SessionToken)
	assert.True(s.Uow.Context.WasCommitCalled)

	sessionUser, err := s.Uow.Context.SessionRepository.GetUserByToken(
		context.Background(),
		user.SessionToken(SESSION_TOKEN),
	)
	assert.Nil(err)
	assert.Equal(result.User.ID, sessionUser.ID)
}

func (s *testSuite) TestSuccessRegisteredEventPublished() {
	result, err := s.Service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(1, len(s.Publisher.Registered))
	assert.Equal(result.User.ID, s.Publisher.Registered[0].ID)
}

func (s *testSuite) TestEmailAlreadyExists() {
	_, err := s.Service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})
	s.Require().Nil(err)

	_, err = s.Service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	assert := s.Require()
	assert.True(errors.Is(err, user.ErrEmailAlreadyExists))
	assert.Equal(1, len(s.Publisher.Registered))
}

func (s *testSuite) TestUserCreationFailed() {
	s.Uow.Context.UserRepository.ReturnError = true

	_, err := s.Service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	assert := s.Require()
	assert.NotNil(err)
	assert.False(s.Uow.Context.WasCommitCalled)
	assert.Equal(0, len(s.Publisher.Registered))
}
