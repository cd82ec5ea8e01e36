package loginwithemail

import (
	"context"
	"errors"
	"testing"
	"time"
	c "verimail/internal/core/domain/common"
	"verimail/internal/core/domain/logging"
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
	Logger            *logging.FakeLogger
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	Hasher            *user.FakePasswordHasher
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.Hasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.SessionRepository,
		suite.Hasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return Now },
	)
}

func TestLogInWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccessActiveUserLoggedIn() {
	u := s.createUser(true)

	result, err := s.Service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	assert := s.Require()
	assert.Nil(err)
	assert.Equal(user.SessionToken(SESSION_TOKEN), result.Token)

	sessionUser, err := s.SessionRepository.GetUserByToken(context.Background(), result.Token)
	assert.Nil(err)
	assert.Equal(u.ID, sessionUser.ID)
}

func (s *testSuite) TestInactiveUserRefused() {
	s.createUser(false)

	_, err := s.Service.Run(context.Background(), Input{Email: EMAIL, Password: PASSWORD})

	s.Require().True(errors.Is(err, user.ErrUserIsNotActive))
}

func (s *testSuite) TestUnknownEmail() {
	_, err := s.Service.Run(context.Background(), Input{Email: "unknown@test.test", Password: PASSWORD})

	s.Require().True(errors.Is(err, user.ErrInvalidCredentials))
}

func (s *testSuite) TestWrongPassword() {
	s.createUser(true)

	_, err := s.Service.Run(context.Background(), Input{Email: EMAIL, Password: "wrong-password"})

	s.Require().True(errors.Is(err, user.ErrInvalidCredentials))
}

func (s *testSuite) createUser(isActive bool) user.User {
	s.T().Helper()
	passwordHash, err := s.Hasher.HashPassword(PASSWORD)
	if err != nil {
		s.FailNow(err.Error())
	}
	activatedAt := c.NewOptional(Now, isActive)
	u, err := s.UserRepository.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.NewOptional(EMAIL, true),
			PasswordHash: c.NewOptional(passwordHash, true),
			CreatedAt:    Now,
			ActivatedAt:  activatedAt,
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}
