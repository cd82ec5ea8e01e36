package logout

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

const SESSION_TOKEN = user.SessionToken("test-session-token")

type testSuite struct {
	suite.Suite
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.Service = New(logging.NewFakeLogger(), suite.SessionRepository)
}

func TestLogOutService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestSuccessSessionDeleted() {
	s.createSession()

	_, err := s.Service.Run(context.Background(), Input{Token: SESSION_TOKEN})

	assert := s.Require()
	assert.Nil(err)
	_, err = s.SessionRepository.GetUserByToken(context.Background(), SESSION_TOKEN)
	assert.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestUnknownSession() {
	_, err := s.Service.Run(context.Background(), Input{Token: SESSION_TOKEN})

	s.Require().True(errors.Is(err, user.ErrSessionDoesNotExist))
}

func (s *testSuite) createSession() {
	s.T().Helper()
	u, err := s.UserRepository.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.NewOptional(c.Email("test@test.test"), true),
			PasswordHash: c.NewOptional(user.PasswordHash("test-hash"), true),
			CreatedAt:    time.Now().UTC(),
		},
	)
	if err != nil {
		s.FailNow(err.Error())
	}
	err = s.SessionRepository.Create(context.Background(), user.CreateSessionInput{
		UserID:    u.ID,
		Token:     SESSION_TOKEN,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		s.FailNow(err.Error())
	}
}
