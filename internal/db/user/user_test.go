package user

import (
	"context"
	"errors"
	"testing"
	"time"
	c "verimail/internal/core/domain/common"
	"verimail/internal/core/domain/user"
	"verimail/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	PASSWORD_HASH = "test-password-hash"
)

var NOW time.Time = time.Date(2020, 6, 6, 15, 30, 30, 0, time.UTC)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	repo *PgxUserRepository
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.repo = NewPgxRepository(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestCreateSuccess() {
	input := user.CreateUserInput{
		Email:        c.NewOptional(c.NewEmail(EMAIL), true),
		PasswordHash: c.NewOptional(user.PasswordHash(PASSWORD_HASH), true),
		CreatedAt:    NOW,
	}

	u, err := suite.repo.Create(context.Background(), input)

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(input.Email, u.Email)
	assert.Equal(input.PasswordHash, u.PasswordHash)
	assert.True(input.CreatedAt.Equal(u.CreatedAt))
	assert.False(u.IsActive())
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	input := user.CreateUserInput{
		Email:        c.NewOptional(c.NewEmail(EMAIL), true),
		PasswordHash: c.NewOptional(user.PasswordHash(PASSWORD_HASH), true),
		CreatedAt:    NOW,
	}
	_, err := suite.repo.Create(context.Background(), input)

	assert := suite.Require()
	assert.Nil(err)

	_, err = suite.repo.Create(context.Background(), input)
	assert.ErrorIs(err, user.ErrEmailAlreadyExists)
}

func (s *testSuite) TestGetByEmail() {
	created := s.createInactiveUser()

	u, err := s.repo.GetByEmail(context.Background(), c.NewEmail(EMAIL))

	s.Nil(err)
	s.Equal(created.ID, u.ID)
}

func (s *testSuite) TestGetByEmailDoesNotExist() {
	_, err := s.repo.GetByEmail(context.Background(), c.NewEmail("unknown@test.test"))

	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) TestActivateSuccess() {
	inactiveUser := s.createInactiveUser()

	activatedUser, err := s.repo.Activate(context.Background(), inactiveUser.ID, NOW)

	s.Nil(err)
	s.Equal(inactiveUser.ID, activatedUser.ID)
	s.Equal(inactiveUser.Email, activatedUser.Email)
	s.True(activatedUser.IsActive())
	s.True(NOW.Equal(activatedUser.ActivatedAt.Value))
}

func (s *testSuite) TestActivateKeepsFirstTimestamp() {
	inactiveUser := s.createInactiveUser()

	_, err := s.repo.Activate(context.Background(), inactiveUser.ID, NOW)
	s.Nil(err)

	later := NOW.Add(time.Hour)
	activatedUser, err := s.repo.Activate(context.Background(), inactiveUser.ID, later)
	s.Nil(err)
	s.True(NOW.Equal(activatedUser.ActivatedAt.Value))
}

func (s *testSuite) TestActivateFailsIfUserDoesNotExist() {
	_, err := s.repo.Activate(context.Background(), user.ID(111222333), NOW)

	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSuite) createInactiveUser() user.User {
	s.T().Helper()
	u, err := s.repo.Create(
		context.Background(),
		user.CreateUserInput{
			Email:        c.NewOptional(c.NewEmail(EMAIL), true),
			PasswordHash: c.NewOptional(user.PasswordHash(PASSWORD_HASH), true),
			CreatedAt:    NOW,
		},
	)
	if err != nil {
		s.FailNowf("could not create user", "err: %v", err)
	}
	s.False(u.IsActive())
	return u
}
