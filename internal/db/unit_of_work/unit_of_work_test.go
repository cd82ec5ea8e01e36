package uow

import (
	"context"
	"errors"
	"testing"
	"time"
	c "verimail/internal/core/domain/common"
	"verimail/internal/core/domain/identity"
	"verimail/internal/core/domain/user"
	"verimail/internal/db"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

type testSuite struct {
	suite.Suite
	pool *pgxpool.Pool
	uow  *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool()
	suite.uow = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	suite.pool.Close()
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) TestCommitPersistsChanges() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Nil(err)
	defer uow.Rollback(ctx)

	u, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        c.NewOptional(c.NewEmail("test@test.test"), true),
		PasswordHash: c.NewOptional(user.PasswordHash("test"), true),
		CreatedAt:    time.Now().UTC(),
	})
	s.Nil(err)
	_, err = uow.Identities().Create(ctx, identity.CreateInput{
		UserID:    u.ID,
		Type:      identity.EmailActivate,
		Secret:    identity.ActivationCode("123456"),
		Label:     identity.LabelRegister,
		CreatedAt: time.Now().UTC(),
	})
	s.Nil(err)
	s.Nil(uow.Commit(ctx))

	uow, err = s.uow.Begin(ctx)
	s.Nil(err)
	defer uow.Rollback(ctx)
	got, err := uow.Identities().GetByUserAndType(ctx, u.ID, identity.EmailActivate)
	s.Nil(err)
	s.Equal(identity.ActivationCode("123456"), got.Secret)
}

func (s *testSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	uow, err := s.uow.Begin(ctx)
	s.Nil(err)

	u, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        c.NewOptional(c.NewEmail("test@test.test"), true),
		PasswordHash: c.NewOptional(user.PasswordHash("test"), true),
		CreatedAt:    time.Now().UTC(),
	})
	s.Nil(err)
	s.Nil(uow.Rollback(ctx))

	uow, err = s.uow.Begin(ctx)
	s.Nil(err)
	defer uow.Rollback(ctx)
	_, err = uow.Users().GetByID(ctx, u.ID)
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}
