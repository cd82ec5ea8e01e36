package uow

import (
	"context"
	"verimail/internal/core/domain/identity"
	"verimail/internal/core/domain/user"
)

type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Sessions() user.SessionRepository
	Identities() identity.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
