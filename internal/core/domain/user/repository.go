package user

import (
	"context"
	"time"
	c "verimail/internal/core/domain/common"
)

type CreateUserInput struct {
	Email        c.Optional[c.Email]
	PasswordHash c.Optional[PasswordHash]
	CreatedAt    time.Time
	ActivatedAt  c.Optional[time.Time]
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	Activate(ctx context.Context, id ID, at time.Time) (User, error)
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}
