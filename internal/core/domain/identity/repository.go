package identity

import (
	"context"
	"time"
	"verimail/internal/core/domain/user"
)

type CreateInput struct {
	UserID    user.ID
	Type      Type
	Secret    ActivationCode
	Label     string
	Note      string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, input CreateInput) (Identity, error)
	GetByUserAndType(ctx context.Context, userID user.ID, t Type) (Identity, error)
	DeleteByUserAndType(ctx context.Context, userID user.ID, t Type) error
}
