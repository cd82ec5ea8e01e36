// Package accountevent describes lifecycle events other systems subscribe to.
package accountevent

import (
	"context"
	"verimail/internal/core/domain/user"
)

type Publisher interface {
	PublishRegistered(ctx context.Context, u user.User) error
	PublishActivated(ctx context.Context, u user.User) error
}
