package accountevent

import (
	"context"
	"fmt"
	"sync"
	"verimail/internal/core/domain/user"
)

type FakePublisher struct {
	Registered  []user.User
	Activated   []user.User
	ReturnError bool
	lock        sync.Mutex
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (p *FakePublisher) PublishRegistered(ctx context.Context, u user.User) error {
	if p.ReturnError {
		return fmt.Errorf("could not publish registered event for user %d", u.ID)
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Registered = append(p.Registered, u)
	return nil
}

func (p *FakePublisher) PublishActivated(ctx context.Context, u user.User) error {
	if p.ReturnError {
		return fmt.Errorf("could not publish activated event for user %d", u.ID)
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.Activated = append(p.Activated, u)
	return nil
}
