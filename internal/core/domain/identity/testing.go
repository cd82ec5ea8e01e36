package identity

import (
	"context"
	"fmt"
	"sync"
	"verimail/internal/core/domain/user"
)

type FakeRepository struct {
	Identities  []Identity
	Created     []Identity
	ReturnError bool
	lock        sync.Mutex
	nextID      ID
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

func (r *FakeRepository) Create(ctx context.Context, input CreateInput) (i Identity, err error) {
	if r.ReturnError {
		return i, fmt.Errorf("could not create identity %v", input)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	r.nextID++
	i = Identity{
		ID:        r.nextID,
		UserID:    input.UserID,
		Type:      input.Type,
		Secret:    input.Secret,
		Label:     input.Label,
		Note:      input.Note,
		CreatedAt: input.CreatedAt,
	}
	r.Identities = append(r.Identities, i)
	r.Created = append(r.Created, i)
	return i, nil
}

func (r *FakeRepository) GetByUserAndType(ctx context.Context, userID user.ID, t Type) (i Identity, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	// The newest identity wins.
	for ix := len(r.Identities) - 1; ix >= 0; ix-- {
		if r.Identities[ix].UserID == userID && r.Identities[ix].Type == t {
			return r.Identities[ix], nil
		}
	}
	return i, ErrIdentityDoesNotExist
}

func (r *FakeRepository) DeleteByUserAndType(ctx context.Context, userID user.ID, t Type) error {
	if r.ReturnError {
		return fmt.Errorf("could not delete identities for user %d", userID)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	kept := r.Identities[:0]
	for _, i := range r.Identities {
		if !(i.UserID == userID && i.Type == t) {
			kept = append(kept, i)
		}
	}
	r.Identities = kept
	return nil
}

func (r *FakeRepository) CountByUserAndType(userID user.ID, t Type) int {
	r.lock.Lock()
	defer r.lock.Unlock()
	count := 0
	for _, i := range r.Identities {
		if i.UserID == userID && i.Type == t {
			count++
		}
	}
	return count
}

type FakeActivationCodeGenerator struct {
	Code ActivationCode
}

func NewFakeActivationCodeGenerator(code string) *FakeActivationCodeGenerator {
	return &FakeActivationCodeGenerator{Code: ActivationCode(code)}
}

func (g *FakeActivationCodeGenerator) GenerateActivationCode() ActivationCode {
	return g.Code
}

type SentActivationCode struct {
	User user.User
	Code ActivationCode
}

type FakeActivationCodeSender struct {
	Sent        []SentActivationCode
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeActivationCodeSender() *FakeActivationCodeSender {
	return &FakeActivationCodeSender{}
}

func (s *FakeActivationCodeSender) SendActivationCode(ctx context.Context, u user.User, code ActivationCode) error {
	if s.ReturnError {
		return fmt.Errorf("could not send activation code for user %d", u.ID)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, SentActivationCode{User: u, Code: code})
	return nil
}

func (s *FakeActivationCodeSender) SentCount() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.Sent)
}

func (s *FakeActivationCodeSender) LastSent() SentActivationCode {
	s.lock.Lock()
	defer s.lock.Unlock()
	l := len(s.Sent)
	if l == 0 {
		panic("Sent count is 0.")
	}
	return s.Sent[l-1]
}
