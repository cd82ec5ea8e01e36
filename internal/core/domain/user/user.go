package user

import (
	"fmt"
	"time"
	c "verimail/internal/core/domain/common"
	e "verimail/internal/core/domain/errors"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type SessionToken string

type User struct {
	ID           ID
	Email        c.Optional[c.Email]
	PasswordHash c.Optional[PasswordHash]
	CreatedAt    time.Time
	ActivatedAt  c.Optional[time.Time]
}

func (u *User) Validate() error {
	if !u.Email.IsPresent {
		return e.NewInvalidStateError(fmt.Sprintf("email is not set for user %d", u.ID))
	}
	if !u.PasswordHash.IsPresent {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for user %d", u.ID))
	}
	return nil
}

func (u *User) IsActive() bool {
	return u.ActivatedAt.IsPresent
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

type SessionTokenGenerator interface {
	GenerateSessionToken() SessionToken
}
