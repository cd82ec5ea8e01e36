// Package identity holds typed secrets tied to a user record that are not the
// primary password credential: activation codes and similar one-time values.
package identity

import (
	"context"
	"time"
	"verimail/internal/core/domain/user"
)

type ID int64

type Type string

const (
	EmailActivate Type = "email_activate"
)

// LabelRegister marks codes issued during the registration flow.
const LabelRegister = "register"

type ActivationCode string

type Identity struct {
	ID        ID
	UserID    user.ID
	Type      Type
	Secret    ActivationCode
	Label     string
	Note      string
	CreatedAt time.Time
}

// Matches compares the submitted code to the stored secret. Exact comparison,
// no case folding or trimming.
func (i *Identity) Matches(code ActivationCode) bool {
	return i.Secret == code
}

type ActivationCodeGenerator interface {
	GenerateActivationCode() ActivationCode
}

type ActivationCodeSender interface {
	SendActivationCode(ctx context.Context, u user.User, code ActivationCode) error
}
