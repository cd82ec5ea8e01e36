package identity

import (
	"errors"
	"fmt"
	c "verimail/internal/core/domain/common"
)

var (
	ErrIdentityDoesNotExist  = errors.New("identity does not exist")
	ErrInvalidActivationCode = errors.New("invalid activation code")
)

type ActivationCodeDeliveryError struct {
	Email c.Email
	Err   error
}

func (e *ActivationCodeDeliveryError) Error() string {
	return fmt.Sprintf("could not deliver activation code to %s: %v", e.Email, e.Err)
}

func (e *ActivationCodeDeliveryError) Unwrap() error {
	return e.Err
}
