package response

import (
	"time"
	"verimail/internal/core/domain/user"
)

type User struct {
	ID          int64      `json:"id"`
	Email       *string    `json:"email,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ActivatedAt *time.Time `json:"activated_at,omitempty"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	if du.Email.IsPresent {
		email := string(du.Email.Value)
		u.Email = &email
	}
	u.CreatedAt = du.CreatedAt
	if du.ActivatedAt.IsPresent {
		u.ActivatedAt = &du.ActivatedAt.Value
	}
}
