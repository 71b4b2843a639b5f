package payload

import (
	"regexp"

	"nextup/internal/core"

	"github.com/jellydator/validation"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required,
			validation.Length(3, 255),
			validation.Match(usernameRegex)),
		validation.Field(&r.Email,
			validation.Required,
			validation.Match(emailRegex)),
		validation.Field(&r.Password,
			validation.Required,
			validation.Length(7, 100)),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}

type LoginRequest struct {
	Username string `json:"username"` // username or email
	Password string `json:"password"`
}

func (l LoginRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Username, validation.Required),
		validation.Field(&l.Password, validation.Required),
	)
}

func (l LoginRequest) ToMessage() core.AuthMessage {
	return core.AuthMessage{
		Username: l.Username,
		Password: l.Password,
	}
}
