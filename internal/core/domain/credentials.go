package domain

import "github.com/go-playground/validator/v10"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Credentials authenticate the local user against the calling service.
type Credentials struct {
	APIKey string `validate:"required"`
	UserID string `validate:"required"`
	Token  string `validate:"required"`
}

func (c Credentials) Validate() error {
	if err := validate.Struct(c); err != nil {
		return invalidInput("credentials", err)
	}
	return nil
}
