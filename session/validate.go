package session

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type loginParams struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

type registrationParams struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Confirm  string `validate:"required,eqfield=Password"`
}

func validateLogin(username string, password string) error {
	params := loginParams{Username: username, Password: password}
	if err := validate.Struct(params); err != nil {
		return firstValidationError(err)
	}
	return nil
}

func validateRegistration(username string, email string, password string, confirm string) error {
	params := registrationParams{
		Username: username,
		Email:    email,
		Password: password,
		Confirm:  confirm,
	}
	if err := validate.Struct(params); err != nil {
		return firstValidationError(err)
	}
	return nil
}

// firstValidationError turns the first failed rule into a message fit for
// the form, so validation failures read like the backend's own errors.
func firstValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	fe := fieldErrors[0]
	switch {
	case fe.Field() == "Confirm" && fe.Tag() == "eqfield":
		return errors.New("passwords do not match")
	case fe.Tag() == "required":
		return fmt.Errorf("%s is required", fieldName(fe.Field()))
	case fe.Tag() == "email":
		return errors.New("email address is not valid")
	case fe.Tag() == "min":
		return fmt.Errorf("%s must be at least %s characters", fieldName(fe.Field()), fe.Param())
	case fe.Tag() == "max":
		return fmt.Errorf("%s must be at most %s characters", fieldName(fe.Field()), fe.Param())
	default:
		return fmt.Errorf("%s is invalid", fieldName(fe.Field()))
	}
}

func fieldName(field string) string {
	switch field {
	case "Username":
		return "username"
	case "Email":
		return "email"
	case "Password":
		return "password"
	case "Confirm":
		return "password confirmation"
	default:
		return field
	}
}
