package cli

import (
	"errors"
	"regexp"
)

// The store deliberately performs no validation; these checks belong to the
// presentation layer.

var (
	errFieldsRequired = errors.New("all fields are required")
	errInvalidEmail   = errors.New("invalid email address")
)

// emailRe requires an '@' and a '.' with non-whitespace on each side.
var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// validateClientInput checks that every form field is filled in and the
// email matches the basic pattern. The birthdate format is checked
// separately by models.ParseDate.
func validateClientInput(name, email, phone, birthdate string) error {
	if name == "" || email == "" || phone == "" || birthdate == "" {
		return errFieldsRequired
	}
	if !emailRe.MatchString(email) {
		return errInvalidEmail
	}
	return nil
}
