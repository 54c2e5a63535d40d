package services

import "errors"

var (
	// ErrForbidden is returned when the authenticated principal does not
	// match the email or owner a request is scoped to. The check always
	// runs before any storage read.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials is returned for a failed login. Deliberately
	// does not say whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
