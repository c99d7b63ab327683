package user

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("current password is incorrect")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrInvalidPhone       = errors.New("invalid phone number for the specified region")
	ErrInvalidRole        = errors.New("unknown role")
	ErrEmailAlreadyExists = errors.New("email address is already in use")
	ErrClinicNameRequired = errors.New("clinic accounts need a clinic name")
	ErrLastRole           = errors.New("cannot revoke the user's last role")
)
