package appointment

import "errors"

var (
	ErrNotFound     = errors.New("appointment not found")
	ErrStatusFinal  = errors.New("appointment status is final")
	ErrNotAssigned  = errors.New("appointment is not assigned to this clinic")
	ErrNoQuoteFile  = errors.New("appointment has no clinic quote file")
	ErrInvalidPhone = errors.New("intake phone number is not valid")
)
