package phone

import (
	"errors"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is assumed when a number has no international prefix.
const DefaultRegion = "FR"

var ErrInvalid = errors.New("invalid phone number")

// Normalize validates the input and returns it in E.164 form.
func Normalize(raw string) (string, error) {
	return NormalizeRegion(raw, DefaultRegion)
}

// NormalizeRegion validates the input against the given region and returns
// it in E.164 form.
func NormalizeRegion(raw, region string) (string, error) {
	num, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", ErrInvalid
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalid
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
