// File: internal/twofactor/model.go
package twofactor

import "regexp"

// Enrollment states, persisted per session.
const (
	StateDisabled      = "disabled"
	StateCodeRequested = "code_requested"
	StateVerifying     = "verifying"
	StateEnabled       = "enabled"
)

// turkishMobile matches Turkish mobile numbers: optional +90 or 0 prefix,
// then a 5 and nine more digits.
var turkishMobile = regexp.MustCompile(`^(\+90|0)?5\d{9}$`)

// sixDigitCode matches the SMS verification code format.
var sixDigitCode = regexp.MustCompile(`^\d{6}$`)

// ValidPhone reports whether phone is an acceptable Turkish mobile number.
func ValidPhone(phone string) bool {
	return turkishMobile.MatchString(phone)
}

// ValidCode reports whether code has the expected six-digit format. This is a
// format gate only; the upstream decides whether the code is correct.
func ValidCode(code string) bool {
	return sixDigitCode.MatchString(code)
}

// Status is the two-factor screen view model.
type Status struct {
	Enabled bool   `json:"enabled"`
	State   string `json:"state"`
	Phone   string `json:"phone,omitempty"`
}

// RequestCodeInput carries the phone number to enroll.
type RequestCodeInput struct {
	Phone string `json:"phone" binding:"required"`
}

// VerifyInput carries the SMS code.
type VerifyInput struct {
	Code string `json:"code" binding:"required"`
}

// DisableInput requires an explicit confirmation before turning 2FA off.
type DisableInput struct {
	Confirm bool `json:"confirm"`
}
