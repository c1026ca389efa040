package validation

import (
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

// PasswordResult is the outcome of ValidatePassword.
type PasswordResult int

const (
	PasswordValid PasswordResult = iota
	PasswordEmpty
	PasswordTooShort
	PasswordNoUppercase
	PasswordNoDigit
	PasswordNoSpecialChar
)

var passwordResultNames = map[PasswordResult]string{
	PasswordValid:         "VALID",
	PasswordEmpty:         "EMPTY",
	PasswordTooShort:      "TOO_SHORT",
	PasswordNoUppercase:   "NO_UPPERCASE",
	PasswordNoDigit:       "NO_DIGIT",
	PasswordNoSpecialChar: "NO_SPECIAL_CHAR",
}

func (r PasswordResult) String() string {
	if s, ok := passwordResultNames[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// ValidatePassword reports the first rule the password breaks.
//
// Checks run in a fixed order: empty, minimum length, uppercase letter,
// digit, and finally a character that is neither a letter nor a digit.
// A password that is both too short and missing a digit reports
// PasswordTooShort.
func ValidatePassword(password string) PasswordResult {
	switch {
	case password == "":
		return PasswordEmpty
	case utf8.RuneCountInString(password) < MinPasswordLength:
		return PasswordTooShort
	case !containsRune(password, unicode.IsUpper):
		return PasswordNoUppercase
	case !containsRune(password, unicode.IsDigit):
		return PasswordNoDigit
	case !containsRune(password, isSpecial):
		return PasswordNoSpecialChar
	}
	return PasswordValid
}

// DoPasswordsMatch is exact string equality.
func DoPasswordsMatch(password, confirm string) bool {
	return password == confirm
}

func isSpecial(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

func containsRune(s string, pred func(rune) bool) bool {
	for _, r := range s {
		if pred(r) {
			return true
		}
	}
	return false
}
