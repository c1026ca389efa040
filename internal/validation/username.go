package validation

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"
)

// UsernamePolicy decides whether a username has an acceptable shape.
type UsernamePolicy interface {
	Name() string
	Valid(username string) bool
}

const (
	PolicyPermissive = "permissive"
	PolicyStrict     = "strict"
)

const (
	MinUsernameLength       = 3
	MaxStrictUsernameLength = 40
)

// PermissivePolicy accepts at least three letters or digits.
type PermissivePolicy struct{}

func (PermissivePolicy) Name() string { return PolicyPermissive }

func (PermissivePolicy) Valid(username string) bool {
	if utf8.RuneCountInString(username) < MinUsernameLength {
		return false
	}
	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

var strictUsernameRe = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// StrictPolicy accepts 3 to 40 ASCII letters, digits, dots, underscores or dashes.
type StrictPolicy struct{}

func (StrictPolicy) Name() string { return PolicyStrict }

func (StrictPolicy) Valid(username string) bool {
	n := len(username)
	if n < MinUsernameLength || n > MaxStrictUsernameLength {
		return false
	}
	return strictUsernameRe.MatchString(username)
}

// PolicyByName resolves a configured policy name. An empty name selects the
// strict policy.
func PolicyByName(name string) (UsernamePolicy, error) {
	switch name {
	case "", PolicyStrict:
		return StrictPolicy{}, nil
	case PolicyPermissive:
		return PermissivePolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown username policy %q", name)
	}
}
