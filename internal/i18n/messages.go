package i18n

import (
	"github.com/dmitrijs2005/credkeeper/internal/client/services"
	"github.com/dmitrijs2005/credkeeper/internal/strength"
	"github.com/dmitrijs2005/credkeeper/internal/validation"
)

const (
	MsgUsernameEmpty             = "username.empty"
	MsgUsernameInvalid           = "username.invalid"
	MsgUsernameInvalidPermissive = "username.invalid_permissive"
	MsgPasswordsMismatch         = "passwords.mismatch"
	MsgLoginSuccess              = "login.success"
	MsgLoginInvalid              = "login.invalid"
	MsgLoginError                = "login.error"
	MsgLoginAlready              = "login.already"
	MsgLogoutSuccess             = "logout.success"
	MsgRememberError             = "remember.error"
)

var passwordMessageIDs = map[validation.PasswordResult]string{
	validation.PasswordValid:         "password.valid",
	validation.PasswordEmpty:         "password.empty",
	validation.PasswordTooShort:      "password.too_short",
	validation.PasswordNoUppercase:   "password.no_uppercase",
	validation.PasswordNoDigit:       "password.no_digit",
	validation.PasswordNoSpecialChar: "password.no_special_char",
}

var registrationMessageIDs = map[services.RegistrationResult]string{
	services.RegistrationSuccess:         "register.success",
	services.RegistrationEmptyUsername:   MsgUsernameEmpty,
	services.RegistrationUsernameExists:  "username.exists",
	services.RegistrationError:           "register.error",
	services.RegistrationInvalidPassword: "register.invalid_password",
}

// PasswordMessageID returns the message id for a password check result.
func PasswordMessageID(r validation.PasswordResult) string {
	return passwordMessageIDs[r]
}

// RegistrationMessageID returns the message id for a registration result.
func RegistrationMessageID(r services.RegistrationResult) string {
	return registrationMessageIDs[r]
}

// Password renders the message for a password check result.
func (c *Catalog) Password(r validation.PasswordResult) string {
	return c.TData(PasswordMessageID(r), map[string]any{"Min": validation.MinPasswordLength})
}

// Registration renders the message for a registration result.
func (c *Catalog) Registration(r services.RegistrationResult) string {
	return c.T(RegistrationMessageID(r))
}

// Username renders the shape rule of the policy in force.
func (c *Catalog) Username(policy validation.UsernamePolicy) string {
	if policy.Name() == validation.PolicyPermissive {
		return c.TData(MsgUsernameInvalidPermissive, map[string]any{"Min": validation.MinUsernameLength})
	}
	return c.TData(MsgUsernameInvalid, map[string]any{
		"Min": validation.MinUsernameLength,
		"Max": validation.MaxStrictUsernameLength,
	})
}

// Strength renders a strength label.
func (c *Catalog) Strength(l strength.Label) string {
	return c.T("strength." + string(l))
}
