package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/client/services"
	"github.com/dmitrijs2005/credkeeper/internal/common"
	"github.com/dmitrijs2005/credkeeper/internal/i18n"
	"github.com/dmitrijs2005/credkeeper/internal/validation"
)

// getSimpleText, getTextWithDefault and getPassword are indirections used
// to facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText      = GetSimpleText
	getTextWithDefault = GetTextWithDefault
	getPassword        = GetPassword
)

// Register runs the registration form: username, password with strength
// feedback, and confirmation. Form failures are reported to the user and
// return nil; only I/O and storage errors are returned.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}
	if userName == "" {
		a.println(a.messages.T(i18n.MsgUsernameEmpty))
		return nil
	}
	if !a.validator.IsValidUsername(userName) {
		a.println(a.messages.Username(a.validator.Policy()))
		return nil
	}

	password, err := getPassword(a.out, "Enter password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	a.printStrength(string(password))
	if !a.config.PermissiveRegistration {
		if r := a.validator.ValidatePassword(string(password)); r != validation.PasswordValid {
			a.println(a.messages.Password(r))
			return nil
		}
	}

	confirm, err := getPassword(a.out, "Confirm password: ")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirm)

	if !validation.DoPasswordsMatch(string(password), string(confirm)) {
		a.println(a.messages.T(i18n.MsgPasswordsMismatch))
		return nil
	}

	res, err := a.authService.Register(ctx, userName, string(password))
	a.println(a.messages.Registration(res))
	if err != nil {
		return err
	}

	if res == services.RegistrationSuccess {
		a.userName = userName
		a.loggedIn = true
	}
	return nil
}

// Login prompts for credentials, prefilled from the remember-me record, and
// authenticates against the stored identity. With remember set the pair is
// saved encrypted; without it any saved pair is removed.
//
// An empty password reuses the remembered one when the username matches.
func (a *App) Login(ctx context.Context, remember bool) error {
	if a.loggedIn {
		a.println(a.messages.TData(i18n.MsgLoginAlready, map[string]any{"Username": a.userName}))
		return nil
	}

	userName, err := getTextWithDefault(a.reader, "Enter username", a.remembered.Username, a.out)
	if err != nil {
		return err
	}

	prompt := "Enter password: "
	if a.remembered.Password != "" && userName == a.remembered.Username {
		prompt = "Enter password (empty to use remembered): "
	}
	password, err := getPassword(a.out, prompt)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	pw := string(password)
	if pw == "" && userName == a.remembered.Username {
		pw = a.remembered.Password
	}

	if !a.validator.IsLoginFormValid(userName, pw) {
		a.println(a.messages.T(i18n.MsgLoginInvalid))
		return nil
	}

	ok, err := a.authService.Login(ctx, userName, pw)
	if err != nil {
		a.println(a.messages.T(i18n.MsgLoginError))
		return err
	}
	if !ok {
		a.log.Info(ctx, "login rejected", "username", userName)
		a.println(a.messages.T(i18n.MsgLoginInvalid))
		return nil
	}

	a.userName = userName
	a.loggedIn = true
	a.println(a.messages.T(i18n.MsgLoginSuccess))

	if err := a.rememberMe.Apply(ctx, remember, userName, pw); err != nil {
		a.log.Warn(ctx, "remember-me not updated", "error", err)
		a.println(a.messages.T(i18n.MsgRememberError))
		return nil
	}
	if remember {
		a.remembered.Username, a.remembered.Password = userName, pw
	} else {
		a.remembered = services.Remembered{}
	}
	return nil
}

// Logout clears the logged-in flag. The identity and any remember-me
// record are kept.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.loggedIn = false
	a.println(a.messages.T(i18n.MsgLogoutSuccess))
	return nil
}

// WhoAmI prints the stored identity.
func (a *App) WhoAmI(ctx context.Context) error {
	id, err := a.authService.CurrentIdentity(ctx)
	if err != nil {
		return err
	}
	if id.Username == "" {
		a.println("No identity registered.")
		return nil
	}
	state := "logged out"
	if id.IsLoggedIn {
		state = "logged in"
	}
	a.println(fmt.Sprintf("%s (%s), %s", id.Username, id.ID, state))
	return nil
}
