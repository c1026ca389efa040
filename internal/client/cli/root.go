package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/credkeeper/internal/i18n"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	if !a.loggedIn {
		return fmt.Sprintf("(%s, logged out) ", a.userName)
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

// restore loads the persisted state: a logged-in identity skips the login
// prompt, otherwise the remembered pair (if any) prefills it. It reports
// whether a login prompt should follow.
func (a *App) restore(ctx context.Context) (bool, error) {
	id, err := a.authService.CurrentIdentity(ctx)
	if err != nil {
		return false, err
	}
	a.userName = id.Username
	a.loggedIn = id.IsLoggedIn
	if a.loggedIn {
		return false, nil
	}

	r, ok, err := a.rememberMe.Prefill(ctx)
	if err != nil {
		return false, err
	}
	if ok {
		a.remembered = r
	}
	return id.Username != "", nil
}

// Root restores the session and runs the REPL. It blocks until the user
// exits.
func (a *App) Root(ctx context.Context) error {
	a.println("Welcome to credkeeper (type 'help' for commands)")

	prompt, err := a.restore(ctx)
	if err != nil {
		a.log.Error(ctx, "local data not available", "error", err)
		return err
	}

	switch {
	case a.loggedIn:
		a.println(a.messages.TData(i18n.MsgLoginAlready, map[string]any{"Username": a.userName}))
	case prompt:
		if err := a.Login(ctx, a.remembered.Username != ""); err != nil {
			a.log.Warn(ctx, "login failed", "error", err)
		}
	default:
		a.println("No identity yet, type 'register' to create one.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}
