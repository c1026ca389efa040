// Package logging defines the structured-logging interface used by the
// credkeeper services, with an slog-backed implementation.
//
// Usernames may be logged. Passwords and ciphertexts never are.
package logging

import "context"

// Logger is a context-aware, structured logger. args are key/value pairs:
//
//	log.Info(ctx, "login succeeded", "username", username)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	// Warn is for conditions the user can recover from, such as a discarded
	// remember-me record.
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that adds args to every record.
	With(args ...any) Logger
}
