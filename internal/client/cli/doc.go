// Package cli provides the interactive credkeeper command-line client.
//
// It wires configuration, the local SQLite database, the credential and
// remember-me services, and an interactive REPL. At start a logged-in
// identity is restored without prompting; otherwise the login prompt is
// prefilled from the remember-me record.
//
// Key features:
//   - Register with username policy, password rules, strength feedback and
//     confirmation
//   - Login / Logout, with optional "remember me"
//   - whoami and an ad-hoc strength meter
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, runREPL, and the i18n package for the messages shown.
package cli
