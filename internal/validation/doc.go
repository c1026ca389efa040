// Package validation implements the pure form rules used by the register and
// login screens: username shape, password requirements, and the combined
// submit gates.
//
// All functions are total. Failures are reported as values (bool or
// PasswordResult), never as errors, so callers can map each outcome to a
// single user-facing message.
package validation
