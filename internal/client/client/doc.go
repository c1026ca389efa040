// Package client bootstraps local persistence for credkeeper.
//
// InitDatabase opens (or creates) the SQLite file, enables full synchronous
// commits so a returned write survives a crash, and applies the embedded
// goose migrations. The resulting *sql.DB backs every metadata namespace.
//
// # Error Handling
//
// ErrLocalDataNotAvailable reports that the database could not be opened or
// migrated; callers can match it with errors.Is.
package client
