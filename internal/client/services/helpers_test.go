package services

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE metadata (
  namespace TEXT NOT NULL,
  key       TEXT NOT NULL,
  value     BLOB NOT NULL,
  PRIMARY KEY (namespace, key)
);`)
	require.NoError(t, err)
	return db
}

func getMeta(t *testing.T, db *sql.DB, ns, k string) (string, bool) {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM metadata WHERE namespace = ? AND key = ?`, ns, k).Scan(&v)
	if err == sql.ErrNoRows {
		return "", false
	}
	require.NoError(t, err)
	return string(v), true
}

func insertMeta(t *testing.T, db *sql.DB, ns, k, v string) {
	t.Helper()
	_, err := db.Exec(`INSERT INTO metadata(namespace, key, value) VALUES (?, ?, ?)`, ns, k, []byte(v))
	require.NoError(t, err)
}
