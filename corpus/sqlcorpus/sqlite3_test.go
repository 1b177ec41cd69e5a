package sqlcorpus

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openMemDB opens a named in-memory sqlite3 database.
// NOTE: ":memory:" won't work, as it only persists for single connection.
// Use shared cache to share the database across all connections in
// this process.
// see https://github.com/mattn/go-sqlite3#faq
func openMemDB(t *testing.T, name string) *sql.DB {
	db, err := sql.Open("sqlite3", "file:"+name+"?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetConnMaxLifetime(-1)
	db.SetMaxIdleConns(2)
	return db
}

// Run our DB tests against an in-memory sqlite3 database.
func TestSqlite3(t *testing.T) {
	db := openMemDB(t, "sqlite3test")
	require.NoError(t, createSchema(db))

	ss, err := NewFromDB("sqlite3", db)
	require.NoError(t, err)
	defer ss.Close()

	performDBTests(t, ss)
}

func TestMissingSchema(t *testing.T) {
	db := openMemDB(t, "noschema")
	_, err := NewFromDB("sqlite3", db)
	assert.ErrorContains(t, err, "missing schema")
}

func TestNewWithEnv(t *testing.T) {
	t.Setenv("WORDTREND_DB", "")
	t.Setenv("WORDTREND_DRIVER", "")
	_, err := NewWithEnv("", "")
	assert.ErrorContains(t, err, "no database specified")
}
