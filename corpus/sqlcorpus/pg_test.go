package sqlcorpus

import (
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
)

// TestPostgres runs the corpus tests against a postgresql database.
// It requires a test database with the scrapeomat schema already loaded.
// The connection string should be in envvar WORDTREND_PGTEST.
// If it is not set, the postgres testing is skippped.
//
// eg:
//    $ export WORDTREND_PGTEST="user=timmytestfish dbname=scrapetest host=/var/run/postgresql sslmode=disable"
//    $ go test
func TestPostgres(t *testing.T) {

	connStr := os.Getenv("WORDTREND_PGTEST")
	if connStr == "" {
		t.Skip("WORDTREND_PGTEST not set - skipping postgresql tests")
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err.Error())
	}

	// Make sure we don't accidentally screw up real data!
	var cnt int
	err = db.QueryRow("SELECT COUNT(*) FROM article").Scan(&cnt)
	if err != nil {
		t.Fatal(err.Error())
	}
	if cnt > 0 {
		t.Fatal("Database already contains articles - refusing to clobber.")
	}

	ss, err := NewFromDB("postgres", db)
	if err != nil {
		t.Fatal(err.Error())
	}

	// clear out db when we're done.
	defer func() {
		_, err = db.Exec("DELETE FROM article")
		if err != nil {
			t.Error(err.Error())
		}
		_, err = db.Exec("DELETE FROM publication")
		if err != nil {
			t.Error(err.Error())
		}
		ss.Close()
	}()

	performDBTests(t, ss)
}
