// Package sqlcorpus reads a keyword-counting corpus out of a scrapeomat
// article database (sqlite3 or postgres).
package sqlcorpus

import (
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bcampbell/wordtrend/corpus"
	"github.com/bcampbell/wordtrend/trend"
)

type Logger interface {
	Printf(format string, v ...interface{})
}

type nullLogger struct{}

func (l nullLogger) Printf(format string, v ...interface{}) {
}

// Store provides read access to articles in an SQL database
type Store struct {
	db         *sql.DB
	driverName string

	// Loc is the timezone used to decide which day an article belongs to.
	Loc *time.Location
	// StripHTML extracts plain text from article content before it is
	// handed out, so markup never matches a keyword.
	StripHTML bool
	// Filter restricts which articles Entries() returns.
	Filter Filter

	ErrLog   Logger
	DebugLog Logger
}

var _ corpus.Source = (*Store)(nil)

// eg "postgres", "postgres://username@localhost/dbname"
// eg "sqlite3", "/tmp/foo.db"
func New(driver string, connStr string) (*Store, error) {
	db, err := sql.Open(driver, connStr)
	if err != nil {
		return nil, err
	}
	return NewFromDB(driver, db)
}

func NewFromDB(driver string, db *sql.DB) (*Store, error) {
	err := db.Ping()
	if err != nil {
		db.Close()
		return nil, err
	}

	ss := Store{
		db:         db,
		driverName: driver,
		Loc:        time.UTC,
		ErrLog:     nullLogger{},
		DebugLog:   nullLogger{},
	}

	err = ss.checkSchema()
	if err != nil {
		db.Close()
		return nil, err
	}

	return &ss, nil
}

// Same as New(), but if driver or connStr is missing, will try and read them
// from environment vars: WORDTREND_DRIVER & WORDTREND_DB.
// If both driver and WORDTREND_DRIVER are empty, default is "sqlite3".
func NewWithEnv(driver string, connStr string) (*Store, error) {
	if connStr == "" {
		connStr = os.Getenv("WORDTREND_DB")
	}
	if driver == "" {
		driver = os.Getenv("WORDTREND_DRIVER")
		if driver == "" {
			driver = "sqlite3"
		}
	}

	if connStr == "" {
		return nil, fmt.Errorf("no database specified (set WORDTREND_DB?)")
	}

	return New(driver, connStr)
}

func (ss *Store) Close() {
	if ss.db != nil {
		ss.db.Close()
		ss.db = nil
	}
}

func (ss *Store) rebind(q string) string {
	return rebind(bindType(ss.driverName), q)
}

func (ss *Store) isPostgres() bool {
	return bindType(ss.driverName) == DOLLAR
}

// Entries returns every article matching ss.Filter as a corpus entry.
func (ss *Store) Entries() ([]trend.Entry, error) {
	it := ss.Fetch(&ss.Filter)
	defer it.Close()

	out := []trend.Entry{}
	for it.Next() {
		out = append(out, *it.Entry())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	ss.DebugLog.Printf("entries: %d from %s\n", len(out), ss.Filter.Describe())
	return out, nil
}

// EntryIter steps through articles returned by Fetch().
type EntryIter struct {
	rows    *sql.Rows
	ss      *Store
	current *trend.Entry
	err     error
}

// Fetch starts a query for articles matching filt.
// The caller should Close() the returned iterator when done.
func (ss *Store) Fetch(filt *Filter) *EntryIter {
	frags, params := buildWhere(filt)

	q := `SELECT a.published, a.content
	           FROM (article a INNER JOIN publication p ON a.publication_id=p.id)
	           ` + whereClause(frags) + ` ORDER BY a.id`

	ss.DebugLog.Printf("fetch: %s\n", q)
	ss.DebugLog.Printf("fetch params: %+v\n", params)

	rows, err := ss.db.Query(ss.rebind(q), params...)
	return &EntryIter{ss: ss, rows: rows, err: err}
}

func (it *EntryIter) Close() error {
	// may not even have got as far as initing rows!
	var err error
	if it.rows != nil {
		err = it.rows.Close()
		it.rows = nil
	}
	return err
}

func (it *EntryIter) Err() error {
	return it.err
}

// if it returns true there will be an entry.
func (it *EntryIter) Next() bool {
	it.current = nil
	if it.err != nil || it.rows == nil {
		return false
	}

	for it.rows.Next() {
		var published sql.NullTime
		var content string
		if err := it.rows.Scan(&published, &content); err != nil {
			it.err = err
			return false
		}
		if !published.Valid {
			// shouldn't happen - query excludes them
			it.ss.DebugLog.Printf("skipping undated article\n")
			continue
		}

		if it.ss.StripHTML {
			content = corpus.HTMLToText(content)
		}
		it.current = &trend.Entry{
			Content:     content,
			PublishDate: published.Time.In(it.ss.Loc).Format("20060102"),
		}
		return true
	}

	it.err = it.rows.Err()
	return false
}

func (it *EntryIter) Entry() *trend.Entry {
	return it.current
}

// CountWordByDay counts matching articles per day inside the database,
// rather than pulling every article out. Matching is a case-sensitive
// substring test against the raw stored content (StripHTML and Loc don't
// apply: days are UTC on sqlite and session timezone on postgres).
func (ss *Store) CountWordByDay(word string, filt *Filter) (trend.DayCounts, error) {
	frags, params := buildWhere(filt)

	var dayExpr string
	if ss.isPostgres() {
		dayExpr = `to_char(a.published, 'YYYYMMDD')`
		frags = append(frags, "strpos(a.content, ?) > 0")
	} else {
		dayExpr = `strftime('%Y%m%d', a.published)`
		frags = append(frags, "instr(a.content, ?) > 0")
	}
	params = append(params, word)

	q := `SELECT ` + dayExpr + ` AS day, COUNT(*)
	    FROM (article a INNER JOIN publication p ON a.publication_id=p.id) ` +
		whereClause(frags) + ` GROUP BY day`

	ss.DebugLog.Printf("count: %s\n", q)
	ss.DebugLog.Printf("count params: %+v\n", params)

	rows, err := ss.db.Query(ss.rebind(q), params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := trend.DayCounts{}
	for rows.Next() {
		var day sql.NullString
		var cnt int
		if err := rows.Scan(&day, &cnt); err != nil {
			return nil, err
		}
		if !day.Valid || len(strings.TrimSpace(day.String)) != 8 {
			ss.ErrLog.Printf("count: bad day %q (%d articles)\n", day.String, cnt)
			continue
		}
		out[day.String] += cnt
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ss.DebugLog.Printf("count out: %d days\n", len(out))
	return out, nil
}
