package sqlcorpus

import "fmt"

// the scrapeomat schema version we know how to read
const schemaVer = 7

// checkSchema makes sure we're looking at an article database.
// We only ever read, so there's no schema creation or upgrading here.
func (ss *Store) checkSchema() error {
	ver, err := ss.schemaVersion()
	if err != nil {
		return err
	}
	if ver == 0 {
		return fmt.Errorf("missing schema (not an article database?)")
	}
	if ver != schemaVer {
		return fmt.Errorf("unsupported schema version %d (want %d)", ver, schemaVer)
	}
	return nil
}

func (ss *Store) schemaVersion() (int, error) {
	var v int
	err := ss.db.QueryRow(`SELECT MAX(ver) FROM version`).Scan(&v)
	if err != nil {
		// should distinguish between missing version table and other errors,
		// but hey.
		return 0, nil
	}
	return v, nil
}
