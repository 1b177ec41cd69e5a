package sqlcorpus

import (
	"fmt"
	"strings"
	"time"
)

// Filter picks out which articles to use as the corpus.
type Filter struct {
	// date ranges are [from,to)
	PubFrom time.Time
	PubTo   time.Time
	// if empty, accept all publications (else only ones in list)
	PubCodes []string
	// exclude any publications in XPubCodes
	XPubCodes []string
}

// Describe returns a concise description of the filter for logging
func (filt *Filter) Describe() string {
	s := "[ "

	if !filt.PubFrom.IsZero() && !filt.PubTo.IsZero() {
		s += fmt.Sprintf("pub %s..%s ", filt.PubFrom.Format(time.RFC3339), filt.PubTo.Format(time.RFC3339))
	} else if !filt.PubFrom.IsZero() {
		s += fmt.Sprintf("pub %s.. ", filt.PubFrom.Format(time.RFC3339))
	} else if !filt.PubTo.IsZero() {
		s += fmt.Sprintf("pub ..%s ", filt.PubTo.Format(time.RFC3339))
	}

	if len(filt.PubCodes) > 0 {
		s += strings.Join(filt.PubCodes, "|") + " "
	}

	if len(filt.XPubCodes) > 0 {
		foo := make([]string, len(filt.XPubCodes))
		for i, x := range filt.XPubCodes {
			foo[i] = "!" + x
		}
		s += strings.Join(foo, "|") + " "
	}

	s += "]"
	return s
}

// buildWhere turns a filter into WHERE clause fragments and their params.
// Articles without a publication date are always excluded.
func buildWhere(filt *Filter) ([]string, []interface{}) {
	params := []interface{}{}
	frags := []string{"a.published IS NOT NULL"}

	if !filt.PubFrom.IsZero() {
		frags = append(frags, "a.published>=?")
		params = append(params, filt.PubFrom)
	}
	if !filt.PubTo.IsZero() {
		frags = append(frags, "a.published<?")
		params = append(params, filt.PubTo)
	}

	if len(filt.PubCodes) > 0 {
		marks := make([]string, len(filt.PubCodes))
		for i, code := range filt.PubCodes {
			marks[i] = "?"
			params = append(params, code)
		}
		frags = append(frags, "p.code IN ("+strings.Join(marks, ",")+")")
	}

	if len(filt.XPubCodes) > 0 {
		marks := make([]string, len(filt.XPubCodes))
		for i, code := range filt.XPubCodes {
			marks[i] = "?"
			params = append(params, code)
		}
		frags = append(frags, "p.code NOT IN ("+strings.Join(marks, ",")+")")
	}

	return frags, params
}

func whereClause(frags []string) string {
	if len(frags) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(frags, " AND ")
}
