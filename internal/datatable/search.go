package datatable

import (
	"strings"
	"unicode"
)

// searchTerms splits a query on whitespace. A double-quoted phrase stays one
// term; an unterminated quote runs to the end of the query.
func searchTerms(query string) []string {
	var (
		terms  []string
		term   strings.Builder
		quoted bool
	)
	flush := func() {
		if term.Len() > 0 {
			terms = append(terms, term.String())
			term.Reset()
		}
	}

	for _, r := range query {
		switch {
		case r == '"':
			flush()
			quoted = !quoted
		case unicode.IsSpace(r) && !quoted:
			flush()
		default:
			term.WriteRune(r)
		}
	}
	flush()
	return terms
}

// matchRow reports whether every term is a substring of at least one cell.
// Both sides are expected to be case folded already.
func matchRow(cells, terms []string) bool {
	for _, term := range terms {
		found := false
		for _, cell := range cells {
			if strings.Contains(cell, term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
