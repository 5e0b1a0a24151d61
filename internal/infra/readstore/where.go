package readstore

import (
	"strconv"
	"strings"
)

// where accumulates positional-argument predicates for list queries.
type where struct {
	clauses []string
	args    []any
}

// arg registers v and returns its placeholder.
func (w *where) arg(v any) string {
	w.args = append(w.args, v)
	return "$" + strconv.Itoa(len(w.args))
}

func (w *where) add(clause string) {
	w.clauses = append(w.clauses, clause)
}

// search matches the term case-insensitively against any of the columns.
func (w *where) search(term string, columns ...string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}
	p := w.arg("%" + term + "%")
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = c + " ILIKE " + p
	}
	w.add("(" + strings.Join(parts, " OR ") + ")")
}

func (w *where) String() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

func (w *where) limit(n int) string {
	if n <= 0 {
		return ""
	}
	return " LIMIT " + w.arg(n)
}
