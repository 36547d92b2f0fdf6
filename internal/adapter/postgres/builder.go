package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Psql is the statement builder shared by all repositories.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ILike builds a case-insensitive OR match of term over the given columns.
// An empty term yields nil so callers can skip the clause.
func ILike(term string, columns ...string) sq.Sqlizer {
	term = strings.TrimSpace(term)
	if term == "" || len(columns) == 0 {
		return nil
	}
	pattern := "%" + escapeLike(term) + "%"
	or := make(sq.Or, 0, len(columns))
	for _, c := range columns {
		or = append(or, sq.ILike{c: pattern})
	}
	return or
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
