// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"pandamarket/internal/common/pagination"
)

// SearchClauseBuilder builds the WHERE and ORDER BY fragments shared by
// a resource's COUNT and SELECT listing queries, so both always apply
// the same predicate. PostgreSQL-specific: ILIKE and $N placeholders.
type SearchClauseBuilder struct {
	// Columns the search keyword is matched against.
	SearchColumns []string
}

// escapeILIKE escapes LIKE metacharacters so a user keyword is matched
// literally, then wraps it in wildcards for substring search.
func escapeILIKE(keyword string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(keyword) + "%"
}

// BuildWhere returns the WHERE clause ("" when search is empty) and its
// arguments. Placeholders start at $1.
func (b SearchClauseBuilder) BuildWhere(search string) (clause string, args []any) {
	if search == "" {
		return "", nil
	}
	conditions := make([]string, 0, len(b.SearchColumns))
	for _, col := range b.SearchColumns {
		conditions = append(conditions, fmt.Sprintf("%s ILIKE $1", col))
	}
	return "WHERE " + strings.Join(conditions, " OR "), []any{escapeILIKE(search)}
}

// BuildOrder maps a sort selector onto an ORDER BY clause.
func (b SearchClauseBuilder) BuildOrder(sort pagination.Sort) string {
	if sort == pagination.SortRecent {
		return "ORDER BY created_at DESC, id DESC"
	}
	return "ORDER BY id ASC"
}
