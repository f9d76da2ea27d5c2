// Package query builds parameterized SQL for the repositories.
//
// Values never enter the query text: every value passed to a Builder is
// appended to the bound-value list and referenced by a $n placeholder, and
// placeholders are numbered from that list when the query is rendered, so
// text and values cannot drift apart.
package query

import (
	"strconv"
	"strings"
)

// predicate is one filter fragment and the value bound to its placeholder.
type predicate struct {
	fragment string
	value    any
}

// Builder assembles a SELECT statement with PostgreSQL positional
// placeholders. The zero value is not usable; call New.
//
// A Builder only records what was asked of it. Build renders the text and
// the value list in one pass and can be called any number of times with
// identical results.
type Builder struct {
	base       string
	predicates []predicate
	groupBy    []string
	orderBy    []string
	limit      any
	hasLimit   bool
}

// New starts a query from its SELECT ... FROM ... [JOIN ...] part.
func New(base string) *Builder {
	return &Builder{base: strings.TrimSpace(base)}
}

// Where appends a predicate. fragment is the left-hand side and operator,
// e.g. "city LIKE" or "cost_per_night >="; the placeholder for value is
// appended to it. The first predicate is introduced by WHERE and the rest
// by AND.
func (b *Builder) Where(fragment string, value any) *Builder {
	b.predicates = append(b.predicates, predicate{
		fragment: strings.TrimSpace(fragment),
		value:    value,
	})
	return b
}

// GroupBy sets the GROUP BY columns.
func (b *Builder) GroupBy(columns ...string) *Builder {
	b.groupBy = columns
	return b
}

// OrderBy sets the ORDER BY expressions.
func (b *Builder) OrderBy(columns ...string) *Builder {
	b.orderBy = columns
	return b
}

// Limit binds the LIMIT value. It is always the last bound value,
// regardless of when Limit is called.
func (b *Builder) Limit(value any) *Builder {
	b.limit = value
	b.hasLimit = true
	return b
}

// Build renders the statement and its bound values.
func (b *Builder) Build() (string, []any) {
	args := make([]any, 0, len(b.predicates)+1)

	bind := func(value any) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	var sb strings.Builder
	sb.WriteString(b.base)

	for i, p := range b.predicates {
		if i == 0 {
			sb.WriteString("\nWHERE ")
		} else {
			sb.WriteString("\nAND ")
		}
		sb.WriteString(p.fragment)
		sb.WriteByte(' ')
		sb.WriteString(bind(p.value))
	}

	if len(b.groupBy) > 0 {
		sb.WriteString("\nGROUP BY ")
		sb.WriteString(strings.Join(b.groupBy, ", "))
	}

	if len(b.orderBy) > 0 {
		sb.WriteString("\nORDER BY ")
		sb.WriteString(strings.Join(b.orderBy, ", "))
	}

	if b.hasLimit {
		sb.WriteString("\nLIMIT ")
		sb.WriteString(bind(b.limit))
	}

	sb.WriteByte(';')

	return sb.String(), args
}
