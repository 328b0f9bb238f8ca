// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"strconv"
	"strings"
)

// Pagination limits.
const (
	DefaultPostLimit      = 10
	DefaultAdminPostLimit = 10
	DefaultContactLimit   = 20
	DefaultCaseStudyLimit = 12
	MaxLimit              = 100
)

// Clause is one node of a WHERE predicate. Column and table names inside a
// clause come from code constants; only values are bound as parameters.
type Clause interface {
	compile(b *strings.Builder, args *[]any)
}

// Eq matches rows where Column equals Value.
type Eq struct {
	Column string
	Value  any
}

func (c Eq) compile(b *strings.Builder, args *[]any) {
	b.WriteString(c.Column)
	b.WriteString(" = ?")
	*args = append(*args, c.Value)
}

// ExistsJoin matches owner rows that have at least one association, through
// JoinTable, to a Target row whose TargetKey equals Value. It is used for
// "post has category with slug X" style filters.
type ExistsJoin struct {
	JoinTable string // post_categories
	JoinFK    string // category_id
	OwnerFK   string // post_id
	OwnerID   string // p.id
	Target    string // categories
	TargetKey string // slug
	Value     any
}

func (c ExistsJoin) compile(b *strings.Builder, args *[]any) {
	b.WriteString("EXISTS (SELECT 1 FROM ")
	b.WriteString(c.JoinTable)
	b.WriteString(" j JOIN ")
	b.WriteString(c.Target)
	b.WriteString(" t ON t.id = j.")
	b.WriteString(c.JoinFK)
	b.WriteString(" WHERE j.")
	b.WriteString(c.OwnerFK)
	b.WriteString(" = ")
	b.WriteString(c.OwnerID)
	b.WriteString(" AND t.")
	b.WriteString(c.TargetKey)
	b.WriteString(" = ?)")
	*args = append(*args, c.Value)
}

// And is the conjunction of its clauses. An empty And is always true.
type And []Clause

func (c And) compile(b *strings.Builder, args *[]any) {
	if len(c) == 0 {
		b.WriteString("1=1")
		return
	}
	for i, clause := range c {
		if i > 0 {
			b.WriteString(" AND ")
		}
		if nested, ok := clause.(And); ok {
			b.WriteString("(")
			nested.compile(b, args)
			b.WriteString(")")
			continue
		}
		clause.compile(b, args)
	}
}

// Predicate is a compiled WHERE condition with its bound values.
type Predicate struct {
	SQL  string
	Args []any
}

// Compile turns a clause tree into predicate text with ? placeholders.
// A nil clause compiles to the always-true predicate.
func Compile(c Clause) Predicate {
	if c == nil {
		c = And{}
	}
	var b strings.Builder
	args := []any{}
	c.compile(&b, &args)
	return Predicate{SQL: b.String(), Args: args}
}

// ListQuery describes a filtered, paginated listing.
type ListQuery struct {
	Select   string // column list of the row query
	From     string // table expression shared by both statements
	Where    Clause
	OrderBy  string // recency column, sorted descending
	IDColumn string // tie-breaker, sorted descending
	Limit    int
	Offset   int
}

// Statement is query text plus its arguments.
type Statement struct {
	SQL  string
	Args []any
}

// ListStatements are the row and count statements of a ListQuery.
type ListStatements struct {
	Predicate Predicate
	Rows      Statement
	Count     Statement
}

// Build compiles the predicate once and uses it for both the row query and
// the count query, so the reported total always matches the filter.
func (lq ListQuery) Build(d Dialect) ListStatements {
	pred := Compile(lq.Where)

	var rows strings.Builder
	rows.WriteString("SELECT ")
	rows.WriteString(lq.Select)
	rows.WriteString(" FROM ")
	rows.WriteString(lq.From)
	rows.WriteString(" WHERE ")
	rows.WriteString(pred.SQL)
	rows.WriteString(" ORDER BY ")
	rows.WriteString(lq.OrderBy)
	rows.WriteString(" DESC")
	if lq.IDColumn != "" {
		rows.WriteString(", ")
		rows.WriteString(lq.IDColumn)
		rows.WriteString(" DESC")
	}
	rows.WriteString(" LIMIT ? OFFSET ?")

	rowArgs := make([]any, 0, len(pred.Args)+2)
	rowArgs = append(rowArgs, pred.Args...)
	rowArgs = append(rowArgs, lq.Limit, lq.Offset)

	countArgs := make([]any, len(pred.Args))
	copy(countArgs, pred.Args)

	return ListStatements{
		Predicate: pred,
		Rows: Statement{
			SQL:  Rebind(d, rows.String()),
			Args: rowArgs,
		},
		Count: Statement{
			SQL:  Rebind(d, "SELECT COUNT(*) FROM "+lq.From+" WHERE "+pred.SQL),
			Args: countArgs,
		},
	}
}

// Paginate applies the listing defaults: a non-positive limit becomes def,
// limits above MaxLimit are clamped and negative offsets become 0.
func Paginate(limit, offset, def int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// Rebind rewrites ? placeholders into the dialect's bind syntax. Queries in
// this package never contain ? inside string literals.
func Rebind(d Dialect, query string) string {
	if d != DialectPostgres || !strings.Contains(query, "?") {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// placeholders returns "?, ?, ?" for n values.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}

// setList accumulates the SET assignments of a partial update.
type setList struct {
	parts []string
	args  []any
}

func (s *setList) set(column string, value any) {
	s.parts = append(s.parts, column+" = ?")
	s.args = append(s.args, value)
}

func (s *setList) expr(assignment string, args ...any) {
	s.parts = append(s.parts, assignment)
	s.args = append(s.args, args...)
}

func (s *setList) String() string {
	return strings.Join(s.parts, ", ")
}
