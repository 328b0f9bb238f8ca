package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name     string
		clause   Clause
		wantSQL  string
		wantArgs []any
	}{
		{"nil", nil, "1=1", []any{}},
		{"empty and", And{}, "1=1", []any{}},
		{"eq", Eq{Column: "p.status", Value: "published"}, "p.status = ?", []any{"published"}},
		{
			"exists join",
			ExistsJoin{JoinTable: "post_tags", JoinFK: "tag_id", OwnerFK: "post_id", OwnerID: "p.id", Target: "tags", TargetKey: "slug", Value: "go"},
			"EXISTS (SELECT 1 FROM post_tags j JOIN tags t ON t.id = j.tag_id WHERE j.post_id = p.id AND t.slug = ?)",
			[]any{"go"},
		},
		{
			"nested and",
			And{Eq{Column: "a", Value: 1}, And{Eq{Column: "b", Value: 2}, Eq{Column: "c", Value: 3}}},
			"a = ? AND (b = ? AND c = ?)",
			[]any{1, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compile(tt.clause)
			assert.Equal(t, tt.wantSQL, got.SQL)
			assert.Equal(t, tt.wantArgs, got.Args)
		})
	}
}

func TestCompile_ValuesAreNeverInterpolated(t *testing.T) {
	hostile := "x' OR '1'='1"
	pred := Compile(PostFilter{Status: hostile, Category: hostile, Tag: hostile}.Clause())

	assert.NotContains(t, pred.SQL, hostile)
	assert.Equal(t, []any{hostile, hostile, hostile}, pred.Args)
}

func TestListQuery_CountSharesPredicate(t *testing.T) {
	filters := []PostFilter{
		{},
		{Status: "published"},
		{Status: "published", Category: "seo"},
		{Category: "seo", Tag: "go", Limit: 5, Offset: 10},
	}
	for _, f := range filters {
		stmts := f.Query().Build(DialectSQLite)

		rowWhere := between(stmts.Rows.SQL, " WHERE ", " ORDER BY ")
		countWhere := stmts.Count.SQL[strings.Index(stmts.Count.SQL, " WHERE ")+len(" WHERE "):]

		assert.Equal(t, stmts.Predicate.SQL, rowWhere)
		assert.Equal(t, stmts.Predicate.SQL, countWhere)
		assert.Equal(t, stmts.Predicate.Args, stmts.Count.Args)
		assert.Equal(t, stmts.Predicate.Args, stmts.Rows.Args[:len(stmts.Rows.Args)-2])
		assert.Equal(t, []any{f.Limit, f.Offset}, stmts.Rows.Args[len(stmts.Rows.Args)-2:])
		assert.NotContains(t, stmts.Count.SQL, "ORDER BY")
		assert.NotContains(t, stmts.Count.SQL, "LIMIT")
	}
}

func TestListQuery_Build(t *testing.T) {
	lq := ContactFilter{Status: "new", Limit: 20, Offset: 40}.Query()
	stmts := lq.Build(DialectSQLite)

	assert.Equal(t,
		"SELECT "+contactColumns+" FROM contact_submissions WHERE status = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?",
		stmts.Rows.SQL)
	assert.Equal(t, "SELECT COUNT(*) FROM contact_submissions WHERE status = ?", stmts.Count.SQL)
	assert.Equal(t, []any{"new", 20, 40}, stmts.Rows.Args)
}

func TestListQuery_BuildPostgres(t *testing.T) {
	stmts := PostFilter{Status: "published", Tag: "go", Limit: 10}.Query().Build(DialectPostgres)

	assert.Contains(t, stmts.Rows.SQL, "p.status = $1")
	assert.Contains(t, stmts.Rows.SQL, "t.slug = $2)")
	assert.True(t, strings.HasSuffix(stmts.Rows.SQL, "LIMIT $3 OFFSET $4"), stmts.Rows.SQL)
	assert.NotContains(t, stmts.Rows.SQL, "?")
	assert.True(t, strings.HasSuffix(stmts.Count.SQL, "t.slug = $2)"), stmts.Count.SQL)
}

func TestRebind(t *testing.T) {
	q := "SELECT a FROM t WHERE a = ? AND b IN (?, ?)"
	assert.Equal(t, q, Rebind(DialectSQLite, q))
	assert.Equal(t, "SELECT a FROM t WHERE a = $1 AND b IN ($2, $3)", Rebind(DialectPostgres, q))
}

func TestPaginate(t *testing.T) {
	tests := []struct {
		limit, offset, def int
		wantLimit          int
		wantOffset         int
	}{
		{0, 0, 10, 10, 0},
		{-5, -1, 12, 12, 0},
		{25, 50, 10, 25, 50},
		{1000, 0, 20, MaxLimit, 0},
	}
	for _, tt := range tests {
		l, o := Paginate(tt.limit, tt.offset, tt.def)
		if l != tt.wantLimit || o != tt.wantOffset {
			t.Errorf("Paginate(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.limit, tt.offset, tt.def, l, o, tt.wantLimit, tt.wantOffset)
		}
	}
}

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "", placeholders(0))
	assert.Equal(t, "?", placeholders(1))
	assert.Equal(t, "?, ?, ?", placeholders(3))
}

func newQueriesWithMock(t *testing.T, d Dialect) (*Queries, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return New(db, d), mock, db
}

func TestListContacts_PostgresStatements(t *testing.T) {
	q, mock, db := newQueriesWithMock(t, DialectPostgres)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM contact_submissions WHERE status = \$1$`).
		WithArgs("closed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))
	mock.ExpectQuery(`^SELECT .+ FROM contact_submissions WHERE status = \$1 ORDER BY created_at DESC, id DESC LIMIT \$2 OFFSET \$3$`).
		WithArgs("closed", 2, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "company", "phone", "message", "status", "created_at"}).
			AddRow(int64(3), "Ann", "ann@example.com", "", "", "hi", "closed", now))

	items, total, err := q.ListContacts(context.Background(), ContactFilter{Status: "closed", Limit: 2, Offset: 4})
	require.NoError(t, err)
	assert.EqualValues(t, 7, total)
	require.Len(t, items, 1)
	assert.Equal(t, "ann@example.com", items[0].Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInReadTx_CountAndRowsShareTransaction(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	s := NewStore(db, DialectPostgres)

	now := time.Now().UTC()
	mock.ExpectBegin()
	mock.ExpectQuery(`^SELECT COUNT\(\*\) FROM contact_submissions WHERE 1=1$`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`^SELECT .+ FROM contact_submissions WHERE 1=1 ORDER BY created_at DESC, id DESC LIMIT \$1 OFFSET \$2$`).
		WithArgs(20, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "company", "phone", "message", "status", "created_at"}).
			AddRow(int64(1), "Ann", "ann@example.com", "", "", "hi", "new", now))
	mock.ExpectCommit()

	var (
		items []model.ContactSubmission
		total int64
	)
	err = s.InReadTx(context.Background(), func(ctx context.Context, q *Queries) error {
		var err error
		items, total, err = q.ListContacts(ctx, ContactFilter{Limit: 20})
		return err
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, items, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInReadTx_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()
	s := NewStore(db, DialectSQLite)

	mock.ExpectBegin()
	mock.ExpectQuery(`^SELECT COUNT`).WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err = s.InReadTx(context.Background(), func(ctx context.Context, q *Queries) error {
		_, _, err := q.ListContacts(ctx, ContactFilter{Limit: 20})
		return err
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counting contacts")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePost_StatementShape(t *testing.T) {
	q, mock, db := newQueriesWithMock(t, DialectPostgres)
	defer db.Close()

	now := time.Now().UTC()
	title := "T"
	status := "published"

	pattern := `^UPDATE posts SET title = \$1, status = \$2, published_at = COALESCE\(published_at, \$3\), updated_at = \$4 WHERE id = \$5$`
	mock.ExpectExec(pattern).
		WithArgs(title, status, now, now, int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := q.UpdatePost(context.Background(), 9, UpdatePostParams{Title: &title, Status: &status, UpdatedAt: now})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAttachPostRelations_SingleBatchQuery(t *testing.T) {
	q, mock, db := newQueriesWithMock(t, DialectSQLite)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`(?s)FROM post_categories pc.+WHERE pc\.post_id IN \(\?, \?\).+ORDER BY c\.name ASC, c\.id ASC`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "id", "name", "slug", "description", "created_at"}).
			AddRow(int64(2), int64(10), "SEO", "seo", "", now))
	mock.ExpectQuery(`(?s)FROM post_tags pt.+WHERE pt\.post_id IN \(\?, \?\).+ORDER BY t\.name ASC, t\.id ASC`).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"post_id", "id", "name", "slug", "created_at"}))

	posts := make([]model.Post, 2)
	posts[0].ID, posts[1].ID = 1, 2
	require.NoError(t, q.AttachPostRelations(context.Background(), posts))

	assert.NotNil(t, posts[0].Categories)
	assert.Empty(t, posts[0].Categories)
	require.Len(t, posts[1].Categories, 1)
	assert.Equal(t, "seo", posts[1].Categories[0].Slug)
	assert.NotNil(t, posts[1].Tags)
	require.NoError(t, mock.ExpectationsWereMet())
}

func between(s, start, end string) string {
	i := strings.Index(s, start)
	j := strings.Index(s, end)
	if i < 0 || j < 0 || j < i {
		return ""
	}
	return s[i+len(start) : j]
}
