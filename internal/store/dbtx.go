// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
)

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy this interface.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx begins a transaction, runs fn with a transactional handle, and then
// commits on success or rolls back on error/panic. Panics are rethrown.
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	err = fn(ctx, tx)
	return err
}

// Queries runs repository statements against a DBTX in a given dialect.
type Queries struct {
	db      DBTX
	dialect Dialect
}

// New returns Queries bound to db.
func New(db DBTX, dialect Dialect) *Queries {
	return &Queries{db: db, dialect: dialect}
}

// Dialect returns the SQL dialect the queries are written for.
func (q *Queries) Dialect() Dialect {
	return q.dialect
}

func (q *Queries) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return q.db.ExecContext(ctx, Rebind(q.dialect, query), args...)
}

func (q *Queries) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return q.db.QueryContext(ctx, Rebind(q.dialect, query), args...)
}

func (q *Queries) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return q.db.QueryRowContext(ctx, Rebind(q.dialect, query), args...)
}

// Store owns the connection pool and hands out Queries, either directly or
// scoped to a transaction.
type Store struct {
	*Queries
	db *sql.DB
}

// NewStore wraps db.
func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{Queries: New(db, dialect), db: db}
}

// Ping checks database connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// InTx runs fn with Queries bound to a single transaction.
func (s *Store) InTx(ctx context.Context, fn func(ctx context.Context, q *Queries) error) error {
	return WithTx(ctx, s.db, nil, func(ctx context.Context, tx DBTX) error {
		return fn(ctx, New(tx, s.dialect))
	})
}

// InReadTx runs fn in a read-only transaction so every statement sees the
// same snapshot. Postgres only keeps one snapshot per transaction from
// repeatable read upwards.
func (s *Store) InReadTx(ctx context.Context, fn func(ctx context.Context, q *Queries) error) error {
	opts := &sql.TxOptions{ReadOnly: true}
	if s.dialect == DialectPostgres {
		opts.Isolation = sql.LevelRepeatableRead
	}
	return WithTx(ctx, s.db, opts, func(ctx context.Context, tx DBTX) error {
		return fn(ctx, New(tx, s.dialect))
	})
}
