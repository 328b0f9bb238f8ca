// Copyright (c) 2026 Sumit9819
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/Sumit9819/digital-marketing-cms/internal/model"
)

const contactColumns = "id, name, email, company, phone, message, status, created_at"

// ContactFilter selects contact submissions for the admin listing.
type ContactFilter struct {
	Status string
	Limit  int
	Offset int
}

// Query returns the ListQuery for f.
func (f ContactFilter) Query() ListQuery {
	where := And{}
	if f.Status != "" {
		where = append(where, Eq{Column: "status", Value: f.Status})
	}
	return ListQuery{
		Select:   contactColumns,
		From:     "contact_submissions",
		Where:    where,
		OrderBy:  "created_at",
		IDColumn: "id",
		Limit:    f.Limit,
		Offset:   f.Offset,
	}
}

// CreateContactParams holds a new contact submission.
type CreateContactParams struct {
	Name      string
	Email     string
	Company   string
	Phone     string
	Message   string
	CreatedAt time.Time
}

// CreateContact stores a submission with status new.
func (q *Queries) CreateContact(ctx context.Context, arg CreateContactParams) (*model.ContactSubmission, error) {
	c := model.ContactSubmission{
		Name:      arg.Name,
		Email:     arg.Email,
		Company:   arg.Company,
		Phone:     arg.Phone,
		Message:   arg.Message,
		Status:    model.ContactStatusNew,
		CreatedAt: arg.CreatedAt,
	}
	err := q.queryRow(ctx,
		`INSERT INTO contact_submissions (name, email, company, phone, message, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 RETURNING id`,
		c.Name, c.Email, c.Company, c.Phone, c.Message, c.Status, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		return nil, insertError("contact submission", err)
	}
	return &c, nil
}

// ListContacts returns one page of submissions, newest first, and the total.
func (q *Queries) ListContacts(ctx context.Context, f ContactFilter) ([]model.ContactSubmission, int64, error) {
	stmts := f.Query().Build(q.dialect)

	var total int64
	if err := q.db.QueryRowContext(ctx, stmts.Count.SQL, stmts.Count.Args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting contacts: %w", err)
	}

	rows, err := q.db.QueryContext(ctx, stmts.Rows.SQL, stmts.Rows.Args...)
	if err != nil {
		return nil, 0, fmt.Errorf("listing contacts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	items := []model.ContactSubmission{}
	for rows.Next() {
		var c model.ContactSubmission
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Company, &c.Phone, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning contact: %w", err)
		}
		items = append(items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterating contacts: %w", err)
	}
	return items, total, nil
}

// UpdateContactStatus sets the status of a submission.
func (q *Queries) UpdateContactStatus(ctx context.Context, id int64, status string) error {
	res, err := q.exec(ctx, `UPDATE contact_submissions SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating contact %d: %w", id, err)
	}
	return requireAffected(res, "contact submission not found")
}
