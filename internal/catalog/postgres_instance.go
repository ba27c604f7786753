package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const instanceSelect = `
	SELECT bi.id, bi.book_id, bi.imprint, bi.due_back, bi.status, COALESCE(b.title, '')
	FROM book_instances bi
	LEFT JOIN books b ON b.id = bi.book_id`

func scanInstance(row pgx.Row) (BookInstance, error) {
	var (
		bi     BookInstance
		due    *time.Time
		status string
	)
	if err := row.Scan(&bi.ID, &bi.BookID, &bi.Imprint, &due, &status, &bi.BookTitle); err != nil {
		return BookInstance{}, err
	}
	bi.DueBack = toDate(due)
	bi.Status = LoanStatus(status)
	return bi, nil
}

func (r *PostgresRepo) CreateInstance(ctx context.Context, bi *BookInstance) error {
	const query = `
		INSERT INTO book_instances (id, book_id, imprint, due_back, status)
		VALUES ($1, $2, $3, $4, $5)`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query, bi.ID, bi.BookID, bi.Imprint, dateArg(bi.DueBack), string(bi.Status))
	if err != nil {
		return fmt.Errorf("insert book instance: %w", mapErr(err))
	}
	return nil
}

func (r *PostgresRepo) GetInstance(ctx context.Context, id uuid.UUID) (BookInstance, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	bi, err := scanInstance(r.db.QueryRow(timeoutCtx, instanceSelect+` WHERE bi.id = $1`, id))
	if err != nil {
		return BookInstance{}, mapErr(err)
	}
	return bi, nil
}

// ListInstances orders copies by due date, copies without one first.
func (r *PostgresRepo) ListInstances(ctx context.Context, q InstanceQuery) ([]BookInstance, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.BookID != nil {
		clauses = append(clauses, fmt.Sprintf("bi.book_id = $%d", argn))
		args = append(args, *q.BookID)
		argn++
	}

	if q.Status != "" {
		clauses = append(clauses, fmt.Sprintf("bi.status = $%d", argn))
		args = append(args, string(q.Status))
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	total, err := r.count(ctx, "SELECT COUNT(*) FROM book_instances bi "+where, args...)
	if err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`%s
		%s
		ORDER BY bi.due_back ASC NULLS FIRST, bi.id
		LIMIT $%d OFFSET $%d`,
		instanceSelect, where, argn, argn+1)

	limit, offset := pageArgs(q.Page)
	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, limit, offset)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (BookInstance, error) {
		return scanInstance(row)
	})
	return out, total, err
}

func (r *PostgresRepo) UpdateInstance(ctx context.Context, bi *BookInstance) error {
	const query = `
		UPDATE book_instances
		SET book_id = $2, imprint = $3, due_back = $4, status = $5
		WHERE id = $1`

	if err := r.execOne(ctx, query, bi.ID, bi.BookID, bi.Imprint, dateArg(bi.DueBack), string(bi.Status)); err != nil {
		return fmt.Errorf("update book instance %s: %w", bi.ID, err)
	}
	return nil
}

func (r *PostgresRepo) DeleteInstance(ctx context.Context, id uuid.UUID) error {
	if err := r.execOne(ctx, `DELETE FROM book_instances WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete book instance %s: %w", id, err)
	}
	return nil
}
