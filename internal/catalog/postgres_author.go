package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const authorColumns = `id, first_name, last_name, date_of_birth, date_of_death`

func scanAuthor(row pgx.Row) (Author, error) {
	var (
		a          Author
		born, died *time.Time
	)
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &born, &died); err != nil {
		return Author{}, err
	}
	a.DateOfBirth, a.DateOfDeath = toDate(born), toDate(died)
	return a, nil
}

func (r *PostgresRepo) CreateAuthor(ctx context.Context, a *Author) error {
	const query = `
		INSERT INTO authors (first_name, last_name, date_of_birth, date_of_death)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, a.FirstName, a.LastName, dateArg(a.DateOfBirth), dateArg(a.DateOfDeath)).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert author: %w", mapErr(err))
	}
	return nil
}

func (r *PostgresRepo) GetAuthor(ctx context.Context, id int64) (Author, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	a, err := scanAuthor(r.db.QueryRow(timeoutCtx, `SELECT `+authorColumns+` FROM authors WHERE id = $1`, id))
	if err != nil {
		return Author{}, mapErr(err)
	}
	return a, nil
}

func (r *PostgresRepo) ListAuthors(ctx context.Context, p Page) ([]Author, int, error) {
	total, err := r.count(ctx, `SELECT COUNT(*) FROM authors`)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := pageArgs(p)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx,
		`SELECT `+authorColumns+` FROM authors ORDER BY last_name, first_name, id LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Author, error) {
		return scanAuthor(row)
	})
	return out, total, err
}

func (r *PostgresRepo) UpdateAuthor(ctx context.Context, a *Author) error {
	const query = `
		UPDATE authors
		SET first_name = $2, last_name = $3, date_of_birth = $4, date_of_death = $5
		WHERE id = $1`

	if err := r.execOne(ctx, query, a.ID, a.FirstName, a.LastName, dateArg(a.DateOfBirth), dateArg(a.DateOfDeath)); err != nil {
		return fmt.Errorf("update author %d: %w", a.ID, err)
	}
	return nil
}

// DeleteAuthor removes the author; their books keep existing with author_id set to NULL.
func (r *PostgresRepo) DeleteAuthor(ctx context.Context, id int64) error {
	if err := r.execOne(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete author %d: %w", id, err)
	}
	return nil
}
