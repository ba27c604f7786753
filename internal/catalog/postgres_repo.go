package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// mapErr translates driver errors into catalog errors.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrInvalidReference, pgErr.ConstraintName)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrConflict, pgErr.ConstraintName)
		}
	}
	return err
}

// pageArgs returns LIMIT/OFFSET arguments. A NULL limit means no limit.
func pageArgs(p Page) (any, int) {
	var limit any
	if p.Limit > 0 {
		limit = p.Limit
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// execOne runs a statement that must touch exactly one row.
func (r *PostgresRepo) execOne(ctx context.Context, sql string, args ...any) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, sql, args...)
	if err != nil {
		return mapErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresRepo) count(ctx context.Context, sql string, args ...any) (int, error) {
	var total int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	if err := r.db.QueryRow(timeoutCtx, sql, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PostgresRepo) CreateLanguage(ctx context.Context, l *Language) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, `INSERT INTO languages (name) VALUES ($1) RETURNING id`, l.Name).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert language: %w", mapErr(err))
	}
	return nil
}

func (r *PostgresRepo) GetLanguage(ctx context.Context, id int64) (Language, error) {
	var l Language
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, `SELECT id, name FROM languages WHERE id = $1`, id).Scan(&l.ID, &l.Name)
	if err != nil {
		return Language{}, mapErr(err)
	}
	return l, nil
}

func (r *PostgresRepo) ListLanguages(ctx context.Context, p Page) ([]Language, int, error) {
	total, err := r.count(ctx, `SELECT COUNT(*) FROM languages`)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := pageArgs(p)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, `SELECT id, name FROM languages ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Language, error) {
		var l Language
		err := row.Scan(&l.ID, &l.Name)
		return l, err
	})
	return out, total, err
}

func (r *PostgresRepo) UpdateLanguage(ctx context.Context, l *Language) error {
	if err := r.execOne(ctx, `UPDATE languages SET name = $2 WHERE id = $1`, l.ID, l.Name); err != nil {
		return fmt.Errorf("update language %d: %w", l.ID, err)
	}
	return nil
}

// DeleteLanguage removes the language; books keep existing with language_id set to NULL.
func (r *PostgresRepo) DeleteLanguage(ctx context.Context, id int64) error {
	if err := r.execOne(ctx, `DELETE FROM languages WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete language %d: %w", id, err)
	}
	return nil
}

func (r *PostgresRepo) CreateGenre(ctx context.Context, g *Genre) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, `INSERT INTO genres (name) VALUES ($1) RETURNING id`, g.Name).Scan(&g.ID)
	if err != nil {
		return fmt.Errorf("insert genre: %w", mapErr(err))
	}
	return nil
}

func (r *PostgresRepo) GetGenre(ctx context.Context, id int64) (Genre, error) {
	var g Genre
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, `SELECT id, name FROM genres WHERE id = $1`, id).Scan(&g.ID, &g.Name)
	if err != nil {
		return Genre{}, mapErr(err)
	}
	return g, nil
}

func (r *PostgresRepo) ListGenres(ctx context.Context, p Page) ([]Genre, int, error) {
	total, err := r.count(ctx, `SELECT COUNT(*) FROM genres`)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := pageArgs(p)
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, `SELECT id, name FROM genres ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Genre, error) {
		var g Genre
		err := row.Scan(&g.ID, &g.Name)
		return g, err
	})
	return out, total, err
}

func (r *PostgresRepo) UpdateGenre(ctx context.Context, g *Genre) error {
	if err := r.execOne(ctx, `UPDATE genres SET name = $2 WHERE id = $1`, g.ID, g.Name); err != nil {
		return fmt.Errorf("update genre %d: %w", g.ID, err)
	}
	return nil
}

// DeleteGenre removes the genre and its book associations; the books remain.
func (r *PostgresRepo) DeleteGenre(ctx context.Context, id int64) error {
	if err := r.execOne(ctx, `DELETE FROM genres WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete genre %d: %w", id, err)
	}
	return nil
}

func (r *PostgresRepo) Counts(ctx context.Context) (Counts, error) {
	const query = `
		SELECT
			(SELECT COUNT(*) FROM books),
			(SELECT COUNT(*) FROM book_instances),
			(SELECT COUNT(*) FROM book_instances WHERE status = $1),
			(SELECT COUNT(*) FROM authors),
			(SELECT COUNT(*) FROM genres)`

	var c Counts
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, string(StatusAvailable)).Scan(
		&c.Books, &c.Instances, &c.AvailableInstances, &c.Authors, &c.Genres,
	)
	if err != nil {
		return Counts{}, fmt.Errorf("count catalog: %w", err)
	}
	return c, nil
}
