package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

const bookSelect = `
	SELECT b.id, b.title, b.summary, b.isbn, b.author_id, b.language_id,
	       a.first_name, a.last_name, a.date_of_birth, a.date_of_death,
	       l.name
	FROM books b
	LEFT JOIN authors a ON a.id = b.author_id
	LEFT JOIN languages l ON l.id = b.language_id`

func scanBook(row pgx.Row) (Book, error) {
	var (
		b                   Book
		firstName, lastName *string
		born, died          *time.Time
		languageName        *string
	)
	err := row.Scan(
		&b.ID, &b.Title, &b.Summary, &b.ISBN, &b.AuthorID, &b.LanguageID,
		&firstName, &lastName, &born, &died,
		&languageName,
	)
	if err != nil {
		return Book{}, err
	}
	if b.AuthorID != nil && firstName != nil && lastName != nil {
		b.Author = &Author{ID: *b.AuthorID, FirstName: *firstName, LastName: *lastName, DateOfBirth: toDate(born), DateOfDeath: toDate(died)}
	}
	if b.LanguageID != nil && languageName != nil {
		b.Language = &Language{ID: *b.LanguageID, Name: *languageName}
	}
	b.Genres = []Genre{}
	return b, nil
}

// loadGenres attaches genres to books, keeping association insertion order.
func (r *PostgresRepo) loadGenres(ctx context.Context, books []Book) error {
	if len(books) == 0 {
		return nil
	}
	ids := make([]int64, len(books))
	index := make(map[int64]int, len(books))
	for i, b := range books {
		ids[i] = b.ID
		index[b.ID] = i
	}

	const query = `
		SELECT bg.book_id, g.id, g.name
		FROM book_genres bg
		JOIN genres g ON g.id = bg.genre_id
		WHERE bg.book_id = ANY($1)
		ORDER BY bg.book_id, bg.id`

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, ids)
	if err != nil {
		return fmt.Errorf("load genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			bookID int64
			g      Genre
		)
		if err := rows.Scan(&bookID, &g.ID, &g.Name); err != nil {
			return err
		}
		i := index[bookID]
		books[i].Genres = append(books[i].Genres, g)
	}
	return rows.Err()
}

// replaceGenres rewrites the association rows of a book inside tx.
func replaceGenres(ctx context.Context, tx pgx.Tx, bookID int64, genreIDs []int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM book_genres WHERE book_id = $1`, bookID); err != nil {
		return fmt.Errorf("clear book genres: %w", err)
	}
	if len(genreIDs) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(`INSERT INTO book_genres (book_id, genre_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, bookID, genreID)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert book genres: %w", mapErr(err))
	}
	return nil
}

func (r *PostgresRepo) CreateBook(ctx context.Context, b *Book, genreIDs []int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	const query = `
		INSERT INTO books (title, summary, isbn, author_id, language_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err = tx.QueryRow(timeoutCtx, query, b.Title, b.Summary, b.ISBN, b.AuthorID, b.LanguageID).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("insert book: %w", mapErr(err))
	}
	if err := replaceGenres(timeoutCtx, tx, b.ID, genreIDs); err != nil {
		return err
	}
	return tx.Commit(timeoutCtx)
}

func (r *PostgresRepo) GetBook(ctx context.Context, id int64) (Book, error) {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(timeoutCtx, bookSelect+` WHERE b.id = $1`, id))
	if err != nil {
		return Book{}, mapErr(err)
	}
	books := []Book{b}
	if err := r.loadGenres(ctx, books); err != nil {
		return Book{}, err
	}
	return books[0], nil
}

func (r *PostgresRepo) ListBooks(ctx context.Context, q BookQuery) ([]Book, int, error) {
	clauses := []string{"1=1"}
	args := []any{}
	argn := 1

	if q.AuthorID != nil {
		clauses = append(clauses, fmt.Sprintf("b.author_id = $%d", argn))
		args = append(args, *q.AuthorID)
		argn++
	}

	if q.LanguageID != nil {
		clauses = append(clauses, fmt.Sprintf("b.language_id = $%d", argn))
		args = append(args, *q.LanguageID)
		argn++
	}

	if q.GenreID != nil {
		clauses = append(clauses, fmt.Sprintf("EXISTS (SELECT 1 FROM book_genres bg WHERE bg.book_id = b.id AND bg.genre_id = $%d)", argn))
		args = append(args, *q.GenreID)
		argn++
	}

	if q.Q != "" {
		clauses = append(clauses, fmt.Sprintf("b.title ILIKE $%d", argn))
		args = append(args, "%"+q.Q+"%")
		argn++
	}

	where := "WHERE " + strings.Join(clauses, " AND ")

	total, err := r.count(ctx, "SELECT COUNT(*) FROM books b "+where, args...)
	if err != nil {
		return nil, 0, err
	}

	dataSQL := fmt.Sprintf(`%s
		%s
		ORDER BY b.title, b.id
		LIMIT $%d OFFSET $%d`,
		bookSelect, where, argn, argn+1)

	limit, offset := pageArgs(q.Page)
	argsWithPage := append([]any{}, args...)
	argsWithPage = append(argsWithPage, limit, offset)

	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, dataSQL, argsWithPage...)
	if err != nil {
		return nil, 0, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (Book, error) {
		return scanBook(row)
	})
	if err != nil {
		return nil, 0, err
	}
	if err := r.loadGenres(ctx, out); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresRepo) UpdateBook(ctx context.Context, b *Book, genreIDs []int64) error {
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.Begin(timeoutCtx)
	if err != nil {
		return err
	}
	defer tx.Rollback(timeoutCtx)

	const query = `
		UPDATE books
		SET title = $2, summary = $3, isbn = $4, author_id = $5, language_id = $6
		WHERE id = $1`

	tag, err := tx.Exec(timeoutCtx, query, b.ID, b.Title, b.Summary, b.ISBN, b.AuthorID, b.LanguageID)
	if err != nil {
		return fmt.Errorf("update book %d: %w", b.ID, mapErr(err))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update book %d: %w", b.ID, ErrNotFound)
	}
	if err := replaceGenres(timeoutCtx, tx, b.ID, genreIDs); err != nil {
		return err
	}
	return tx.Commit(timeoutCtx)
}

// DeleteBook removes the book; its instances keep existing with book_id set to NULL.
func (r *PostgresRepo) DeleteBook(ctx context.Context, id int64) error {
	if err := r.execOne(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete book %d: %w", id, err)
	}
	return nil
}
