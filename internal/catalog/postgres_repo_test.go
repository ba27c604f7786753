package catalog

import (
	"context"
	"testing"
	"time"

	"locallibrary/internal/testutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *PostgresRepo {
	return NewPostgresRepo(testutil.PostgresPool(t), 5*time.Second)
}

func date(y int, m time.Month, d int) *Date {
	return DateOf(y, m, d)
}

func TestPostgresRepo_LanguageCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	l := Language{Name: "French"}
	require.NoError(t, repo.CreateLanguage(ctx, &l))
	require.NotZero(t, l.ID)

	l.Name = "Français"
	require.NoError(t, repo.UpdateLanguage(ctx, &l))

	got, err := repo.GetLanguage(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Français", got.Name)

	list, total, err := repo.ListLanguages(ctx, Page{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Len(t, list, 1)

	require.NoError(t, repo.DeleteLanguage(ctx, l.ID))
	_, err = repo.GetLanguage(ctx, l.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.DeleteLanguage(ctx, l.ID), ErrNotFound)
}

func TestPostgresRepo_DeleteAuthorKeepsBooks(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	a := Author{FirstName: "Jane", LastName: "Austen", DateOfBirth: date(1775, 12, 16)}
	require.NoError(t, repo.CreateAuthor(ctx, &a))
	lang := Language{Name: "English"}
	require.NoError(t, repo.CreateLanguage(ctx, &lang))

	b := Book{Title: "Emma", Summary: "Matchmaking.", ISBN: "9780141439587", AuthorID: &a.ID, LanguageID: &lang.ID}
	require.NoError(t, repo.CreateBook(ctx, &b, nil))

	got, err := repo.GetBook(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Author)
	assert.Equal(t, "Austen, Jane", got.Author.String())
	assert.Equal(t, "English", got.Language.String())

	require.NoError(t, repo.DeleteAuthor(ctx, a.ID))
	require.NoError(t, repo.DeleteLanguage(ctx, lang.ID))

	got, err = repo.GetBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AuthorID)
	assert.Nil(t, got.Author)
	assert.Nil(t, got.LanguageID)
	assert.Nil(t, got.Language)
	assert.Equal(t, "Emma", got.Title)
}

func TestPostgresRepo_DeleteBookKeepsInstances(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	b := Book{Title: "Emma", Summary: "Matchmaking.", ISBN: "9780141439587"}
	require.NoError(t, repo.CreateBook(ctx, &b, nil))

	bi := BookInstance{ID: uuid.New(), BookID: &b.ID, Imprint: "Penguin Classics", Status: StatusAvailable}
	require.NoError(t, repo.CreateInstance(ctx, &bi))

	got, err := repo.GetInstance(ctx, bi.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emma ("+bi.ID.String()+")", got.String())

	require.NoError(t, repo.DeleteBook(ctx, b.ID))

	got, err = repo.GetInstance(ctx, bi.ID)
	require.NoError(t, err)
	assert.Nil(t, got.BookID)
	assert.Equal(t, "Penguin Classics", got.Imprint)
	assert.Equal(t, StatusAvailable, got.Status)
}

func TestPostgresRepo_BookGenres(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"Fantasy", "Adventure", "Philosophy", "Classic", "Poetry"} {
		g := Genre{Name: name}
		require.NoError(t, repo.CreateGenre(ctx, &g))
		ids = append(ids, g.ID)
	}

	b := Book{Title: "A Wizard of Earthsea", Summary: "Ged.", ISBN: "9780547773742"}
	require.NoError(t, repo.CreateBook(ctx, &b, []int64{ids[3], ids[0], ids[4], ids[1], ids[2]}))

	got, err := repo.GetBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Len(t, got.Genres, 5)
	assert.Equal(t, "Classic, Fantasy, Poetry", got.DisplayGenre())

	books, total, err := repo.ListBooks(ctx, BookQuery{GenreID: &ids[2]})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, books, 1)
	assert.Len(t, books[0].Genres, 5)

	require.NoError(t, repo.UpdateBook(ctx, &b, []int64{ids[1]}))
	got, err = repo.GetBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Adventure", got.DisplayGenre())

	require.NoError(t, repo.DeleteGenre(ctx, ids[1]))
	got, err = repo.GetBook(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Genres)

	err = repo.CreateBook(ctx, &Book{Title: "x", Summary: "x", ISBN: "x"}, []int64{999999})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestPostgresRepo_InstancesOrderedByDueBack(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	b := Book{Title: "Emma", Summary: "Matchmaking.", ISBN: "9780141439587"}
	require.NoError(t, repo.CreateBook(ctx, &b, nil))

	later := BookInstance{ID: uuid.New(), BookID: &b.ID, Imprint: "later", DueBack: date(2030, 5, 1), Status: StatusOnLoan}
	sooner := BookInstance{ID: uuid.New(), BookID: &b.ID, Imprint: "sooner", DueBack: date(2030, 1, 1), Status: StatusOnLoan}
	undated := BookInstance{ID: uuid.New(), BookID: &b.ID, Imprint: "undated", Status: StatusMaintenance}
	for _, bi := range []*BookInstance{&later, &sooner, &undated} {
		require.NoError(t, repo.CreateInstance(ctx, bi))
	}

	list, total, err := repo.ListInstances(ctx, InstanceQuery{BookID: &b.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"undated", "sooner", "later"}, []string{list[0].Imprint, list[1].Imprint, list[2].Imprint})

	onLoan, total, err := repo.ListInstances(ctx, InstanceQuery{Status: StatusOnLoan})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, onLoan, 2)

	undated.Status = StatusAvailable
	require.NoError(t, repo.UpdateInstance(ctx, &undated))

	counts, err := repo.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, Counts{Books: 1, Instances: 3, AvailableInstances: 1}, counts)
}

func TestPostgresRepo_InstanceStatusDefaultInSchema(t *testing.T) {
	pool := testutil.PostgresPool(t)
	ctx := context.Background()

	var (
		id     uuid.UUID
		status string
	)
	err := pool.QueryRow(ctx, `INSERT INTO book_instances (imprint) VALUES ('bare') RETURNING id, status`).Scan(&id, &status)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
	assert.Equal(t, string(StatusMaintenance), status)

	_, err = pool.Exec(ctx, `INSERT INTO book_instances (imprint, status) VALUES ('bad', 'x')`)
	assert.Error(t, err)
}

func TestPostgresRepo_DuplicateInstanceID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, repo.CreateInstance(ctx, &BookInstance{ID: id, Imprint: "first", Status: StatusMaintenance}))

	err := repo.CreateInstance(ctx, &BookInstance{ID: id, Imprint: "second", Status: StatusAvailable})
	assert.ErrorIs(t, err, ErrConflict)

	got, err := repo.GetInstance(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Imprint)
}

func TestMapErr(t *testing.T) {
	assert.Nil(t, mapErr(nil))
	assert.ErrorIs(t, mapErr(pgx.ErrNoRows), ErrNotFound)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: "23503", ConstraintName: "books_author_id_fkey"}), ErrInvalidReference)
	assert.ErrorIs(t, mapErr(&pgconn.PgError{Code: "23505", ConstraintName: "book_instances_pkey"}), ErrConflict)

	other := &pgconn.PgError{Code: "23514"}
	assert.Equal(t, error(other), mapErr(other))
}
