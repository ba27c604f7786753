package ingest

import (
	"context"

	"locallibrary/internal/catalog"
	"locallibrary/internal/platform/openlibrary"
)

// Config bounds one import run.
type Config struct {
	BooksMax  int
	Subjects  []string
	BatchSize int
	// Imprint is used for copies whose publisher is unknown.
	Imprint string
}

// Result summarises an import run.
type Result struct {
	BooksFetched     int
	BooksImported    int
	AuthorsCreated   int
	LanguagesCreated int
	GenresCreated    int
	Skipped          int
}

type OpenLibraryClient interface {
	SearchBooks(ctx context.Context, subject string, limit int) (*openlibrary.SearchResponse, error)
	GetBooksByISBN(ctx context.Context, isbns []string) (map[string]openlibrary.BookDetails, error)
	GetAuthor(ctx context.Context, authorKey string) (*openlibrary.AuthorDetails, error)
}

// Catalog is the part of catalog.Service an import writes through.
type Catalog interface {
	Counts(ctx context.Context) (catalog.Counts, error)
	ListLanguages(ctx context.Context, p catalog.Page) ([]catalog.Language, int, error)
	CreateLanguage(ctx context.Context, l *catalog.Language) error
	ListGenres(ctx context.Context, p catalog.Page) ([]catalog.Genre, int, error)
	CreateGenre(ctx context.Context, g *catalog.Genre) error
	ListAuthors(ctx context.Context, p catalog.Page) ([]catalog.Author, int, error)
	CreateAuthor(ctx context.Context, a *catalog.Author) error
	ListBooks(ctx context.Context, q catalog.BookQuery) ([]catalog.Book, int, error)
	CreateBook(ctx context.Context, b *catalog.Book, genreIDs []int64) (catalog.Book, error)
	CreateInstance(ctx context.Context, bi *catalog.BookInstance) (catalog.BookInstance, error)
}

var _ Catalog = (*catalog.Service)(nil)
