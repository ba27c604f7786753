package catalog

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=catalog

// Repository defines the contract for catalog storage.
type Repository interface {
	CreateLanguage(ctx context.Context, l *Language) error
	GetLanguage(ctx context.Context, id int64) (Language, error)
	ListLanguages(ctx context.Context, p Page) ([]Language, int, error)
	UpdateLanguage(ctx context.Context, l *Language) error
	DeleteLanguage(ctx context.Context, id int64) error

	CreateGenre(ctx context.Context, g *Genre) error
	GetGenre(ctx context.Context, id int64) (Genre, error)
	ListGenres(ctx context.Context, p Page) ([]Genre, int, error)
	UpdateGenre(ctx context.Context, g *Genre) error
	DeleteGenre(ctx context.Context, id int64) error

	CreateAuthor(ctx context.Context, a *Author) error
	GetAuthor(ctx context.Context, id int64) (Author, error)
	ListAuthors(ctx context.Context, p Page) ([]Author, int, error)
	UpdateAuthor(ctx context.Context, a *Author) error
	DeleteAuthor(ctx context.Context, id int64) error

	// CreateBook and UpdateBook replace the book's genre associations with
	// genreIDs, in the given order.
	CreateBook(ctx context.Context, b *Book, genreIDs []int64) error
	GetBook(ctx context.Context, id int64) (Book, error)
	ListBooks(ctx context.Context, q BookQuery) ([]Book, int, error)
	UpdateBook(ctx context.Context, b *Book, genreIDs []int64) error
	DeleteBook(ctx context.Context, id int64) error

	CreateInstance(ctx context.Context, bi *BookInstance) error
	GetInstance(ctx context.Context, id uuid.UUID) (BookInstance, error)
	ListInstances(ctx context.Context, q InstanceQuery) ([]BookInstance, int, error)
	UpdateInstance(ctx context.Context, bi *BookInstance) error
	DeleteInstance(ctx context.Context, id uuid.UUID) error

	Counts(ctx context.Context) (Counts, error)
}
