package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidStatus is returned when a copy carries an unknown loan status.
var ErrInvalidStatus = errors.New("invalid loan status")

// Service provides catalog operations on top of a Repository.
type Service struct {
	repo Repository
	// newID generates book instance identifiers.
	newID func() uuid.UUID
}

// NewService creates a new catalog service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, newID: uuid.New}
}

// AuthorDetail is an author together with the books linked to them.
type AuthorDetail struct {
	Author Author `json:"author"`
	Books  []Book `json:"books"`
}

// BookDetail is a book together with its copies.
type BookDetail struct {
	Book      Book           `json:"book"`
	Instances []BookInstance `json:"instances"`
}

func (s *Service) CreateLanguage(ctx context.Context, l *Language) error {
	return s.repo.CreateLanguage(ctx, l)
}

func (s *Service) GetLanguage(ctx context.Context, id int64) (Language, error) {
	return s.repo.GetLanguage(ctx, id)
}

func (s *Service) ListLanguages(ctx context.Context, p Page) ([]Language, int, error) {
	return s.repo.ListLanguages(ctx, p)
}

func (s *Service) UpdateLanguage(ctx context.Context, l *Language) error {
	return s.repo.UpdateLanguage(ctx, l)
}

func (s *Service) DeleteLanguage(ctx context.Context, id int64) error {
	return s.repo.DeleteLanguage(ctx, id)
}

func (s *Service) CreateGenre(ctx context.Context, g *Genre) error {
	return s.repo.CreateGenre(ctx, g)
}

func (s *Service) GetGenre(ctx context.Context, id int64) (Genre, error) {
	return s.repo.GetGenre(ctx, id)
}

func (s *Service) ListGenres(ctx context.Context, p Page) ([]Genre, int, error) {
	return s.repo.ListGenres(ctx, p)
}

func (s *Service) UpdateGenre(ctx context.Context, g *Genre) error {
	return s.repo.UpdateGenre(ctx, g)
}

func (s *Service) DeleteGenre(ctx context.Context, id int64) error {
	return s.repo.DeleteGenre(ctx, id)
}

func (s *Service) CreateAuthor(ctx context.Context, a *Author) error {
	return s.repo.CreateAuthor(ctx, a)
}

func (s *Service) GetAuthor(ctx context.Context, id int64) (Author, error) {
	return s.repo.GetAuthor(ctx, id)
}

func (s *Service) ListAuthors(ctx context.Context, p Page) ([]Author, int, error) {
	return s.repo.ListAuthors(ctx, p)
}

func (s *Service) UpdateAuthor(ctx context.Context, a *Author) error {
	return s.repo.UpdateAuthor(ctx, a)
}

// DeleteAuthor removes an author. Books written by them are kept with no author.
func (s *Service) DeleteAuthor(ctx context.Context, id int64) error {
	return s.repo.DeleteAuthor(ctx, id)
}

// AuthorDetail returns the author and every book that references them.
func (s *Service) AuthorDetail(ctx context.Context, id int64) (AuthorDetail, error) {
	author, err := s.repo.GetAuthor(ctx, id)
	if err != nil {
		return AuthorDetail{}, err
	}
	books, _, err := s.repo.ListBooks(ctx, BookQuery{AuthorID: &id})
	if err != nil {
		return AuthorDetail{}, fmt.Errorf("books of author %d: %w", id, err)
	}
	if books == nil {
		books = []Book{}
	}
	return AuthorDetail{Author: author, Books: books}, nil
}

// CreateBook stores a book with its genres and returns the stored record.
func (s *Service) CreateBook(ctx context.Context, b *Book, genreIDs []int64) (Book, error) {
	if err := s.repo.CreateBook(ctx, b, genreIDs); err != nil {
		return Book{}, err
	}
	return s.repo.GetBook(ctx, b.ID)
}

func (s *Service) GetBook(ctx context.Context, id int64) (Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, q BookQuery) ([]Book, int, error) {
	return s.repo.ListBooks(ctx, q)
}

// UpdateBook rewrites a book and its genre list and returns the stored record.
func (s *Service) UpdateBook(ctx context.Context, b *Book, genreIDs []int64) (Book, error) {
	if err := s.repo.UpdateBook(ctx, b, genreIDs); err != nil {
		return Book{}, err
	}
	return s.repo.GetBook(ctx, b.ID)
}

// DeleteBook removes a book. Its copies are kept with no book.
func (s *Service) DeleteBook(ctx context.Context, id int64) error {
	return s.repo.DeleteBook(ctx, id)
}

// BookDetail returns the book and all of its copies.
func (s *Service) BookDetail(ctx context.Context, id int64) (BookDetail, error) {
	book, err := s.repo.GetBook(ctx, id)
	if err != nil {
		return BookDetail{}, err
	}
	instances, _, err := s.repo.ListInstances(ctx, InstanceQuery{BookID: &id})
	if err != nil {
		return BookDetail{}, fmt.Errorf("instances of book %d: %w", id, err)
	}
	if instances == nil {
		instances = []BookInstance{}
	}
	return BookDetail{Book: book, Instances: instances}, nil
}

// CreateInstance stores a new copy. A zero id gets a random UUID and an empty
// status becomes Maintenance.
func (s *Service) CreateInstance(ctx context.Context, bi *BookInstance) (BookInstance, error) {
	if bi.ID == uuid.Nil {
		bi.ID = s.newID()
	}
	if bi.Status == "" {
		bi.Status = DefaultLoanStatus
	}
	if !bi.Status.Valid() {
		return BookInstance{}, fmt.Errorf("%w: %q", ErrInvalidStatus, bi.Status)
	}
	if err := s.repo.CreateInstance(ctx, bi); err != nil {
		return BookInstance{}, err
	}
	return s.repo.GetInstance(ctx, bi.ID)
}

func (s *Service) GetInstance(ctx context.Context, id uuid.UUID) (BookInstance, error) {
	return s.repo.GetInstance(ctx, id)
}

func (s *Service) ListInstances(ctx context.Context, q InstanceQuery) ([]BookInstance, int, error) {
	if q.Status != "" && !q.Status.Valid() {
		return nil, 0, fmt.Errorf("%w: %q", ErrInvalidStatus, q.Status)
	}
	return s.repo.ListInstances(ctx, q)
}

// UpdateInstance rewrites a copy. Any status may move to any other status.
func (s *Service) UpdateInstance(ctx context.Context, bi *BookInstance) (BookInstance, error) {
	if bi.Status == "" {
		bi.Status = DefaultLoanStatus
	}
	if !bi.Status.Valid() {
		return BookInstance{}, fmt.Errorf("%w: %q", ErrInvalidStatus, bi.Status)
	}
	if err := s.repo.UpdateInstance(ctx, bi); err != nil {
		return BookInstance{}, err
	}
	return s.repo.GetInstance(ctx, bi.ID)
}

func (s *Service) DeleteInstance(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteInstance(ctx, id)
}

// Counts returns catalog totals.
func (s *Service) Counts(ctx context.Context) (Counts, error) {
	return s.repo.Counts(ctx)
}
