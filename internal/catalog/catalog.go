package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a catalog record does not exist.
	ErrNotFound = errors.New("catalog record not found")
	// ErrInvalidReference is returned when a record points at an author,
	// language, genre or book that does not exist.
	ErrInvalidReference = errors.New("referenced catalog record does not exist")
	// ErrConflict is returned when a record with the same key already exists.
	ErrConflict = errors.New("catalog record already exists")
)

// displayGenreLimit caps how many genre names Book.DisplayGenre renders.
const displayGenreLimit = 3

// Language is a natural language a book is written in.
type Language struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (l Language) String() string {
	return l.Name
}

// Genre is a book category such as Science Fiction or French Poetry.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (g Genre) String() string {
	return g.Name
}

// Author is a person who writes books.
type Author struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth *Date  `json:"date_of_birth,omitempty"`
	DateOfDeath *Date  `json:"date_of_death,omitempty"`
}

// String renders the author as "last_name, first_name".
func (a Author) String() string {
	return fmt.Sprintf("%s, %s", a.LastName, a.FirstName)
}

// AbsoluteURL returns the path of the author detail view.
func (a Author) AbsoluteURL() string {
	return fmt.Sprintf("/catalog/author/%d", a.ID)
}

// Book is a catalog title, not a physical copy.
type Book struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Summary    string `json:"summary"`
	ISBN       string `json:"isbn"`
	AuthorID   *int64 `json:"author_id"`
	LanguageID *int64 `json:"language_id"`

	// Genres are kept in association order.
	Genres []Genre `json:"genres"`

	// Author and Language are populated on reads when the reference is set.
	Author   *Author   `json:"author,omitempty"`
	Language *Language `json:"language,omitempty"`
}

func (b Book) String() string {
	return b.Title
}

// AbsoluteURL returns the path of the book detail view.
func (b Book) AbsoluteURL() string {
	return fmt.Sprintf("/catalog/book/%d", b.ID)
}

// DisplayGenre joins the names of the first three genres for compact listings.
func (b Book) DisplayGenre() string {
	genres := b.Genres
	if len(genres) > displayGenreLimit {
		genres = genres[:displayGenreLimit]
	}
	names := make([]string, 0, len(genres))
	for _, g := range genres {
		names = append(names, g.Name)
	}
	return strings.Join(names, ", ")
}

// GenreIDs returns the ids of the associated genres in order.
func (b Book) GenreIDs() []int64 {
	ids := make([]int64, 0, len(b.Genres))
	for _, g := range b.Genres {
		ids = append(ids, g.ID)
	}
	return ids
}

// BookInstance is a specific lendable copy of a Book.
type BookInstance struct {
	ID      uuid.UUID  `json:"id"`
	BookID  *int64     `json:"book_id"`
	Imprint string     `json:"imprint"`
	DueBack *Date      `json:"due_back,omitempty"`
	Status  LoanStatus `json:"status"`

	// BookTitle is filled from the referenced book on reads. It is empty once
	// the book has been deleted.
	BookTitle string `json:"book_title"`
}

// String renders the copy as "book title (id)".
func (bi BookInstance) String() string {
	return fmt.Sprintf("%s (%s)", bi.BookTitle, bi.ID)
}

// Counts summarises the size of the catalog.
type Counts struct {
	Books              int `json:"books"`
	Instances          int `json:"instances"`
	AvailableInstances int `json:"available_instances"`
	Authors            int `json:"authors"`
	Genres             int `json:"genres"`
}

// Page bounds a listing.
type Page struct {
	Limit  int
	Offset int
}

// BookQuery filters book listings. Zero values mean "no filter".
type BookQuery struct {
	AuthorID   *int64
	LanguageID *int64
	GenreID    *int64
	Q          string
	Page
}

// InstanceQuery filters book instance listings.
type InstanceQuery struct {
	BookID *int64
	Status LoanStatus
	Page
}
