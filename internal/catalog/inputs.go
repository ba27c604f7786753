package catalog

import (
	"fmt"

	"locallibrary/internal/httpx"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

func init() {
	httpx.RegisterValidation("loanstatus", func(fl validator.FieldLevel) bool {
		return LoanStatus(fl.Field().String()).Valid()
	})
}

type LanguageInput struct {
	Name string `json:"name" validate:"required,max=200"`
}

type GenreInput struct {
	Name string `json:"name" validate:"required,max=200"`
}

type AuthorInput struct {
	FirstName   string  `json:"first_name" validate:"required,max=100"`
	LastName    string  `json:"last_name" validate:"required,max=100"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	DateOfDeath *string `json:"date_of_death" validate:"omitempty,datetime=2006-01-02"`
}

// BookInput carries a book and the ordered ids of its genres.
// The ISBN is only length checked.
type BookInput struct {
	Title      string  `json:"title" validate:"required,max=200"`
	Summary    string  `json:"summary" validate:"required,max=2000"`
	ISBN       string  `json:"isbn" validate:"required,max=13"`
	AuthorID   *int64  `json:"author_id" validate:"omitempty,gt=0"`
	LanguageID *int64  `json:"language_id" validate:"omitempty,gt=0"`
	GenreIDs   []int64 `json:"genre_ids" validate:"omitempty,dive,gt=0"`
}

// InstanceInput carries a book copy. ID is honoured on create only; Status
// defaults to maintenance.
type InstanceInput struct {
	ID      string  `json:"id" validate:"omitempty,uuid"`
	BookID  *int64  `json:"book_id" validate:"omitempty,gt=0"`
	Imprint string  `json:"imprint" validate:"required,max=200"`
	DueBack *string `json:"due_back" validate:"omitempty,datetime=2006-01-02"`
	Status  string  `json:"status" validate:"omitempty,loanstatus"`
}

func parseDate(field string, value *string) (*Date, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	d, err := ParseDate(*value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &d, nil
}

func (in LanguageInput) Language() Language {
	return Language{Name: in.Name}
}

func (in GenreInput) Genre() Genre {
	return Genre{Name: in.Name}
}

func (in AuthorInput) Author() (Author, error) {
	born, err := parseDate("date_of_birth", in.DateOfBirth)
	if err != nil {
		return Author{}, err
	}
	died, err := parseDate("date_of_death", in.DateOfDeath)
	if err != nil {
		return Author{}, err
	}
	return Author{
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: born,
		DateOfDeath: died,
	}, nil
}

func (in BookInput) Book() Book {
	return Book{
		Title:      in.Title,
		Summary:    in.Summary,
		ISBN:       in.ISBN,
		AuthorID:   in.AuthorID,
		LanguageID: in.LanguageID,
	}
}

func (in InstanceInput) Instance() (BookInstance, error) {
	due, err := parseDate("due_back", in.DueBack)
	if err != nil {
		return BookInstance{}, err
	}
	bi := BookInstance{
		BookID:  in.BookID,
		Imprint: in.Imprint,
		DueBack: due,
		Status:  LoanStatus(in.Status),
	}
	if in.ID != "" {
		id, err := uuid.Parse(in.ID)
		if err != nil {
			return BookInstance{}, fmt.Errorf("id: %w", err)
		}
		bi.ID = id
	}
	return bi, nil
}
