package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"locallibrary/internal/catalog"
	"locallibrary/internal/platform/openlibrary"

	"github.com/sirupsen/logrus"
)

// languageNames maps Open Library MARC language codes to catalog names.
var languageNames = map[string]string{
	"eng": "English",
	"fre": "French",
	"ger": "German",
	"spa": "Spanish",
	"ita": "Italian",
	"por": "Portuguese",
	"rus": "Russian",
	"jpn": "Japanese",
	"chi": "Chinese",
}

var authorDateLayouts = []string{catalog.DateLayout, "2 January 2006", "January 2, 2006", "2 Jan 2006"}

type Service struct {
	olClient OpenLibraryClient
	catalog  Catalog
	cfg      Config
	log      logrus.FieldLogger
}

func NewService(olClient OpenLibraryClient, cat Catalog, cfg Config, log logrus.FieldLogger) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 20
	}
	if cfg.Imprint == "" {
		cfg.Imprint = "Open Library import"
	}
	return &Service{olClient: olClient, catalog: cat, cfg: cfg, log: log}
}

// index caches catalog rows by name so an import never duplicates them.
type index struct {
	languages map[string]int64
	genres    map[string]int64
	authors   map[string]int64
	isbns     map[string]bool
}

type candidate struct {
	doc  openlibrary.SearchDoc
	isbn string
}

// Run imports books for each configured subject until the catalog holds
// BooksMax books. The subject becomes a genre of every book found under it.
func (s *Service) Run(ctx context.Context) (Result, error) {
	var res Result

	counts, err := s.catalog.Counts(ctx)
	if err != nil {
		return res, err
	}
	needed := s.cfg.BooksMax - counts.Books
	if needed <= 0 {
		s.log.WithField("books", counts.Books).Info("import target already met")
		return res, nil
	}

	idx, err := s.loadIndex(ctx)
	if err != nil {
		return res, err
	}

	for _, subject := range s.cfg.Subjects {
		if res.BooksImported >= needed {
			break
		}

		searchLimit := 100
		if remaining := needed - res.BooksImported; remaining < 50 {
			searchLimit = remaining * 2
		}
		searchRes, err := s.olClient.SearchBooks(ctx, subject, searchLimit)
		if err != nil {
			return res, fmt.Errorf("search failed for %s: %w", subject, err)
		}

		genreID, err := s.ensureGenre(ctx, idx, &res, subject)
		if err != nil {
			return res, err
		}

		var batch []candidate
		for _, doc := range searchRes.Docs {
			isbn := pickISBN(doc.ISBN)
			if isbn == "" || idx.isbns[isbn] || doc.Title == "" {
				res.Skipped++
				continue
			}
			idx.isbns[isbn] = true
			batch = append(batch, candidate{doc: doc, isbn: isbn})
			if len(batch) >= s.cfg.BatchSize {
				if err := s.importBatch(ctx, idx, &res, genreID, batch, needed); err != nil {
					return res, err
				}
				batch = nil
			}
			if res.BooksImported >= needed {
				break
			}
		}
		if len(batch) > 0 && res.BooksImported < needed {
			if err := s.importBatch(ctx, idx, &res, genreID, batch, needed); err != nil {
				return res, err
			}
		}
	}

	return res, nil
}

func (s *Service) loadIndex(ctx context.Context) (*index, error) {
	idx := &index{
		languages: map[string]int64{},
		genres:    map[string]int64{},
		authors:   map[string]int64{},
		isbns:     map[string]bool{},
	}

	languages, _, err := s.catalog.ListLanguages(ctx, catalog.Page{})
	if err != nil {
		return nil, fmt.Errorf("load languages: %w", err)
	}
	for _, l := range languages {
		idx.languages[strings.ToLower(l.Name)] = l.ID
	}

	genres, _, err := s.catalog.ListGenres(ctx, catalog.Page{})
	if err != nil {
		return nil, fmt.Errorf("load genres: %w", err)
	}
	for _, g := range genres {
		idx.genres[strings.ToLower(g.Name)] = g.ID
	}

	authors, _, err := s.catalog.ListAuthors(ctx, catalog.Page{})
	if err != nil {
		return nil, fmt.Errorf("load authors: %w", err)
	}
	for _, a := range authors {
		idx.authors[strings.ToLower(a.String())] = a.ID
	}

	books, _, err := s.catalog.ListBooks(ctx, catalog.BookQuery{})
	if err != nil {
		return nil, fmt.Errorf("load books: %w", err)
	}
	for _, b := range books {
		idx.isbns[b.ISBN] = true
	}
	return idx, nil
}

func (s *Service) importBatch(ctx context.Context, idx *index, res *Result, genreID int64, batch []candidate, needed int) error {
	isbns := make([]string, len(batch))
	for i, c := range batch {
		isbns[i] = c.isbn
	}
	details, err := s.olClient.GetBooksByISBN(ctx, isbns)
	if err != nil {
		s.log.WithError(err).Warn("failed to hydrate batch")
	}
	res.BooksFetched += len(batch)

	for _, c := range batch {
		if res.BooksImported >= needed {
			return nil
		}
		if err := s.importBook(ctx, idx, res, genreID, c, details["ISBN:"+c.isbn]); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.WithError(err).WithField("isbn", c.isbn).Warn("failed to import book")
			res.Skipped++
		}
	}
	return nil
}

func (s *Service) importBook(ctx context.Context, idx *index, res *Result, genreID int64, c candidate, d openlibrary.BookDetails) error {
	book := catalog.Book{
		Title:   truncate(c.doc.Title, 200),
		Summary: truncate(summary(c.doc, d), 2000),
		ISBN:    c.isbn,
	}

	if len(c.doc.AuthorNames) > 0 {
		key := ""
		if len(c.doc.AuthorKeys) > 0 {
			key = c.doc.AuthorKeys[0]
		}
		id, err := s.ensureAuthor(ctx, idx, res, c.doc.AuthorNames[0], key)
		if err != nil {
			return err
		}
		book.AuthorID = &id
	}

	if len(c.doc.Language) > 0 {
		if name, ok := languageNames[c.doc.Language[0]]; ok {
			id, err := s.ensureLanguage(ctx, idx, res, name)
			if err != nil {
				return err
			}
			book.LanguageID = &id
		}
	}

	created, err := s.catalog.CreateBook(ctx, &book, []int64{genreID})
	if err != nil {
		return err
	}

	bi := catalog.BookInstance{
		BookID:  &created.ID,
		Imprint: truncate(imprint(d, s.cfg.Imprint), 200),
	}
	if _, err := s.catalog.CreateInstance(ctx, &bi); err != nil {
		return err
	}

	res.BooksImported++
	s.log.WithFields(logrus.Fields{"book": created.String(), "isbn": c.isbn}).Debug("imported book")
	return nil
}

func (s *Service) ensureGenre(ctx context.Context, idx *index, res *Result, name string) (int64, error) {
	name = truncate(strings.TrimSpace(name), 200)
	if id, ok := idx.genres[strings.ToLower(name)]; ok {
		return id, nil
	}
	g := catalog.Genre{Name: name}
	if err := s.catalog.CreateGenre(ctx, &g); err != nil {
		return 0, fmt.Errorf("genre %q: %w", name, err)
	}
	idx.genres[strings.ToLower(name)] = g.ID
	res.GenresCreated++
	return g.ID, nil
}

func (s *Service) ensureLanguage(ctx context.Context, idx *index, res *Result, name string) (int64, error) {
	if id, ok := idx.languages[strings.ToLower(name)]; ok {
		return id, nil
	}
	l := catalog.Language{Name: name}
	if err := s.catalog.CreateLanguage(ctx, &l); err != nil {
		return 0, fmt.Errorf("language %q: %w", name, err)
	}
	idx.languages[strings.ToLower(name)] = l.ID
	res.LanguagesCreated++
	return l.ID, nil
}

// ensureAuthor finds the author by name, creating them with the life dates
// Open Library knows about when missing.
func (s *Service) ensureAuthor(ctx context.Context, idx *index, res *Result, fullName, key string) (int64, error) {
	a := catalog.Author{}
	a.FirstName, a.LastName = splitName(fullName)
	if id, ok := idx.authors[strings.ToLower(a.String())]; ok {
		return id, nil
	}

	if key != "" {
		details, err := s.olClient.GetAuthor(ctx, key)
		if err != nil {
			s.log.WithError(err).WithField("author_key", key).Warn("failed to fetch author")
		} else {
			a.DateOfBirth = parseAuthorDate(details.BirthDate)
			a.DateOfDeath = parseAuthorDate(details.DeathDate)
		}
	}

	if err := s.catalog.CreateAuthor(ctx, &a); err != nil {
		return 0, fmt.Errorf("author %q: %w", fullName, err)
	}
	idx.authors[strings.ToLower(a.String())] = a.ID
	res.AuthorsCreated++
	return a.ID, nil
}

// pickISBN prefers a 13 digit ISBN and rejects anything that does not fit
// the catalog column.
func pickISBN(isbns []string) string {
	var fallback string
	for _, isbn := range isbns {
		switch len(isbn) {
		case 13:
			return isbn
		case 10:
			if fallback == "" {
				fallback = isbn
			}
		}
	}
	return fallback
}

// splitName treats the last word as the family name.
func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "Unknown", "Unknown"
	case 1:
		name := truncate(parts[0], 100)
		return name, name
	}
	return truncate(strings.Join(parts[:len(parts)-1], " "), 100), truncate(parts[len(parts)-1], 100)
}

func parseAuthorDate(v string) *catalog.Date {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	for _, layout := range authorDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			d := catalog.NewDate(t)
			return &d
		}
	}
	return nil
}

func summary(doc openlibrary.SearchDoc, d openlibrary.BookDetails) string {
	if d.Notes != "" {
		return d.Notes
	}
	var b strings.Builder
	b.WriteString(doc.Title)
	if d.Subtitle != "" {
		b.WriteString(": " + d.Subtitle)
	}
	if len(doc.AuthorNames) > 0 {
		b.WriteString(" by " + strings.Join(doc.AuthorNames, ", "))
	}
	if doc.FirstPublishYear > 0 {
		fmt.Fprintf(&b, ", first published %d", doc.FirstPublishYear)
	}
	b.WriteString(".")
	return b.String()
}

func imprint(d openlibrary.BookDetails, fallback string) string {
	if len(d.Publishers) == 0 {
		return fallback
	}
	names := make([]string, len(d.Publishers))
	for i, p := range d.Publishers {
		names[i] = p.Name
	}
	out := strings.Join(names, ", ")
	if d.PublishDate != "" {
		out += ", " + d.PublishDate
	}
	return out
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
