package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"locallibrary/internal/catalog"
	"locallibrary/internal/config"
	"locallibrary/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

type seedAuthor struct {
	first, last string
	born, died  string
}

type seedBook struct {
	title, summary, isbn string
	author               int
	language             int
	genres               []int
}

var (
	languages = []string{"English", "French", "Russian", "Japanese"}
	genres    = []string{"Science Fiction", "Fantasy", "Classic", "Poetry", "Philosophy", "Adventure"}
	authors   = []seedAuthor{
		{first: "Jane", last: "Austen", born: "1775-12-16", died: "1817-07-18"},
		{first: "Jules", last: "Verne", born: "1828-02-08", died: "1905-03-24"},
		{first: "Ursula", last: "Le Guin", born: "1929-10-21", died: "2018-01-22"},
		{first: "Haruki", last: "Murakami", born: "1949-01-12"},
	}
	books = []seedBook{
		{title: "Pride and Prejudice", summary: "A novel of manners set in rural England.", isbn: "9780141439518", author: 0, language: 0, genres: []int{2}},
		{title: "Twenty Thousand Leagues Under the Seas", summary: "Captain Nemo and the Nautilus.", isbn: "9780199539277", author: 1, language: 1, genres: []int{0, 5, 2}},
		{title: "The Left Hand of Darkness", summary: "An envoy visits the planet Gethen.", isbn: "9780441478125", author: 2, language: 0, genres: []int{0, 4}},
		{title: "A Wizard of Earthsea", summary: "Ged learns the true names of things.", isbn: "9780547773742", author: 2, language: 0, genres: []int{1, 5, 4, 2}},
		{title: "Kafka on the Shore", summary: "Two intertwined journeys.", isbn: "9781400079278", author: 3, language: 3, genres: []int{1}},
	}
	imprints = []string{"First edition", "Paperback reprint", "Anniversary edition"}
)

func main() {
	config.LoadEnvFiles()
	log := logger.New(os.Stderr, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))

	timeout, err := config.QueryTimeout()
	if err != nil {
		log.WithError(err).Fatal("invalid configuration")
	}

	ctx := context.Background()
	dsn := config.DatabaseDSN()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.WithError(err).WithField("dsn", config.RedactDSN(dsn)).Fatal("failed to connect to database")
	}
	defer pool.Close()

	svc := catalog.NewService(catalog.NewPostgresRepo(pool, timeout))
	if err := seed(ctx, svc, log, rand.New(rand.NewSource(time.Now().UnixNano()))); err != nil {
		log.WithError(err).Fatal("seed failed")
	}

	counts, err := svc.Counts(ctx)
	if err != nil {
		log.WithError(err).Fatal("count catalog")
	}
	log.WithFields(logrus.Fields{
		"books":     counts.Books,
		"instances": counts.Instances,
		"available": counts.AvailableInstances,
		"authors":   counts.Authors,
		"genres":    counts.Genres,
	}).Info("catalog seeded")
}

func seed(ctx context.Context, svc *catalog.Service, log logrus.FieldLogger, rng *rand.Rand) error {
	languageIDs := make([]int64, len(languages))
	for i, name := range languages {
		l := catalog.Language{Name: name}
		if err := svc.CreateLanguage(ctx, &l); err != nil {
			return fmt.Errorf("language %q: %w", name, err)
		}
		languageIDs[i] = l.ID
	}

	genreIDs := make([]int64, len(genres))
	for i, name := range genres {
		g := catalog.Genre{Name: name}
		if err := svc.CreateGenre(ctx, &g); err != nil {
			return fmt.Errorf("genre %q: %w", name, err)
		}
		genreIDs[i] = g.ID
	}

	authorIDs := make([]int64, len(authors))
	for i, sa := range authors {
		a, err := catalog.AuthorInput{
			FirstName:   sa.first,
			LastName:    sa.last,
			DateOfBirth: optional(sa.born),
			DateOfDeath: optional(sa.died),
		}.Author()
		if err != nil {
			return err
		}
		if err := svc.CreateAuthor(ctx, &a); err != nil {
			return fmt.Errorf("author %q: %w", a, err)
		}
		authorIDs[i] = a.ID
	}

	for _, sb := range books {
		b := catalog.Book{
			Title:      sb.title,
			Summary:    sb.summary,
			ISBN:       sb.isbn,
			AuthorID:   &authorIDs[sb.author],
			LanguageID: &languageIDs[sb.language],
		}
		ids := make([]int64, 0, len(sb.genres))
		for _, g := range sb.genres {
			ids = append(ids, genreIDs[g])
		}
		created, err := svc.CreateBook(ctx, &b, ids)
		if err != nil {
			return fmt.Errorf("book %q: %w", sb.title, err)
		}

		copies := 1 + rng.Intn(3)
		for n := 0; n < copies; n++ {
			bi := catalog.BookInstance{
				BookID:  &created.ID,
				Imprint: imprints[rng.Intn(len(imprints))],
				Status:  catalog.LoanStatuses[rng.Intn(len(catalog.LoanStatuses))],
			}
			if bi.Status == catalog.StatusOnLoan {
				due := catalog.NewDate(time.Now().AddDate(0, 0, 1+rng.Intn(21)))
				bi.DueBack = &due
			}
			inst, err := svc.CreateInstance(ctx, &bi)
			if err != nil {
				return fmt.Errorf("instance of %q: %w", sb.title, err)
			}
			log.WithField("instance", inst.String()).Debug("created copy")
		}
		log.WithFields(logrus.Fields{"book": created.String(), "genres": created.DisplayGenre()}).Info("created book")
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
