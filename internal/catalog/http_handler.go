package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"locallibrary/internal/httpx"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type HTTPHandler struct {
	svc *Service
	log logrus.FieldLogger
}

func NewHTTPHandler(svc *Service, log logrus.FieldLogger) *HTTPHandler {
	return &HTTPHandler{svc: svc, log: log}
}

// Register mounts the catalog routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /catalog/{$}", h.Index)

	mux.HandleFunc("GET /catalog/languages", h.ListLanguages)
	mux.HandleFunc("POST /catalog/languages", h.CreateLanguage)
	mux.HandleFunc("GET /catalog/language/{id}", h.GetLanguage)
	mux.HandleFunc("PUT /catalog/language/{id}", h.UpdateLanguage)
	mux.HandleFunc("DELETE /catalog/language/{id}", h.DeleteLanguage)

	mux.HandleFunc("GET /catalog/genres", h.ListGenres)
	mux.HandleFunc("POST /catalog/genres", h.CreateGenre)
	mux.HandleFunc("GET /catalog/genre/{id}", h.GetGenre)
	mux.HandleFunc("PUT /catalog/genre/{id}", h.UpdateGenre)
	mux.HandleFunc("DELETE /catalog/genre/{id}", h.DeleteGenre)

	mux.HandleFunc("GET /catalog/authors", h.ListAuthors)
	mux.HandleFunc("POST /catalog/authors", h.CreateAuthor)
	mux.HandleFunc("GET /catalog/author/{id}", h.GetAuthor)
	mux.HandleFunc("PUT /catalog/author/{id}", h.UpdateAuthor)
	mux.HandleFunc("DELETE /catalog/author/{id}", h.DeleteAuthor)

	mux.HandleFunc("GET /catalog/books", h.ListBooks)
	mux.HandleFunc("POST /catalog/books", h.CreateBook)
	mux.HandleFunc("GET /catalog/book/{id}", h.GetBook)
	mux.HandleFunc("PUT /catalog/book/{id}", h.UpdateBook)
	mux.HandleFunc("DELETE /catalog/book/{id}", h.DeleteBook)

	mux.HandleFunc("GET /catalog/bookinstances", h.ListInstances)
	mux.HandleFunc("POST /catalog/bookinstances", h.CreateInstance)
	mux.HandleFunc("GET /catalog/bookinstance/{id}", h.GetInstance)
	mux.HandleFunc("PUT /catalog/bookinstance/{id}", h.UpdateInstance)
	mux.HandleFunc("DELETE /catalog/bookinstance/{id}", h.DeleteInstance)
}

// writeError maps service errors onto the JSON error envelope.
func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Record not found", nil)
	case errors.Is(err, ErrInvalidReference):
		httpx.JSONError(w, r, http.StatusUnprocessableEntity, "INVALID_REFERENCE", "Referenced record does not exist", nil)
	case errors.Is(err, ErrConflict):
		httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", "Record already exists", nil)
	case errors.Is(err, ErrInvalidStatus):
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
	default:
		h.log.WithError(err).WithField("request_id", httpx.RequestIDFrom(r)).Error("catalog request failed")
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

// pathID parses the numeric {id} segment. Malformed ids are reported as not found.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Record not found", nil)
		return 0, false
	}
	return id, true
}

func pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "Record not found", nil)
		return uuid.Nil, false
	}
	return id, true
}

// queryID reads an optional positive integer filter.
func queryID(r *http.Request, key string) (*int64, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, false
	}
	return &id, true
}

func page(r *http.Request) (Page, int, int) {
	p, size := httpx.PageParams(r)
	return Page{Limit: size, Offset: (p - 1) * size}, p, size
}

// Index handles GET /catalog/
func (h *HTTPHandler) Index(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Counts(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, counts, nil)
}

// ListLanguages handles GET /catalog/languages
func (h *HTTPHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	pg, p, size := page(r)
	languages, total, err := h.svc.ListLanguages(r.Context(), pg)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, languageViews(languages), httpx.PageMeta(p, size, total))
}

// CreateLanguage handles POST /catalog/languages
func (h *HTTPHandler) CreateLanguage(w http.ResponseWriter, r *http.Request) {
	var in LanguageInput
	if !httpx.DecodeAndValidate(w, r, &in) {
		return
	}
	l := in.Language()
	if err := h.svc.CreateLanguage(r.Context(), &l); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, newLanguageView(l))
}

// GetLanguage handles GET /catalog/language/{id}
func (h *HTTPHandler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	l, err := h.svc.GetLanguage(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, newLanguageView(l), nil)
}

// UpdateLanguage handles PUT /catalog/language/{id}
func (h *HTTPHandler) UpdateLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in LanguageInput
	if !httpx.DecodeAndValidate(w, r, &in) {
		return
	}
	l := in.Language()
	l.ID = id
	if err := h.svc.UpdateLanguage(r.Context(), &l); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, newLanguageView(l), nil)
}

// DeleteLanguage handles DELETE /catalog/language/{id}
func (h *HTTPHandler) DeleteLanguage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteLanguage(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}

// ListGenres handles GET /catalog/genres
func (h *HTTPHandler) ListGenres(w http.ResponseWriter, r *http.Request) {
	pg, p, size := page(r)
	genres, total, err := h.svc.ListGenres(r.Context(), pg)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, genreViews(genres), httpx.PageMeta(p, size, total))
}

// CreateGenre handles POST /catalog/genres
func (h *HTTPHandler) CreateGenre(w http.ResponseWriter, r *http.Request) {
	var in GenreInput
	if !httpx.DecodeAndValidate(w, r, &in) {
		return
	}
	g := in.Genre()
	if err := h.svc.CreateGenre(r.Context(), &g); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, newGenreView(g))
}

// GetGenre handles GET /catalog/genre/{id}
func (h *HTTPHandler) GetGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	g, err := h.svc.GetGenre(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, newGenreView(g), nil)
}

// UpdateGenre handles PUT /catalog/genre/{id}
func (h *HTTPHandler) UpdateGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in GenreInput
	if !httpx.DecodeAndValidate(w, r, &in) {
		return
	}
	g := in.Genre()
	g.ID = id
	if err := h.svc.UpdateGenre(r.Context(), &g); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, newGenreView(g), nil)
}

// DeleteGenre handles DELETE /catalog/genre/{id}
func (h *HTTPHandler) DeleteGenre(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteGenre(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}

// ListAuthors handles GET /catalog/authors
func (h *HTTPHandler) ListAuthors(w http.ResponseWriter, r *http.Request) {
	pg, p, size := page(r)
	authors, total, err := h.svc.ListAuthors(r.Context(), pg)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, authorViews(authors), httpx.PageMeta(p, size, total))
}

// CreateAuthor handles POST /catalog/authors
func (h *HTTPHandler) CreateAuthor(w http.ResponseWriter, r *http.Request) {
	var in AuthorInput
	if !httpx.DecodeAndValidate(w, r, &in) {
		return
	}
	a, err := in.Author()
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	if err := h.svc.CreateAuthor(r.Context(), &a); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, newAuthorView(a))
}

// GetAuthor handles GET /catalog/author/{id} and includes the author's books.
func (h *HTTPHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.svc.AuthorDetail(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, authorDetailView{
		Author: newAuthorView(detail.Author),
		Books:  bookViews(detail.Books),
	}, nil)
}

// UpdateAuthor handles PUT /catalog/author/{id}
func (h *HTTPHandler) UpdateAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in AuthorInput
	if !httpx.DecodeAndValidate(w, r, &in) {
		return
	}
	a, err := in.Author()
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	a.ID = id
	if err := h.svc.UpdateAuthor(r.Context(), &a); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, newAuthorView(a), nil)
}

// DeleteAuthor handles DELETE /catalog/author/{id}
func (h *HTTPHandler) DeleteAuthor(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteAuthor(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}

// ListBooks handles GET /catalog/books
func (h *HTTPHandler) ListBooks(w http.ResponseWriter, r *http.Request) {
	pg, p, size := page(r)
	q := BookQuery{Q: r.URL.Query().Get("q"), Page: pg}

	var ok bool
	if q.AuthorID, ok = queryID(r, "author_id"); !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "author_id must be a positive integer", nil)
		return
	}
	if q.LanguageID, ok = queryID(r, "language_id"); !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "language_id must be a positive integer", nil)
		return
	}
	if q.GenreID, ok = queryID(r, "genre_id"); !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "genre_id must be a positive integer", nil)
		return
	}

	books, total, err := h.svc.ListBooks(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, bookViews(books), httpx.PageMeta(p, size, total))
}

// CreateBook handles POST /catalog/books
func (h *HTTPHandler) CreateBook(w http.ResponseWriter, r *http.Request) {
	var in BookInput
	if !httpx.DecodeAndValidate(w, r, &in) {
		return
	}
	b := in.Book()
	created, err := h.svc.CreateBook(r.Context(), &b, in.GenreIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, newBookView(created))
}

// GetBook handles GET /catalog/book/{id} and includes the book's copies.
func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	detail, err := h.svc.BookDetail(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, bookDetailView{
		Book:      newBookView(detail.Book),
		Instances: instanceViews(detail.Instances),
	}, nil)
}

// UpdateBook handles PUT /catalog/book/{id}
func (h *HTTPHandler) UpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var in BookInput
	if !httpx.DecodeAndValidate(w, r, &in) {
		return
	}
	b := in.Book()
	b.ID = id
	updated, err := h.svc.UpdateBook(r.Context(), &b, in.GenreIDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, newBookView(updated), nil)
}

// DeleteBook handles DELETE /catalog/book/{id}
func (h *HTTPHandler) DeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteBook(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}

// ListInstances handles GET /catalog/bookinstances
func (h *HTTPHandler) ListInstances(w http.ResponseWriter, r *http.Request) {
	pg, p, size := page(r)
	q := InstanceQuery{Page: pg}

	var ok bool
	if q.BookID, ok = queryID(r, "book_id"); !ok {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "book_id must be a positive integer", nil)
		return
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, err := ParseLoanStatus(raw)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", err.Error(), nil)
			return
		}
		q.Status = status
	}

	instances, total, err := h.svc.ListInstances(r.Context(), q)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, instanceViews(instances), httpx.PageMeta(p, size, total))
}

// CreateInstance handles POST /catalog/bookinstances
func (h *HTTPHandler) CreateInstance(w http.ResponseWriter, r *http.Request) {
	var in InstanceInput
	if !httpx.DecodeAndValidate(w, r, &in) {
		return
	}
	bi, err := in.Instance()
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	created, err := h.svc.CreateInstance(r.Context(), &bi)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, newInstanceView(created))
}

// GetInstance handles GET /catalog/bookinstance/{id}
func (h *HTTPHandler) GetInstance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	bi, err := h.svc.GetInstance(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, newInstanceView(bi), nil)
}

// UpdateInstance handles PUT /catalog/bookinstance/{id}
func (h *HTTPHandler) UpdateInstance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	var in InstanceInput
	if !httpx.DecodeAndValidate(w, r, &in) {
		return
	}
	bi, err := in.Instance()
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", err.Error(), nil)
		return
	}
	bi.ID = id
	updated, err := h.svc.UpdateInstance(r.Context(), &bi)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, newInstanceView(updated), nil)
}

// DeleteInstance handles DELETE /catalog/bookinstance/{id}
func (h *HTTPHandler) DeleteInstance(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteInstance(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONNoContent(w)
}
