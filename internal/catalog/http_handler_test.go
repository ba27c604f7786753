package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"locallibrary/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MockRepository) {
	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepository(ctrl)
	return NewHTTPHandler(NewService(mockRepo), testutil.DiscardLogger()), mockRepo
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    map[string]any  `json:"meta"`
	Error   struct {
		Code    string `json:"code"`
		Details []struct {
			Field string `json:"field"`
		} `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHTTPHandler_ListBooks(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	testBook := Book{
		ID:     1,
		Title:  "A Wizard of Earthsea",
		ISBN:   "9780547773742",
		Genres: genresNamed("Fantasy", "Adventure", "Philosophy", "Classic"),
	}

	t.Run("success", func(t *testing.T) {
		authorID := int64(4)
		mockRepo.EXPECT().ListBooks(gomock.Any(), BookQuery{
			AuthorID: &authorID,
			Q:        "wizard",
			Page:     Page{Limit: 10, Offset: 10},
		}).Return([]Book{testBook}, 11, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/books?author_id=4&q=wizard&page=2&page_size=10", nil)

		handler.ListBooks(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		assert.Equal(t, float64(2), env.Meta["total_pages"])

		var books []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &books))
		require.Len(t, books, 1)
		assert.Equal(t, "Fantasy, Adventure, Philosophy", books[0]["display_genre"])
		assert.Equal(t, "/catalog/book/1", books[0]["url"])
		assert.Equal(t, "A Wizard of Earthsea", books[0]["label"])
	})

	t.Run("bad filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/books?genre_id=abc", nil)

		handler.ListBooks(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("error", func(t *testing.T) {
		mockRepo.EXPECT().ListBooks(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("db error"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/books", nil)

		handler.ListBooks(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "INTERNAL_ERROR", decode(t, w).Error.Code)
	})
}

func TestHTTPHandler_GetBook(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("success with instances", func(t *testing.T) {
		bookID := int64(7)
		copyID := uuid.New()
		mockRepo.EXPECT().GetBook(gomock.Any(), bookID).Return(Book{ID: 7, Title: "Emma"}, nil)
		mockRepo.EXPECT().ListInstances(gomock.Any(), InstanceQuery{BookID: &bookID}).
			Return([]BookInstance{{ID: copyID, BookID: &bookID, BookTitle: "Emma", Status: StatusOnLoan}}, 1, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/book/7", nil)
		r.SetPathValue("id", "7")

		handler.GetBook(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var detail struct {
			Instances []map[string]any `json:"instances"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &detail))
		require.Len(t, detail.Instances, 1)
		assert.Equal(t, "Emma ("+copyID.String()+")", detail.Instances[0]["label"])
		assert.Equal(t, "On loan", detail.Instances[0]["status_label"])
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().GetBook(gomock.Any(), int64(8)).Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/book/8", nil)
		r.SetPathValue("id", "8")

		handler.GetBook(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/book/abc", nil)
		r.SetPathValue("id", "abc")

		handler.GetBook(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_CreateBook(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("validation", func(t *testing.T) {
		body := `{"title":"","summary":"s","isbn":"97801414395181234"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/books", strings.NewReader(body))

		handler.CreateBook(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		fields := []string{}
		for _, d := range env.Error.Details {
			fields = append(fields, d.Field)
		}
		assert.ElementsMatch(t, []string{"title", "isbn"}, fields)
	})

	t.Run("unknown author", func(t *testing.T) {
		mockRepo.EXPECT().CreateBook(gomock.Any(), gomock.Any(), []int64{2}).Return(ErrInvalidReference)

		body := `{"title":"Emma","summary":"s","isbn":"9780141439587","author_id":99,"genre_ids":[2]}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/books", strings.NewReader(body))

		handler.CreateBook(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().CreateBook(gomock.Any(), gomock.Any(), []int64{2, 1}).DoAndReturn(
			func(_ any, b *Book, _ []int64) error {
				b.ID = 3
				return nil
			})
		mockRepo.EXPECT().GetBook(gomock.Any(), int64(3)).Return(Book{ID: 3, Title: "Emma", Genres: genresNamed("Classic", "Romance")}, nil)

		body := `{"title":"Emma","summary":"s","isbn":"9780141439587","genre_ids":[2,1]}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/books", strings.NewReader(body))

		handler.CreateBook(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"display_genre":"Classic, Romance"`)
	})
}

func TestHTTPHandler_CreateAuthor(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		born := DateOf(1775, time.December, 16)
		mockRepo.EXPECT().CreateAuthor(gomock.Any(), &Author{FirstName: "Jane", LastName: "Austen", DateOfBirth: born}).
			DoAndReturn(func(_ any, a *Author) error {
				a.ID = 1
				return nil
			})

		body := `{"first_name":"Jane","last_name":"Austen","date_of_birth":"1775-12-16"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/authors", strings.NewReader(body))

		handler.CreateAuthor(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"label":"Austen, Jane"`)
		assert.Contains(t, w.Body.String(), `"url":"/catalog/author/1"`)
	})

	t.Run("bad date", func(t *testing.T) {
		body := `{"first_name":"Jane","last_name":"Austen","date_of_birth":"16/12/1775"}`
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/authors", strings.NewReader(body))

		handler.CreateAuthor(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_DeleteAuthor(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("success", func(t *testing.T) {
		mockRepo.EXPECT().DeleteAuthor(gomock.Any(), int64(4)).Return(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/catalog/author/4", nil)
		r.SetPathValue("id", "4")

		handler.DeleteAuthor(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().DeleteAuthor(gomock.Any(), int64(5)).Return(ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodDelete, "/catalog/author/5", nil)
		r.SetPathValue("id", "5")

		handler.DeleteAuthor(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHTTPHandler_CreateInstance(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("default status", func(t *testing.T) {
		var created BookInstance
		mockRepo.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, bi *BookInstance) error {
				created = *bi
				return nil
			})
		mockRepo.EXPECT().GetInstance(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ any, id uuid.UUID) (BookInstance, error) {
				return created, nil
			})

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/bookinstances", strings.NewReader(`{"imprint":"First edition"}`))

		handler.CreateInstance(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, StatusMaintenance, created.Status)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Contains(t, w.Body.String(), `"status":"m"`)
	})

	t.Run("unknown status", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/bookinstances", strings.NewReader(`{"imprint":"x","status":"lost"}`))

		handler.CreateInstance(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decode(t, w)
		require.Len(t, env.Error.Details, 1)
		assert.Equal(t, "status", env.Error.Details[0].Field)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/catalog/bookinstances", strings.NewReader(`{"imprint":`))

		handler.CreateInstance(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_ListInstances(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	t.Run("status filter", func(t *testing.T) {
		mockRepo.EXPECT().ListInstances(gomock.Any(), InstanceQuery{
			Status: StatusAvailable,
			Page:   Page{Limit: 20, Offset: 0},
		}).Return([]BookInstance{}, 0, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/bookinstances?status=a", nil)

		handler.ListInstances(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/catalog/bookinstances?status=q", nil)

		handler.ListInstances(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHTTPHandler_GetInstanceMalformedID(t *testing.T) {
	handler, _ := newTestHandler(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/catalog/bookinstance/42", nil)
	r.SetPathValue("id", "42")

	handler.GetInstance(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHTTPHandler_Register(t *testing.T) {
	handler, mockRepo := newTestHandler(t)
	mux := http.NewServeMux()
	handler.Register(mux)

	mockRepo.EXPECT().UpdateLanguage(gomock.Any(), &Language{ID: 2, Name: "Japanese"}).Return(nil)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.NewRequest(http.MethodPut, "/catalog/language/2", LanguageInput{Name: "Japanese"}))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	data, ok := resp.Body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Japanese", data["label"])
	assert.Equal(t, float64(2), data["id"])
}

func TestHTTPHandler_InstanceRoundTrip(t *testing.T) {
	handler, mockRepo := newTestHandler(t)
	mux := http.NewServeMux()
	handler.Register(mux)

	id := uuid.New()
	bookID := int64(3)
	stored := BookInstance{
		ID:        id,
		BookID:    &bookID,
		Imprint:   "Folio Society",
		DueBack:   DateOf(2030, time.May, 1),
		Status:    StatusOnLoan,
		BookTitle: "Emma",
	}
	mockRepo.EXPECT().GetInstance(gomock.Any(), id).Return(stored, nil).Times(2)
	mockRepo.EXPECT().UpdateInstance(gomock.Any(), &BookInstance{
		ID:      id,
		BookID:  &bookID,
		Imprint: "Folio Society",
		DueBack: DateOf(2030, time.May, 1),
		Status:  StatusOnLoan,
	}).Return(nil)

	path := "/catalog/bookinstance/" + id.String()

	got := httptest.NewRecorder()
	mux.ServeHTTP(got, testutil.NewRequest(http.MethodGet, path, nil))
	require.Equal(t, http.StatusOK, got.Code)
	assert.Contains(t, got.Body.String(), `"due_back":"2030-05-01"`)

	var in InstanceInput
	require.NoError(t, json.Unmarshal(decode(t, got).Data, &in))

	put := httptest.NewRecorder()
	mux.ServeHTTP(put, testutil.NewRequest(http.MethodPut, path, in))

	assert.Equal(t, http.StatusOK, put.Code, put.Body.String())
	assert.Contains(t, put.Body.String(), `"due_back":"2030-05-01"`)
}

func TestHTTPHandler_AuthorDatesUseDateLayout(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	mockRepo.EXPECT().GetAuthor(gomock.Any(), int64(1)).Return(Author{
		ID: 1, FirstName: "Jane", LastName: "Austen",
		DateOfBirth: DateOf(1775, time.December, 16),
		DateOfDeath: DateOf(1817, time.July, 18),
	}, nil)
	mockRepo.EXPECT().ListBooks(gomock.Any(), gomock.Any()).Return(nil, 0, nil)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/catalog/author/1", nil)
	r.SetPathValue("id", "1")

	handler.GetAuthor(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"date_of_birth":"1775-12-16"`)
	assert.Contains(t, w.Body.String(), `"date_of_death":"1817-07-18"`)
}

func TestHTTPHandler_CreateInstanceDuplicateID(t *testing.T) {
	handler, mockRepo := newTestHandler(t)

	id := uuid.New()
	first := mockRepo.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).Return(nil)
	mockRepo.EXPECT().GetInstance(gomock.Any(), id).Return(BookInstance{ID: id, Imprint: "x", Status: StatusMaintenance}, nil).After(first)
	mockRepo.EXPECT().CreateInstance(gomock.Any(), gomock.Any()).Return(fmt.Errorf("insert book instance: %w", ErrConflict))

	body := InstanceInput{ID: id.String(), Imprint: "x"}

	w := httptest.NewRecorder()
	handler.CreateInstance(w, testutil.NewRequest(http.MethodPost, "/catalog/bookinstances", body))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	handler.CreateInstance(w, testutil.NewRequest(http.MethodPost, "/catalog/bookinstances", body))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "CONFLICT", decode(t, w).Error.Code)
}
