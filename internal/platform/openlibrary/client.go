package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://openlibrary.org"

type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
	backoff    time.Duration
}

func NewClient(userAgent string, rps float64, maxRetries int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    DefaultBaseURL,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		maxRetries: maxRetries,
		backoff:    time.Second,
	}
}

// WithBaseURL points the client at another Open Library compatible host.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimRight(baseURL, "/")
	return c
}

// SearchDoc is one hit of search.json.
type SearchDoc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorNames      []string `json:"author_name"`
	AuthorKeys       []string `json:"author_key"`
	ISBN             []string `json:"isbn"`
	FirstPublishYear int      `json:"first_publish_year"`
	Language         []string `json:"language"`
}

// SearchResponse matches search.json
type SearchResponse struct {
	NumFound int         `json:"numFound"`
	Docs     []SearchDoc `json:"docs"`
}

type Publisher struct {
	Name string `json:"name"`
}

// BookDetails matches api/books?jscmd=data
type BookDetails struct {
	Title       string      `json:"title"`
	Subtitle    string      `json:"subtitle"`
	Publishers  []Publisher `json:"publishers"`
	PublishDate string      `json:"publish_date"`
	Notes       string      `json:"notes"`
}

// AuthorDetails matches authors/{key}.json
type AuthorDetails struct {
	Name         string `json:"name"`
	PersonalName string `json:"personal_name"`
	BirthDate    string `json:"birth_date"`
	DeathDate    string `json:"death_date"`
	Bio          any    `json:"bio"` // string or {type, value}
}

func (c *Client) SearchBooks(ctx context.Context, subject string, limit int) (*SearchResponse, error) {
	u := fmt.Sprintf("%s/search.json?q=subject:%s&fields=key,title,author_name,author_key,isbn,first_publish_year,language&limit=%d",
		c.baseURL, url.QueryEscape(subject), limit)

	var res SearchResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// GetBooksByISBN returns details keyed by "ISBN:<isbn>".
func (c *Client) GetBooksByISBN(ctx context.Context, isbns []string) (map[string]BookDetails, error) {
	if len(isbns) == 0 {
		return nil, nil
	}

	bibkeys := make([]string, len(isbns))
	for i, isbn := range isbns {
		bibkeys[i] = "ISBN:" + isbn
	}

	u := fmt.Sprintf("%s/api/books?bibkeys=%s&jscmd=data&format=json",
		c.baseURL, strings.Join(bibkeys, ","))

	var res map[string]BookDetails
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (c *Client) GetAuthor(ctx context.Context, authorKey string) (*AuthorDetails, error) {
	key := strings.TrimPrefix(authorKey, "/authors/")
	u := fmt.Sprintf("%s/authors/%s.json", c.baseURL, key)

	var res AuthorDetails
	if err := c.get(ctx, u, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// get retries 429 and 5xx answers with exponential backoff.
func (c *Client) get(ctx context.Context, url string, target any) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			backoff := c.backoff << uint(i-1)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		retry, err := c.do(ctx, url, target)
		if err == nil {
			return nil
		}
		if !retry {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func (c *Client) do(ctx context.Context, url string, target any) (retry bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return true, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500, err
	}
	return false, json.NewDecoder(resp.Body).Decode(target)
}

// FormatBio flattens the two shapes Open Library uses for author bios.
func FormatBio(bio any) string {
	if b, ok := bio.(string); ok {
		return b
	}
	if m, ok := bio.(map[string]any); ok {
		if v, ok := m["value"].(string); ok {
			return v
		}
	}
	return ""
}
