package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ImageBaseW500 prefixes poster paths.
const ImageBaseW500 = "https://image.tmdb.org/t/p/w500"

// Client is the TMDB API client used by the catalog sync.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a new TMDB API client.
func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// DiscoverResponse is the TMDB discover/movie response.
type DiscoverResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Movie is a movie from TMDB discover results.
type Movie struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	VoteAverage float64 `json:"vote_average"`
	PosterPath  string  `json:"poster_path"`
	GenreIDs    []int   `json:"genre_ids"`
}

// ReleaseYear parses the year out of ReleaseDate, or returns 0.
func (m Movie) ReleaseYear() int {
	if len(m.ReleaseDate) < 4 {
		return 0
	}
	y, err := strconv.Atoi(m.ReleaseDate[:4])
	if err != nil {
		return 0
	}
	return y
}

// PosterURL returns the w500 poster URL, or "" when there is no poster.
func (m Movie) PosterURL() string {
	if m.PosterPath == "" {
		return ""
	}
	return ImageBaseW500 + m.PosterPath
}

// Genre is a genre from TMDB.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreListResponse is the TMDB genre/movie/list response.
type GenreListResponse struct {
	Genres []Genre `json:"genres"`
}

// DiscoverMovies fetches one page of popular movies.
func (c *Client) DiscoverMovies(ctx context.Context, page int) (*DiscoverResponse, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("sort_by", "popularity.desc")
	q.Set("page", strconv.Itoa(page))

	slog.Debug("fetching TMDB discover", "page", page)
	var result DiscoverResponse
	if err := c.getJSON(ctx, "/discover/movie", q, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch discover page %d: %w", page, err)
	}
	return &result, nil
}

// GetGenres fetches all movie genres.
func (c *Client) GetGenres(ctx context.Context) ([]Genre, error) {
	q := url.Values{}
	q.Set("api_key", c.apiKey)

	slog.Debug("fetching TMDB genres")
	var result GenreListResponse
	if err := c.getJSON(ctx, "/genre/movie/list", q, &result); err != nil {
		return nil, fmt.Errorf("failed to fetch genres: %w", err)
	}
	return result.Genres, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("TMDB API returned status %d: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
