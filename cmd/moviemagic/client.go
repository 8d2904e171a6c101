package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client wraps HTTP calls to the moviemagic server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new moviemagic API client.
func NewClient(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a non-success response from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

func newAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Error != "" {
		return &APIError{Status: resp.StatusCode, Message: er.Error}
	}
	return &APIError{Status: resp.StatusCode, Message: strings.TrimSpace(string(body))}
}

func (c *Client) get(path string, result any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return newAPIError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any, result any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return newAPIError(resp)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}
	return nil
}

// API response types (mirror server types)

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type MovieSummary struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// Review fields carry whatever JSON the submitter sent.
type Review struct {
	Rating   any `json:"rating"`
	Comment  any `json:"comment"`
	Username any `json:"username"`
}

// MovieDetails keeps the commonly shown OMDb fields plus the raw document.
type MovieDetails struct {
	Title       string   `json:"Title"`
	Year        string   `json:"Year"`
	Rated       string   `json:"Rated"`
	Runtime     string   `json:"Runtime"`
	Genre       string   `json:"Genre"`
	Director    string   `json:"Director"`
	Actors      string   `json:"Actors"`
	Plot        string   `json:"Plot"`
	IMDBRating  string   `json:"imdbRating"`
	IMDBID      string   `json:"imdbID"`
	UserReviews []Review `json:"user_reviews"`

	Raw map[string]any `json:"-"`
}

type AddReviewRequest struct {
	Rating   any     `json:"rating"`
	Comment  string  `json:"comment"`
	Username *string `json:"username,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Reviews struct {
		Movies  int `json:"movies"`
		Reviews int `json:"reviews"`
	} `json:"reviews"`
}

func (c *Client) Search(query string) ([]MovieSummary, error) {
	params := url.Values{}
	params.Set("query", query)

	var resp []MovieSummary
	if err := c.get("/api/search?"+params.Encode(), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) Movie(imdbID string) (*MovieDetails, error) {
	var raw map[string]any
	if err := c.get("/api/movie/"+url.PathEscape(imdbID), &raw); err != nil {
		return nil, err
	}

	// Re-decode the raw document into the typed view.
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}
	var m MovieDetails
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode movie: %w", err)
	}
	m.Raw = raw
	return &m, nil
}

func (c *Client) Reviews(imdbID string) ([]Review, error) {
	var resp []Review
	if err := c.get("/api/review/"+url.PathEscape(imdbID), &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) AddReview(imdbID string, req AddReviewRequest) (*MessageResponse, error) {
	var resp MessageResponse
	if err := c.post("/api/review/"+url.PathEscape(imdbID), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Status() (*StatusResponse, error) {
	var resp StatusResponse
	if err := c.get("/api/status", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
