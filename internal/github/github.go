// Package github fetches public repository metadata for the project cards.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the public REST API.
const DefaultBaseURL = "https://api.github.com"

// FailureMessage is shown in place of the cards when the fetch fails.
const FailureMessage = "Unable to load repositories right now. Please visit GitHub directly."

// ErrUnavailable wraps every failure to obtain a repository list.
var ErrUnavailable = errors.New("repository list unavailable")

// Repo is the subset of repository metadata rendered into a card.
type Repo struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Language        string `json:"language"`
	StargazersCount int    `json:"stargazers_count"`
	HTMLURL         string `json:"html_url"`
}

// Client performs a single request per ListRepos call, with no retry.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	PerPage    int
}

// NewClient returns a client against baseURL, or the public API when empty.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		PerPage:    6,
	}
}

// ListRepos returns the user's most recently updated public repositories.
func (c *Client) ListRepos(ctx context.Context, user string) ([]Repo, error) {
	if user == "" {
		return nil, fmt.Errorf("%w: no user configured", ErrUnavailable)
	}

	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %v", ErrUnavailable, err)
	}
	u = u.JoinPath("users", user, "repos")
	q := u.Query()
	q.Set("sort", "updated")
	if c.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(c.PerPage))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	hc := c.HTTPClient
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var repos []Repo
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("%w: decode: %v", ErrUnavailable, err)
	}
	return repos, nil
}
