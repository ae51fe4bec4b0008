// Package github provides a minimal client for the GitHub REST API, covering
// only issue-comment listing.
package github

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// baseURL is the root endpoint for the GitHub REST API.
const baseURL = "https://api.github.com"

// perPage is the page size used when listing comments.
const perPage = 100

// Client is a minimal GitHub API client.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
}

// NewClient returns a GitHub client authenticated with the given token.
// An empty token sends unauthenticated requests (subject to lower rate limits).
func NewClient(token string) *Client {
	return &Client{
		token:   token,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// IssueComment holds the fields we need from the issue-comments endpoint.
type IssueComment struct {
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	User      struct {
		Login string `json:"login"`
	} `json:"user"`
}

// get performs an authenticated GET request against the GitHub API and
// JSON-decodes the response body into out.
func (c *Client) get(path string, out interface{}) error {
	req, err := http.NewRequest("GET", c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: HTTP %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ListIssueComments returns all comments on the issue in creation order,
// following pagination until a short page.
func (c *Client) ListIssueComments(owner, repo string, number int) ([]IssueComment, error) {
	var all []IssueComment
	for page := 1; ; page++ {
		var batch []IssueComment
		path := fmt.Sprintf("/repos/%s/%s/issues/%d/comments?per_page=%d&page=%d",
			owner, repo, number, perPage, page)
		if err := c.get(path, &batch); err != nil {
			return nil, err
		}
		all = append(all, batch...)
		if len(batch) < perPage {
			return all, nil
		}
	}
}
