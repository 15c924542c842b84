package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/mcobzarenco/zentui/internal/model"
)

const (
	defaultBaseURL = "https://api.github.com"
	acceptAPIv3    = "application/vnd.github.v3+json"
	userAgent      = "zentui/0.1.0"
)

// Config holds the inputs for creating a GitHub API client.
type Config struct {
	// Token is a personal access token with the `repo` scope.
	Token string

	// BaseURL overrides the API root, e.g. for tests. Defaults to the
	// public GitHub API.
	BaseURL string

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client is a minimal typed GitHub REST v3 client covering the two
// calls the dashboard makes: repository lookup and issue fetch.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	logger     *slog.Logger
}

// NewClient creates a GitHub API client from the given configuration.
func NewClient(config Config) (*Client, error) {
	if config.Token == "" {
		return nil, fmt.Errorf("github: no token configured")
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("github: bad base URL %q: %w", baseURL, err)
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		token:      config.Token,
		logger:     logger,
	}, nil
}

// GetRepo resolves "owner/name" to repository metadata.
func (c *Client) GetRepo(ctx context.Context, fullName string) (model.Repo, error) {
	var repo model.Repo
	err := c.get(ctx, fmt.Sprintf("/repos/%s", fullName), &repo)
	return repo, err
}

// GetIssue fetches the full detail for one issue.
func (c *Client) GetIssue(ctx context.Context, fullName string, number model.IssueNumber) (model.Issue, error) {
	var issue model.Issue
	err := c.get(ctx, fmt.Sprintf("/repos/%s/issues/%d", fullName, number), &issue)
	return issue, err
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	endpoint := c.baseURL + path
	c.logger.Debug("github GET", "url", endpoint)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("github: build request: %w", err)
	}
	request.Header.Set("Accept", acceptAPIv3)
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set("Authorization", "token "+c.token)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("github: GET %s: %w", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return &StatusError{Path: path, Code: response.StatusCode}
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("github: decode %s: %w", path, err)
	}
	return nil
}

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("github: GET %s returned %d %s", e.Path, e.Code, http.StatusText(e.Code))
}
