package zenhub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mcobzarenco/zentui/internal/model"
)

const defaultBaseURL = "https://api.zenhub.com"

// Config holds the inputs for creating a ZenHub API client.
type Config struct {
	// Token is a ZenHub API token, sent as X-Authentication-Token.
	Token string

	// BaseURL overrides the API root, e.g. for tests.
	BaseURL string

	// HTTPClient defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Client talks to the ZenHub p1 API. The dashboard only needs the
// oldest board for a repository.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	logger     *slog.Logger
}

// NewClient creates a ZenHub API client from the given configuration.
func NewClient(config Config) (*Client, error) {
	if config.Token == "" {
		return nil, fmt.Errorf("zenhub: no token configured")
	}
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
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

// GetOldestBoard fetches the oldest board attached to the repository.
func (c *Client) GetOldestBoard(ctx context.Context, repoID model.RepoID) (model.Board, error) {
	var board model.Board
	path := fmt.Sprintf("/p1/repositories/%d/board", repoID)
	url := c.baseURL + path
	c.logger.Debug("zenhub GET", "url", url)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return board, fmt.Errorf("zenhub: build request: %w", err)
	}
	request.Header.Set("X-Authentication-Token", c.token)

	response, err := c.httpClient.Do(request)
	if err != nil {
		return board, fmt.Errorf("zenhub: GET %s: %w", path, err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return board, fmt.Errorf("zenhub: GET %s returned %d %s",
			path, response.StatusCode, http.StatusText(response.StatusCode))
	}
	if err := json.NewDecoder(response.Body).Decode(&board); err != nil {
		return board, fmt.Errorf("zenhub: decode %s: %w", path, err)
	}
	return board, nil
}
