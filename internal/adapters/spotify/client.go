// Package spotify implements the catalog provider port against the Spotify
// Web API.
package spotify

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/harmoniq-labs/setlist/internal/core/ports"
)

const (
	// DefaultBaseURL is the production Spotify Web API root.
	DefaultBaseURL = "https://api.spotify.com/v1"

	defaultMaxRetries   = 3
	defaultGenreWorkers = 4
	defaultPageLimit    = 100
	featuresBatchSize   = 100
)

// Client is an HTTP client for the Spotify catalog.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	logger       zerolog.Logger
	maxRetries   uint64
	genreWorkers int
	pageLimit    int
}

// compile-time interface assertion
var _ ports.CatalogProvider = (*Client)(nil)

// NewClient constructs a Spotify client. httpClient should already inject
// authorization (see NewCredentialsClient); nil falls back to the default
// client for tests against unauthenticated fakes.
func NewClient(httpClient *http.Client, baseURL string, logger zerolog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient:   httpClient,
		baseURL:      strings.TrimRight(baseURL, "/"),
		logger:       logger,
		maxRetries:   defaultMaxRetries,
		genreWorkers: defaultGenreWorkers,
		pageLimit:    defaultPageLimit,
	}
}
