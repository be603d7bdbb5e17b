// Package spotify wraps the Spotify Web API for mood-based track
// discovery. The client owns its credential explicitly: token refresh
// happens through Refresh under caller control rather than on a
// background timer, so tests can drive the clock.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/sony/gobreaker"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ErrNotConfigured is returned when the client has no credentials.
var ErrNotConfigured = errors.New("spotify client is not configured")

// refreshMargin renews the token this long before it actually expires.
const refreshMargin = time.Minute

// Client calls the Spotify Web API using the client-credentials flow.
type Client struct {
	creds   *clientcredentials.Config
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	now     func() time.Time

	mu    sync.Mutex
	token *oauth2.Token
	api   *spotify.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the transport used for token and API calls.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

// WithClock sets the time source used for token expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithTokenURL overrides the token endpoint, for tests.
func WithTokenURL(url string) Option {
	return func(c *Client) { c.creds.TokenURL = url }
}

// New creates a Spotify client. No network call happens until the first
// Refresh or API call.
func New(clientID, clientSecret string, opts ...Option) *Client {
	retry := retryablehttp.NewClient()
	retry.RetryMax = 3
	retry.RetryWaitMin = 200 * time.Millisecond
	retry.RetryWaitMax = 2 * time.Second
	retry.Logger = nil

	settings := gobreaker.Settings{
		Name:        "spotify-api",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
	}

	c := &Client{
		creds: &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     spotifyauth.TokenURL,
		},
		http:    retry.StandardClient(),
		breaker: gobreaker.NewCircuitBreaker(settings),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether credentials are present.
func (c *Client) Configured() bool {
	return c.creds.ClientID != "" && c.creds.ClientSecret != ""
}

// NeedsRefresh reports whether the access token is missing or expires
// within the refresh margin.
func (c *Client) NeedsRefresh() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.needsRefreshLocked()
}

func (c *Client) needsRefreshLocked() bool {
	if c.token == nil {
		return true
	}
	return !c.token.Expiry.IsZero() && c.now().Add(refreshMargin).After(c.token.Expiry)
}

// Refresh performs a client-credentials grant and rebuilds the API
// client with the fresh token.
func (c *Client) Refresh(ctx context.Context) error {
	if !c.Configured() {
		return ErrNotConfigured
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.http)
	token, err := c.creds.Token(ctx)
	if err != nil {
		return fmt.Errorf("requesting access token: %w", err)
	}

	c.mu.Lock()
	c.token = token
	c.api = spotify.New(spotifyauth.New().Client(ctx, token))
	c.mu.Unlock()
	return nil
}

// ensure returns a ready API client, refreshing the token if needed.
func (c *Client) ensure(ctx context.Context) (*spotify.Client, error) {
	c.mu.Lock()
	stale := c.needsRefreshLocked()
	api := c.api
	c.mu.Unlock()

	if stale || api == nil {
		if err := c.Refresh(ctx); err != nil {
			return nil, err
		}
		c.mu.Lock()
		api = c.api
		c.mu.Unlock()
	}
	return api, nil
}

// call runs fn behind the circuit breaker. Repeated upstream failures
// open the breaker and fail fast until the cool-off elapses.
func (c *Client) call(ctx context.Context, fn func(api *spotify.Client) error) error {
	api, err := c.ensure(ctx)
	if err != nil {
		return err
	}

	_, err = c.breaker.Execute(func() (interface{}, error) {
		return nil, fn(api)
	})
	return err
}

// Healthy reports whether the client can reach the Spotify API. With the
// client-credentials flow the cheapest liveness signal is a token grant.
func (c *Client) Healthy(ctx context.Context) bool {
	if !c.Configured() {
		return false
	}
	if !c.NeedsRefresh() {
		return true
	}
	return c.Refresh(ctx) == nil
}
