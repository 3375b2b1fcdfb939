package supabase

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"vocablo/app/config"
)

// Client wraps HTTP access to the hosted auth backend. The public key
// authorizes anonymous auth calls; the service key, when configured, unlocks
// the admin surface used for sign-up compensation.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a provider client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if !isValidURL(cfg.SupabaseURL) {
		return nil, fmt.Errorf("invalid provider URL: %s", cfg.SupabaseURL)
	}
	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("provider anon key is required")
	}

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	logger.Info("provider client initialized", "url", cfg.SupabaseURL,
		"admin_enabled", cfg.SupabaseServiceKey != "")

	return &Client{
		baseURL:    cfg.SupabaseURL,
		anonKey:    cfg.SupabaseAnonKey,
		serviceKey: cfg.SupabaseServiceKey,
		httpClient: httpClient,
		logger:     logger.With("component", "supabase"),
	}, nil
}

// BaseURL returns the provider base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// HealthCheck verifies the provider's auth API is reachable.
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}
	req.Header.Set("apikey", c.anonKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach provider auth API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("provider auth API returned status %d", resp.StatusCode)
	}
	return nil
}

// isValidURL validates if a URL is properly formatted.
func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}
