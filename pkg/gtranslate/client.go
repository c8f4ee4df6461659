package gtranslate

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	translate "google.golang.org/api/translate/v2"
)

// Client wraps the Google Cloud Translation v2 detect endpoint.
type Client struct {
	service *translate.Service
}

// NewClientFromAPIKey creates a client authenticated with a plain API key.
func NewClientFromAPIKey(ctx context.Context, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingCredentials
	}
	svc, err := translate.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromCredentialsFile creates a client from a Service Account JSON file path.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data)
}

// NewClientFromCredentialsJSON creates a client from raw Service Account JSON bytes.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentialsJSON, translate.CloudTranslationScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tokenSource := oauth2.ReuseTokenSource(nil, config.TokenSource(ctx))
	svc, err := translate.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := translate.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create translate service: %w", err)
	}
	return &Client{service: svc}, nil
}

// Detect returns the most confident language detection for text.
func (c *Client) Detect(ctx context.Context, text string) (Detection, error) {
	resp, err := c.service.Detections.List([]string{text}).Context(ctx).Do()
	if err != nil {
		return Detection{}, fmt.Errorf("failed to detect language: %w", err)
	}

	var best *translate.DetectionsResourceItem
	for _, group := range resp.Detections {
		for _, item := range group {
			if item == nil {
				continue
			}
			if best == nil || item.Confidence > best.Confidence {
				best = item
			}
		}
	}
	if best == nil || best.Language == "" || best.Language == "und" {
		return Detection{}, ErrNoDetection
	}

	return Detection{
		Language:   best.Language,
		Confidence: best.Confidence,
		IsReliable: best.IsReliable,
	}, nil
}
