package apify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/kapu/insta-insight-go/internal/constants"
	"github.com/kapu/insta-insight-go/pkg/errors"
)

// ActorRunner submits an actor job and returns its dataset items.
type ActorRunner interface {
	RunActorSync(ctx context.Context, actorID string, input any) ([]json.RawMessage, error)
}

// Client is a thin token-authenticated client for the Apify platform API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *zap.Logger
}

func NewClient(httpClient *http.Client, token string, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: constants.APIConfig.ApifyTimeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    constants.APIConfig.ApifyBaseURL,
		token:      token,
		logger:     logger,
	}
}

// RunActorSync starts an actor run, waits for it to finish and returns the
// items of its default dataset. The run-sync endpoint blocks server-side, so a
// single request covers submit, wait and retrieve.
func (c *Client) RunActorSync(ctx context.Context, actorID string, input any) ([]json.RawMessage, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("marshal actor input: %w", err)
	}

	reqURL := fmt.Sprintf("%s/acts/%s/run-sync-get-dataset-items?token=%s",
		c.baseURL, actorID, url.QueryEscape(c.token))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Starting actor run", zap.String("actor", actorID))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewAPIError("Apify request failed", 502, map[string]any{
			"actor": actorID,
		}).WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewAPIError("Failed to read Apify response", 502, map[string]any{
			"actor": actorID,
		}).WithCause(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("Actor run failed",
			zap.String("actor", actorID),
			zap.Int("status", resp.StatusCode),
		)
		return nil, errors.NewAPIError(fmt.Sprintf("Apify returned status %d", resp.StatusCode), resp.StatusCode, map[string]any{
			"actor": actorID,
			"body":  string(respBody),
		})
	}

	var items []json.RawMessage
	if err := json.Unmarshal(respBody, &items); err != nil {
		return nil, errors.NewAPIError("Malformed dataset response from Apify", 502, map[string]any{
			"actor": actorID,
		}).WithCause(err)
	}

	c.logger.Debug("Actor run completed",
		zap.String("actor", actorID),
		zap.Int("items", len(items)),
	)

	return items, nil
}
