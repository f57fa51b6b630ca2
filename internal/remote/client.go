package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/phenobase/trait-extractor/internal/adapter"
	"github.com/phenobase/trait-extractor/internal/api"
	"github.com/phenobase/trait-extractor/internal/common"
)

// Client talks to a peer extraction service over the fixed HTTP/JSON
// protocol. Connect and read timeouts are split: dialing should fail
// fast, while reads stay generous because remote inference is slow.
type Client struct {
	cfg        common.RemoteConfig
	httpClient *http.Client
	log        *slog.Logger
}

func NewClient(cfg common.RemoteConfig, log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	if cfg.ConnectTimeout <= 0 {
		cfg.ConnectTimeout = 5 * time.Second
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = 10 * time.Minute
	}
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.ReadTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: cfg.ConnectTimeout}).DialContext,
			},
		},
		log: log,
	}
}

// ExtractTriples submits documents for extraction and returns the
// normalized triples from the peer. Every triple in the response is
// validated against the canonical schema before being handed back.
func (c *Client) ExtractTriples(ctx context.Context, req api.ExtractRequest) (*api.ExtractResponse, error) {
	rid := uuid.New().String()
	start := time.Now()
	c.log.Info("remote.extract.start",
		"req_id", rid,
		"profile", req.ModelProfile,
		"documents", len(req.Documents),
	)

	raw, err := c.post(ctx, "/extract_triples", req)
	if err != nil {
		c.log.Error("remote.extract.failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, err
	}

	var resp api.ExtractResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, common.NewRemoteServiceError("decode extract response", err)
	}
	if err := c.validateTriples(raw); err != nil {
		return nil, common.NewRemoteServiceError("peer returned malformed triples", err)
	}

	c.log.Info("remote.extract.ok",
		"req_id", rid,
		"total_triples", resp.TotalTriples,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return &resp, nil
}

func (c *Client) TrainModel(ctx context.Context, req api.TrainRequest) (*api.TrainResponse, error) {
	raw, err := c.post(ctx, "/train_model", req)
	if err != nil {
		return nil, err
	}
	var resp api.TrainResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, common.NewRemoteServiceError("decode train response", err)
	}
	return &resp, nil
}

func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	raw, err := c.get(ctx, "/health")
	if err != nil {
		return nil, err
	}
	var resp api.HealthResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, common.NewRemoteServiceError("decode health response", err)
	}
	return &resp, nil
}

func (c *Client) Models(ctx context.Context) ([]map[string]any, error) {
	raw, err := c.get(ctx, "/models")
	if err != nil {
		return nil, err
	}
	var models []map[string]any
	if err := json.Unmarshal(raw, &models); err != nil {
		return nil, common.NewRemoteServiceError("decode models response", err)
	}
	return models, nil
}

func (c *Client) UnloadModel(ctx context.Context, modelProfile string) error {
	_, err := c.post(ctx, "/unload_model", api.UnloadRequest{ModelProfile: modelProfile})
	return err
}

func (c *Client) UnloadAll(ctx context.Context) error {
	_, err := c.post(ctx, "/unload_all", struct{}{})
	return err
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url(path), bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path), nil)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.NewRemoteServiceError(fmt.Sprintf("%s %s", req.Method, req.URL.Path), err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("peer response body close error", "error", err)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil, common.NewRemoteServiceError("read peer response", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, common.NewRemoteServiceError(
			fmt.Sprintf("peer status %d: %s", resp.StatusCode, truncate(buf.String(), 512)), nil)
	}
	return buf.Bytes(), nil
}

func (c *Client) url(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

// validateTriples checks every triple dict in a raw extract response
// against the canonical schema.
func (c *Client) validateTriples(raw []byte) error {
	var envelope struct {
		Triples []json.RawMessage `json:"triples"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return err
	}
	schema := adapter.CanonicalTripleSchema()
	for i, t := range envelope.Triples {
		if err := adapter.ValidateJSONAgainstSchema(schema, t); err != nil {
			return fmt.Errorf("triple %d: %w", i, err)
		}
	}
	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
