package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ytchat-web/internal/pkg/logger"
)

const (
	processVideoPath = "/api/v1/video/process"
	chatPath         = "/api/v1/chat"
	videoStatusPath  = "/api/v1/video/%s/status"
	healthPath       = "/health"
)

// Gateway is the single point of outbound HTTP communication with the RAG
// backend. Implementations normalize every failure into a *BackendError with
// a human-readable message.
type Gateway interface {
	ProcessVideo(ctx context.Context, youtubeURL string) (*ProcessVideoResponse, error)
	SendMessage(ctx context.Context, videoID, question string) (*ChatResponse, error)
	CheckVideoStatus(ctx context.Context, videoID string) (*VideoStatusResponse, error)
	CheckBackendHealth(ctx context.Context) (HealthResponse, error)
}

// Client talks to the backend with two independent transports: a shared
// client with a long timeout for business calls and a short-timeout client
// for the liveness probe, so a slow in-flight operation can never block
// connectivity polling.
type Client struct {
	baseURL string
	http    *http.Client
	probe   *http.Client
	logger  logger.ILogger
}

func NewClient(baseURL string, requestTimeout, healthTimeout time.Duration, log logger.ILogger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		probe:   &http.Client{Timeout: healthTimeout},
		logger:  log,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) ProcessVideo(ctx context.Context, youtubeURL string) (*ProcessVideoResponse, error) {
	var res ProcessVideoResponse
	err := c.doJSON(ctx, c.http, http.MethodPost, processVideoPath, ProcessVideoRequest{YoutubeURL: youtubeURL}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) SendMessage(ctx context.Context, videoID, question string) (*ChatResponse, error) {
	var res ChatResponse
	err := c.doJSON(ctx, c.http, http.MethodPost, chatPath, ChatRequest{VideoID: videoID, Question: question}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *Client) CheckVideoStatus(ctx context.Context, videoID string) (*VideoStatusResponse, error) {
	var res VideoStatusResponse
	err := c.doJSON(ctx, c.http, http.MethodGet, fmt.Sprintf(videoStatusPath, videoID), nil, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CheckBackendHealth probes liveness on the independent short-timeout
// transport. Any 2xx body counts as alive.
func (c *Client) CheckBackendHealth(ctx context.Context) (HealthResponse, error) {
	var res HealthResponse
	err := c.doJSON(ctx, c.probe, http.MethodGet, healthPath, nil, &res)
	if err != nil {
		return nil, err
	}
	return res, nil
}

// doJSON performs one round trip and applies the error normalization policy:
// timeout, then unreachable, then backend-reported payload, then no-response.
func (c *Client) doJSON(ctx context.Context, hc *http.Client, method, path string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("Gateway", "Outbound request", map[string]interface{}{
		"method": method,
		"url":    url,
	})

	res, err := hc.Do(req)
	if err != nil {
		return normalizeTransportError(err, c.baseURL)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return &BackendError{
			Kind:    ErrKindNoResponse,
			Message: fmt.Sprintf("No response from server. Please ensure the backend is running on %s", c.baseURL),
			cause:   err,
		}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		fallback := fmt.Sprintf("HTTP %d: %s", res.StatusCode, http.StatusText(res.StatusCode))
		return normalizeStatusError(res.StatusCode, resBody, fallback)
	}

	if out != nil {
		if err := json.Unmarshal(resBody, out); err != nil {
			return &BackendError{
				Kind:    ErrKindNoResponse,
				Message: fmt.Sprintf("No response from server. Please ensure the backend is running on %s", c.baseURL),
				cause:   err,
			}
		}
	}

	return nil
}

func extractErrorMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Detail != "" {
		return eb.Detail
	}
	return eb.Message
}
