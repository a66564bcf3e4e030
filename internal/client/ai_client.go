package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"agency-console-api/internal/config"
	"agency-console-api/internal/metrics"
)

// AIClientInterface defines the interface for the generative content API
type AIClientInterface interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string) ([]byte, error)
}

// AIClient calls an OpenAI-compatible REST API for text and image
// generation. Transient overload responses (429/503) are retried up to
// maxAttempts with a linearly increasing delay; any other error aborts
// immediately.
type AIClient struct {
	baseURL     string
	apiKey      string
	model       string
	imageModel  string
	httpClient  *http.Client
	logger      *zap.Logger
	metrics     *metrics.Metrics
	maxAttempts int
	retryDelay  time.Duration
}

// NewAIClient creates a new AI client
func NewAIClient(cfg *config.AIConfig, logger *zap.Logger, m *metrics.Metrics) *AIClient {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &AIClient{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		imageModel: cfg.ImageModel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger:      logger,
		metrics:     m,
		maxAttempts: 3,
		retryDelay:  2 * time.Second,
	}
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type imageGenerationRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageGenerationResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// GenerateText runs a chat completion and returns the first choice
func (c *AIClient) GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	body, err := c.postWithRetry(ctx, "/v1/chat/completions", "chat", reqBody)
	if err != nil {
		return "", err
	}

	var result chatCompletionResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("AI API returned no choices")
	}

	return result.Choices[0].Message.Content, nil
}

// GenerateImage runs an image generation and returns the decoded image bytes
func (c *AIClient) GenerateImage(ctx context.Context, prompt string) ([]byte, error) {
	reqBody := imageGenerationRequest{
		Model:          c.imageModel,
		Prompt:         prompt,
		N:              1,
		Size:           "1024x1024",
		ResponseFormat: "b64_json",
	}

	body, err := c.postWithRetry(ctx, "/v1/images/generations", "image", reqBody)
	if err != nil {
		return nil, err
	}

	var result imageGenerationResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("AI API error: %s", result.Error.Message)
	}
	if len(result.Data) == 0 {
		return nil, fmt.Errorf("AI API returned no images")
	}

	image, err := base64.StdEncoding.DecodeString(result.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image payload: %w", err)
	}
	return image, nil
}

// postWithRetry posts a JSON body and retries transient overload
// responses with a linearly increasing delay (delay, 2*delay, ...)
func (c *AIClient) postWithRetry(ctx context.Context, path, operation string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			delay := time.Duration(attempt-1) * c.retryDelay
			c.logger.Warn("AI API overloaded, retrying",
				zap.String("operation", operation),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay),
			)
			if c.metrics != nil {
				c.metrics.IncrementAIRetry()
			}
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		body, status, err := c.post(ctx, path, operation, jsonData)
		if err != nil {
			if c.metrics != nil {
				c.metrics.RecordExternalError(metrics.CollaboratorAI, "transport")
			}
			return nil, err
		}

		switch {
		case status >= 200 && status < 300:
			return body, nil
		case status == http.StatusTooManyRequests || status == http.StatusServiceUnavailable:
			// transient overload, retry
			lastErr = fmt.Errorf("AI API overloaded (status %d)", status)
		default:
			if c.metrics != nil {
				c.metrics.RecordExternalError(metrics.CollaboratorAI, "api")
			}
			return nil, fmt.Errorf("AI API error (status %d): %s", status, string(body))
		}
	}

	if c.metrics != nil {
		c.metrics.RecordExternalError(metrics.CollaboratorAI, "overloaded")
	}
	return nil, fmt.Errorf("AI API still overloaded after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *AIClient) post(ctx context.Context, path, operation string, jsonData []byte) ([]byte, int, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response: %w", err)
	}

	if c.metrics != nil {
		c.metrics.RecordExternalRequest(metrics.CollaboratorAI, operation, resp.StatusCode, time.Since(start))
	}
	c.logger.Debug("AI API request completed",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return body, resp.StatusCode, nil
}
