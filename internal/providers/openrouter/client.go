package openrouter

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = fmt.Errorf("openrouter: api key is required: %w", domain.ErrMissingCredential)

// Options configures the OpenRouter client.
type Options struct {
	APIKey         string
	BaseURL        string
	Referer        string
	Title          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client talks to the OpenAI compatible chat completions API exposed by
// OpenRouter. Only vision prompts are used.
type Client struct {
	apiKey     string
	baseURL    string
	referer    string
	title      string
	httpClient *http.Client
	logger     *infra.Logger
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *imageURL `json:"image_url,omitempty"`
}

type imageURL struct {
	URL string `json:"url"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewClient constructs a client with defaults for every empty option.
func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://openrouter.ai/api/v1"
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		referer:    strings.TrimSpace(opts.Referer),
		title:      strings.TrimSpace(opts.Title),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.apiKey != ""
}

// AnalyzeImage sends the image as a data URI followed by the instruction.
func (c *Client) AnalyzeImage(ctx context.Context, model string, data []byte, mime, prompt string) (string, error) {
	if !c.HasCredentials() {
		return "", domain.NewFailure(domain.FailureMissingCredential, "openrouter", ErrMissingAPIKey)
	}
	if len(data) == 0 {
		return "", domain.NewFailure(domain.FailureHard, "openrouter", domain.ErrNoImage)
	}
	if strings.TrimSpace(mime) == "" {
		mime = http.DetectContentType(data)
	}
	payload := chatRequest{
		Model: model,
		Messages: []chatMessage{{
			Role: "user",
			Content: []contentPart{
				{Type: "text", Text: strings.TrimSpace(prompt)},
				{Type: "image_url", ImageURL: &imageURL{URL: "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)}},
			},
		}},
		MaxTokens: 1024,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("openrouter: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openrouter: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.referer != "" {
		req.Header.Set("HTTP-Referer", c.referer)
	}
	if c.title != "" {
		req.Header.Set("X-Title", c.title)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", domain.NewFailure(domain.FailureTransient, "openrouter", fmt.Errorf("http request: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", domain.NewFailure(domain.FailureTransient, "openrouter", fmt.Errorf("read response: %w", err))
	}

	var decoded chatResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	status := resp.StatusCode
	if status < 300 && decoded.Error != nil && decoded.Error.Code >= 400 {
		status = decoded.Error.Code
	}
	if status >= 300 {
		kind := domain.FailureForStatus(status)
		msg := strings.TrimSpace(string(raw))
		if decoded.Error != nil && decoded.Error.Message != "" {
			msg = decoded.Error.Message
		}
		err := fmt.Errorf("status %d: %s", status, msg)
		if kind == domain.FailureRateLimited {
			err = fmt.Errorf("%v: %w", err, domain.ErrRateLimited)
		}
		return "", domain.NewFailure(kind, "openrouter", err)
	}
	if decodeErr != nil {
		return "", domain.NewFailure(domain.FailureHard, "openrouter",
			fmt.Errorf("decode response: %v: %w", decodeErr, domain.ErrMalformedResponse))
	}
	for _, choice := range decoded.Choices {
		if text := strings.TrimSpace(choice.Message.Content); text != "" {
			c.logger.Debug().Str("model", model).Int("chars", len(text)).Msg("openrouter: analysed image")
			return text, nil
		}
	}
	return "", domain.NewFailure(domain.FailureHard, "openrouter",
		fmt.Errorf("no choices in response: %w", domain.ErrMalformedResponse))
}
