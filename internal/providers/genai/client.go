package genai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
)

const (
	provider       = "gemini"
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-2.0-flash"
	maxReplyBytes  = 4 << 20
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = fmt.Errorf("gemini: api key is required: %w", domain.ErrMissingCredential)

// Sampling settings. Vision replies feed attribute extraction and stay close
// to deterministic; briefs are allowed more variety.
var (
	visionConfig = generationConfig{Temperature: 0.2, MaxOutputTokens: 1024}
	textConfig   = generationConfig{Temperature: 0.7, MaxOutputTokens: 2048}
)

type Options struct {
	APIKey         string
	BaseURL        string
	Model          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client calls the Gemini generateContent endpoint. The model is chosen per
// call so one client serves every Gemini entry of the vision queue.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
	logger  zerolog.Logger
}

// Image is an inline image part.
type Image struct {
	Data []byte
	MIME string
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts,omitempty"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens,omitempty"`
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason,omitempty"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason,omitempty"`
	} `json:"promptFeedback,omitempty"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code,omitempty"`
		Message string `json:"message,omitempty"`
		Status  string `json:"status,omitempty"`
	} `json:"error"`
}

func NewClient(opts Options) (*Client, error) {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	c := &Client{
		apiKey:  strings.TrimSpace(opts.APIKey),
		baseURL: strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/"),
		model:   strings.TrimSpace(opts.Model),
		http:    hc,
		logger:  zerolog.Nop(),
	}
	if c.baseURL == "" {
		c.baseURL = defaultBaseURL
	}
	if c.model == "" {
		c.model = defaultModel
	}
	if opts.Logger != nil {
		c.logger = *opts.Logger
	}
	return c, nil
}

// Model returns the default model identifier.
func (c *Client) Model() string { return c.model }

func (c *Client) HasCredentials() bool { return c.apiKey != "" }

// GenerateText sends a text-only prompt. An empty model uses the default.
func (c *Client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", domain.NewFailure(domain.FailureHard, provider, domain.ErrEmptyPrompt)
	}
	return c.generate(ctx, model, textConfig, []part{{Text: prompt}})
}

// AnalyzeImage sends an image with an instruction and returns the reply text.
func (c *Client) AnalyzeImage(ctx context.Context, model string, img Image, prompt string) (string, error) {
	if len(img.Data) == 0 {
		return "", domain.NewFailure(domain.FailureHard, provider, domain.ErrNoImage)
	}
	mime := strings.TrimSpace(img.MIME)
	if mime == "" {
		mime = http.DetectContentType(img.Data)
	}
	return c.generate(ctx, model, visionConfig, []part{
		{InlineData: &inlineData{MimeType: mime, Data: base64.StdEncoding.EncodeToString(img.Data)}},
		{Text: strings.TrimSpace(prompt)},
	})
}

func (c *Client) generate(ctx context.Context, model string, cfg generationConfig, parts []part) (string, error) {
	if !c.HasCredentials() {
		return "", domain.NewFailure(domain.FailureMissingCredential, provider, ErrMissingAPIKey)
	}
	model = strings.TrimSpace(model)
	if model == "" {
		model = c.model
	}

	var reply generateContentResponse
	err := c.post(ctx, "/models/"+url.PathEscape(model)+":generateContent", generateContentRequest{
		Contents:         []content{{Role: "user", Parts: parts}},
		GenerationConfig: &cfg,
	}, &reply)
	if err != nil {
		return "", err
	}

	text, finish := reply.text()
	if text == "" {
		reason := finish
		if reply.PromptFeedback != nil && reply.PromptFeedback.BlockReason != "" {
			reason = reply.PromptFeedback.BlockReason
		}
		return "", domain.NewFailure(domain.FailureHard, provider,
			fmt.Errorf("empty candidate text (reason %q): %w", reason, domain.ErrMalformedResponse))
	}
	c.logger.Debug().Str("model", model).Int("chars", len(text)).Str("finish", finish).Msg("gemini reply")
	return text, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.NewFailure(domain.FailureHard, provider, fmt.Errorf("encode request: %w", err))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return domain.NewFailure(domain.FailureHard, provider, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewFailure(domain.FailureTransient, provider, fmt.Errorf("http request: %w", err))
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return domain.NewFailure(domain.FailureTransient, provider, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode >= http.StatusBadRequest {
		kind := domain.FailureForStatus(resp.StatusCode)
		message := strings.TrimSpace(string(raw))
		var ae apiError
		if json.Unmarshal(raw, &ae) == nil && ae.Error.Message != "" {
			message = ae.Error.Message
			if ae.Error.Status == "RESOURCE_EXHAUSTED" {
				kind = domain.FailureRateLimited
			}
		}
		if kind == domain.FailureRateLimited {
			return domain.NewFailure(kind, provider, fmt.Errorf("status %d: %s: %w", resp.StatusCode, message, domain.ErrRateLimited))
		}
		return domain.NewFailure(kind, provider, fmt.Errorf("status %d: %s", resp.StatusCode, message))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return domain.NewFailure(domain.FailureHard, provider,
			fmt.Errorf("decode response: %v: %w", err, domain.ErrMalformedResponse))
	}
	return nil
}

// text returns the joined parts of the first candidate that has any.
func (r *generateContentResponse) text() (string, string) {
	for _, cand := range r.Candidates {
		var chunks []string
		for _, p := range cand.Content.Parts {
			if t := strings.TrimSpace(p.Text); t != "" {
				chunks = append(chunks, t)
			}
		}
		if len(chunks) > 0 {
			return strings.Join(chunks, "\n"), cand.FinishReason
		}
	}
	if len(r.Candidates) > 0 {
		return "", r.Candidates[0].FinishReason
	}
	return "", ""
}
