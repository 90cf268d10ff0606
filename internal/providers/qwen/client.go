package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
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
	provider       = "qwen"
	defaultBaseURL = "https://dashscope-intl.aliyuncs.com/api/v1"
	defaultModel   = "qwen-image-plus"
	defaultSize    = "1328*1328"
	generationPath = "/services/aigc/multimodal-generation/generation"

	// maxImageBytes caps a downloaded render.
	maxImageBytes = 20 << 20
)

// ErrMissingAPIKey indicates that the client was configured without credentials.
var ErrMissingAPIKey = fmt.Errorf("qwen: api key is required: %w", domain.ErrMissingCredential)

// Options configures the DashScope client.
type Options struct {
	APIKey         string
	BaseURL        string
	Model          string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client renders product photos through DashScope's qwen-image models.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
	logger  zerolog.Logger
}

// ImageRequest is one render call. Size uses DashScope's "W*H" notation.
type ImageRequest struct {
	Prompt         string
	NegativePrompt string
	Size           string
	Seed           int
	RequestID      string
}

// ImageAsset is a downloaded render.
type ImageAsset struct {
	URL    string
	Data   []byte
	Format string
	Width  int
	Height int
}

type generationRequest struct {
	Model      string           `json:"model"`
	Input      generationInput  `json:"input"`
	Parameters generationParams `json:"parameters"`
}

type generationInput struct {
	Messages []message `json:"messages"`
}

type message struct {
	Role    string        `json:"role"`
	Content []contentPart `json:"content"`
}

type contentPart struct {
	Text  string `json:"text,omitempty"`
	Image string `json:"image,omitempty"`
}

type generationParams struct {
	NegativePrompt string `json:"negative_prompt,omitempty"`
	Size           string `json:"size"`
	PromptExtend   bool   `json:"prompt_extend"`
	Watermark      bool   `json:"watermark"`
	Seed           *int   `json:"seed,omitempty"`
}

type generationResponse struct {
	Output struct {
		Choices []struct {
			Message message `json:"message"`
		} `json:"choices"`
	} `json:"output"`
	Usage struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"usage"`
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Message   string `json:"message"`
}

func NewClient(opts Options) (*Client, error) {
	hc := opts.HTTPClient
	if hc == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 45 * time.Second
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
	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, fmt.Errorf("qwen: base url: %w", err)
	}
	if opts.Logger != nil {
		c.logger = *opts.Logger
	}
	return c, nil
}

func (c *Client) Model() string { return c.model }

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool { return c.apiKey != "" }

// GenerateImage renders one image and downloads it. Every error is a
// *domain.Failure naming the provider.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (*ImageAsset, error) {
	if !c.HasCredentials() {
		return nil, domain.NewFailure(domain.FailureMissingCredential, provider, ErrMissingAPIKey)
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		return nil, domain.NewFailure(domain.FailureHard, provider, domain.ErrEmptyPrompt)
	}

	decoded, err := c.generate(ctx, c.payload(prompt, req))
	if err != nil {
		return nil, err
	}
	imageURL := decoded.imageURL()
	if imageURL == "" {
		return nil, domain.NewFailure(domain.FailureHard, provider, fmt.Errorf("no image in response: %w", domain.ErrMalformedResponse))
	}
	asset, err := c.download(ctx, imageURL)
	if err != nil {
		return nil, domain.NewFailure(domain.FailureTransient, provider, err)
	}
	asset.Width, asset.Height = decoded.Usage.Width, decoded.Usage.Height
	if asset.Width == 0 || asset.Height == 0 {
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(asset.Data)); err == nil {
			asset.Width, asset.Height = cfg.Width, cfg.Height
		}
	}

	c.logger.Debug().
		Str("model", c.model).
		Str("request_id", req.RequestID).
		Str("dashscope_request_id", decoded.RequestID).
		Int("bytes", len(asset.Data)).
		Msg("qwen render downloaded")
	return asset, nil
}

// payload keeps prompt_extend off: the compiled prompt is sent verbatim.
func (c *Client) payload(prompt string, req ImageRequest) generationRequest {
	p := generationRequest{
		Model: c.model,
		Input: generationInput{Messages: []message{{
			Role:    "user",
			Content: []contentPart{{Text: prompt}},
		}}},
		Parameters: generationParams{
			NegativePrompt: strings.TrimSpace(req.NegativePrompt),
			Size:           strings.TrimSpace(req.Size),
		},
	}
	if p.Parameters.Size == "" {
		p.Parameters.Size = defaultSize
	}
	if req.Seed > 0 {
		seed := req.Seed
		p.Parameters.Seed = &seed
	}
	return p
}

func (c *Client) generate(ctx context.Context, payload generationRequest) (*generationResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, domain.NewFailure(domain.FailureHard, provider, fmt.Errorf("encode request: %w", err))
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generationPath, bytes.NewReader(body))
	if err != nil {
		return nil, domain.NewFailure(domain.FailureHard, provider, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, domain.NewFailure(domain.FailureTransient, provider, fmt.Errorf("http request: %w", err))
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, domain.NewFailure(domain.FailureTransient, provider, fmt.Errorf("read response: %w", err))
	}

	var decoded generationResponse
	decodeErr := json.Unmarshal(raw, &decoded)
	if resp.StatusCode >= 300 {
		return nil, statusFailure(resp.StatusCode, decoded, decodeErr == nil, raw)
	}
	if decodeErr != nil {
		return nil, domain.NewFailure(domain.FailureHard, provider, fmt.Errorf("decode response: %v: %w", decodeErr, domain.ErrMalformedResponse))
	}
	// DashScope reports some rejections (content inspection) inside a 200.
	if decoded.Code != "" {
		kind, ok := failureForCode(decoded.Code)
		if !ok {
			kind = domain.FailureHard
		}
		return nil, domain.NewFailure(kind, provider, fmt.Errorf("%s (%s)", decoded.Message, decoded.Code))
	}
	return &decoded, nil
}

func statusFailure(status int, decoded generationResponse, parsed bool, raw []byte) error {
	kind := domain.FailureForStatus(status)
	if parsed && decoded.Message != "" {
		if k, ok := failureForCode(decoded.Code); ok {
			kind = k
		}
		return domain.NewFailure(kind, provider, fmt.Errorf("%s (%s)", decoded.Message, decoded.Code))
	}
	return domain.NewFailure(kind, provider, fmt.Errorf("status %d: %s", status, strings.TrimSpace(string(raw))))
}

func (c *Client) download(ctx context.Context, imageURL string) (*ImageAsset, error) {
	parsed, err := url.Parse(imageURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("invalid image url %q", imageURL)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download image: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("download status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, errors.New("image exceeds download limit")
	}
	if len(data) == 0 {
		return nil, errors.New("image download was empty")
	}
	format := resp.Header.Get("Content-Type")
	if format == "" || format == "application/octet-stream" {
		format = http.DetectContentType(data)
	}
	return &ImageAsset{URL: imageURL, Data: data, Format: format}, nil
}

func (r *generationResponse) imageURL() string {
	for _, choice := range r.Output.Choices {
		for _, part := range choice.Message.Content {
			if u := strings.TrimSpace(part.Image); u != "" {
				return u
			}
		}
	}
	return ""
}

// failureForCode maps DashScope error codes onto failure kinds. ok is false
// when the code says nothing beyond the HTTP status.
func failureForCode(code string) (domain.FailureKind, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	switch {
	case code == "":
		return domain.FailureTransient, false
	case strings.HasPrefix(code, "throttling"):
		return domain.FailureRateLimited, true
	case code == "internalerror", strings.Contains(code, "timeout"), strings.Contains(code, "unavailable"):
		return domain.FailureTransient, true
	case code == "invalidapikey", strings.HasPrefix(code, "datainspection"):
		return domain.FailureHard, true
	}
	return domain.FailureHard, false
}
