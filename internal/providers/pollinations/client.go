package pollinations

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
)

// maxImageBytes caps how much of a response body is read.
const maxImageBytes = 20 << 20

// Options configures the Pollinations client. The endpoint needs no
// credential.
type Options struct {
	BaseURL        string
	Model          string
	Referrer       string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client fetches images from the free Pollinations text-to-image endpoint.
type Client struct {
	baseURL    string
	model      string
	referrer   string
	httpClient *http.Client
	logger     *infra.Logger
}

// ImageRequest captures the inputs of one generation.
type ImageRequest struct {
	Prompt string
	Width  int
	Height int
	Seed   int
}

// ImageAsset is the downloaded image.
type ImageAsset struct {
	URL    string
	Data   []byte
	Format string
	Width  int
	Height int
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
		baseURL = "https://image.pollinations.ai"
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("pollinations: invalid base url: %w", err)
	}
	model := strings.TrimSpace(opts.Model)
	if model == "" {
		model = "flux"
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
		baseURL:    baseURL,
		model:      model,
		referrer:   strings.TrimSpace(opts.Referrer),
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string {
	return c.model
}

// ImageURL builds the GET url for req.
func (c *Client) ImageURL(req ImageRequest) string {
	q := url.Values{}
	q.Set("model", c.model)
	q.Set("nologo", "true")
	if req.Width > 0 {
		q.Set("width", strconv.Itoa(req.Width))
	}
	if req.Height > 0 {
		q.Set("height", strconv.Itoa(req.Height))
	}
	if req.Seed > 0 {
		q.Set("seed", strconv.Itoa(req.Seed))
	}
	if c.referrer != "" {
		q.Set("referrer", c.referrer)
	}
	return c.baseURL + "/prompt/" + url.PathEscape(strings.TrimSpace(req.Prompt)) + "?" + q.Encode()
}

// GenerateImage requests one image and downloads its bytes.
func (c *Client) GenerateImage(ctx context.Context, req ImageRequest) (*ImageAsset, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, domain.NewFailure(domain.FailureHard, "pollinations", domain.ErrEmptyPrompt)
	}
	imageURL := c.ImageURL(req)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, domain.NewFailure(domain.FailureHard, "pollinations", fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Accept", "image/*")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, domain.NewFailure(domain.FailureTransient, "pollinations", fmt.Errorf("http request: %w", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		kind := domain.FailureForStatus(resp.StatusCode)
		err := fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
		if kind == domain.FailureRateLimited {
			err = fmt.Errorf("%v: %w", err, domain.ErrRateLimited)
		}
		return nil, domain.NewFailure(kind, "pollinations", err)
	}

	format := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Type")))
	if !strings.HasPrefix(format, "image/") {
		return nil, domain.NewFailure(domain.FailureHard, "pollinations",
			fmt.Errorf("unexpected content type %q: %w", format, domain.ErrMalformedResponse))
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes+1))
	if err != nil {
		return nil, domain.NewFailure(domain.FailureTransient, "pollinations", fmt.Errorf("read image: %w", err))
	}
	if len(data) > maxImageBytes {
		return nil, domain.NewFailure(domain.FailureHard, "pollinations",
			fmt.Errorf("image exceeds %d bytes: %w", maxImageBytes, domain.ErrMalformedResponse))
	}
	if len(data) == 0 {
		return nil, domain.NewFailure(domain.FailureHard, "pollinations",
			fmt.Errorf("empty image body: %w", domain.ErrMalformedResponse))
	}

	c.logger.Debug().
		Str("model", c.model).
		Int("bytes", len(data)).
		Msg("pollinations: generated image")
	return &ImageAsset{URL: imageURL, Data: data, Format: format, Width: req.Width, Height: req.Height}, nil
}
