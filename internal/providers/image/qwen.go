package image

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/qwen"
)

type qwenImageClient interface {
	GenerateImage(context.Context, qwen.ImageRequest) (*qwen.ImageAsset, error)
	HasCredentials() bool
	Model() string
}

// QwenBackend is the credentialed paid endpoint. It is skipped without a
// remote call when no API key is configured.
type QwenBackend struct {
	client qwenImageClient
}

// NewQwenBackend wraps a DashScope client.
func NewQwenBackend(client qwenImageClient) *QwenBackend {
	return &QwenBackend{client: client}
}

// Name implements Backend.
func (b *QwenBackend) Name() string { return BackendQwen }

// Attempt implements Backend.
func (b *QwenBackend) Attempt(ctx context.Context, req Request) (domain.Artifact, error) {
	if b == nil || b.client == nil || !b.client.HasCredentials() {
		return nil, domain.NewFailure(domain.FailureMissingCredential, BackendQwen, qwen.ErrMissingAPIKey)
	}
	dims := req.Dimensions.OrDefault()
	asset, err := b.client.GenerateImage(ctx, qwen.ImageRequest{
		Prompt:         strings.TrimSpace(req.Prompt),
		NegativePrompt: DefaultNegativePrompt,
		Size:           SizeFor(dims),
		Seed:           deterministicSeed(req.RequestID, req.Category, req.Style, req.Prompt),
		RequestID:      req.RequestID,
	})
	if err != nil {
		return nil, err
	}
	if asset == nil || (asset.URL == "" && len(asset.Data) == 0) {
		return nil, domain.NewFailure(domain.FailureHard, BackendQwen, domain.ErrEmptyArtifact)
	}
	width, height := asset.Width, asset.Height
	if width <= 0 || height <= 0 {
		width, height = dims.Width, dims.Height
	}
	return domain.GeneratedImage{
		URL:         asset.URL,
		Data:        asset.Data,
		MIME:        normalizeFormat(asset.Format),
		Width:       width,
		Height:      height,
		BackendName: BackendQwen,
	}, nil
}

// Available reports whether a DashScope key is configured.
func (b *QwenBackend) Available() bool {
	return b != nil && b.client != nil && b.client.HasCredentials()
}

func (b *QwenBackend) String() string {
	if b == nil || b.client == nil {
		return BackendQwen
	}
	return b.client.Model()
}

var _ Backend = (*QwenBackend)(nil)

// SizeFor maps requested dimensions onto the closest size token DashScope
// accepts, chosen by aspect ratio.
func SizeFor(d domain.Dimensions) string {
	d = d.OrDefault()
	ratio := float64(d.Width) / float64(d.Height)
	switch {
	case ratio >= 1.6:
		return "1664*928"
	case ratio >= 1.2:
		return "1472*1104"
	case ratio <= 0.625:
		return "928*1664"
	case ratio <= 0.83:
		return "1140*1472"
	default:
		return "1328*1328"
	}
}

func deterministicSeed(values ...any) int {
	if len(values) == 0 {
		return 0
	}
	var parts []string
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	n := binary.BigEndian.Uint32(sum[:4])
	value := int(n % 2147483647)
	if value <= 0 {
		fallback := binary.BigEndian.Uint32(sum[4:8]) % 2147483647
		if fallback == 0 {
			fallback = 1
		}
		value = int(fallback)
	}
	return value
}

func normalizeFormat(mime string) string {
	mime = strings.ToLower(strings.TrimSpace(mime))
	switch mime {
	case "image/jpeg", "image/jpg":
		return "image/jpeg"
	case "image/png":
		return "image/png"
	default:
		if strings.HasPrefix(mime, "image/") {
			return mime
		}
		return "image/png"
	}
}
