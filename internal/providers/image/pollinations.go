package image

import (
	"context"
	"strings"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/pollinations"
)

type pollinationsClient interface {
	GenerateImage(context.Context, pollinations.ImageRequest) (*pollinations.ImageAsset, error)
}

// PollinationsBackend is the free, credential-less image endpoint.
type PollinationsBackend struct {
	client pollinationsClient
}

// NewPollinationsBackend wraps a Pollinations client.
func NewPollinationsBackend(client pollinationsClient) *PollinationsBackend {
	return &PollinationsBackend{client: client}
}

// Name implements Backend.
func (b *PollinationsBackend) Name() string { return BackendPollinations }

// Attempt implements Backend.
func (b *PollinationsBackend) Attempt(ctx context.Context, req Request) (domain.Artifact, error) {
	if b == nil || b.client == nil {
		return nil, domain.NewFailure(domain.FailureHard, BackendPollinations, domain.ErrUnsupportedBackend)
	}
	dims := req.Dimensions.OrDefault()
	asset, err := b.client.GenerateImage(ctx, pollinations.ImageRequest{
		Prompt: strings.TrimSpace(req.Prompt),
		Width:  dims.Width,
		Height: dims.Height,
		Seed:   deterministicSeed(req.RequestID, req.Category, req.Style, req.Prompt),
	})
	if err != nil {
		return nil, err
	}
	if asset == nil || len(asset.Data) == 0 {
		return nil, domain.NewFailure(domain.FailureHard, BackendPollinations, domain.ErrEmptyArtifact)
	}
	return domain.GeneratedImage{
		URL:         asset.URL,
		Data:        asset.Data,
		MIME:        normalizeFormat(asset.Format),
		Width:       dims.Width,
		Height:      dims.Height,
		BackendName: BackendPollinations,
	}, nil
}

var _ Backend = (*PollinationsBackend)(nil)
