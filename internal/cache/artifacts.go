package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/metrics"
)

const keyPrefix = "studio:artifact:"

// Entry is what gets cached for one generation request.
type Entry struct {
	Category string                   `json:"category"`
	Style    string                   `json:"style"`
	Prompt   string                   `json:"prompt"`
	Artifact domain.ArtifactEnvelope  `json:"artifact"`
	Attempts []domain.ProviderAttempt `json:"attempts,omitempty"`
	StoredAt time.Time                `json:"stored_at"`
}

// Fingerprint identifies a generation request. Requests that compile to the
// same prompt at the same size share a key.
type Fingerprint struct {
	Text       string                    `json:"text"`
	Style      string                    `json:"style"`
	Dimensions domain.Dimensions         `json:"dimensions"`
	Attributes *domain.ProductAttributes `json:"attributes,omitempty"`
}

// Key hashes the fingerprint into a Redis key. Text keeps its case because
// it is appended to the prompt verbatim.
func (f Fingerprint) Key() string {
	f.Text = strings.TrimSpace(f.Text)
	f.Style = strings.ToLower(strings.TrimSpace(f.Style))
	f.Dimensions = f.Dimensions.OrDefault()
	raw, _ := json.Marshal(f)
	sum := sha256.Sum256(raw)
	return keyPrefix + hex.EncodeToString(sum[:])
}

// ArtifactCache stores generated artifacts in Redis.
type ArtifactCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewArtifactCache wraps a Redis client. A non-positive ttl defaults to an hour.
func NewArtifactCache(client *redis.Client, ttl time.Duration) *ArtifactCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &ArtifactCache{client: client, ttl: ttl}
}

// Open parses a redis:// url and pings the server.
func Open(ctx context.Context, rawURL string, ttl time.Duration) (*ArtifactCache, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return NewArtifactCache(client, ttl), nil
}

// Get returns the cached entry. A miss is (nil, nil).
func (c *ArtifactCache) Get(ctx context.Context, fp Fingerprint) (*Entry, error) {
	raw, err := c.client.Get(ctx, fp.Key()).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.ObserveCacheLookup(false)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	var entry Entry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	metrics.ObserveCacheLookup(true)
	return &entry, nil
}

// Put stores entry. Text fallbacks are not cached so a later request can
// reach a real backend again.
func (c *ArtifactCache) Put(ctx context.Context, fp Fingerprint, entry Entry) error {
	if entry.Artifact.Kind == domain.KindTextDescription || entry.Artifact.Kind == "" {
		return nil
	}
	if entry.StoredAt.IsZero() {
		entry.StoredAt = time.Now().UTC()
	}
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, fp.Key(), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Ping checks the Redis connection.
func (c *ArtifactCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection.
func (c *ArtifactCache) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}
