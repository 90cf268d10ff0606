package credentials

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/sqlinline"
)

// Providers whose API keys can be kept in the integration_tokens table.
const (
	ProviderGemini     = "gemini"
	ProviderQwen       = "qwen"
	ProviderOpenRouter = "openrouter"
)

// Providers lists every provider the store accepts.
var Providers = []string{ProviderGemini, ProviderQwen, ProviderOpenRouter}

// Store reads and writes provider API keys in Postgres. Environment
// variables always win; the store only fills keys left empty.
type Store struct {
	sql infra.SQLExecutor
}

func NewStore(sql infra.SQLExecutor) *Store {
	return &Store{sql: sql}
}

// EnsureSchema creates the integration_tokens table when missing.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.sql.Exec(ctx, sqlinline.QEnsureIntegrationTokens); err != nil {
		return fmt.Errorf("ensure integration_tokens: %w", err)
	}
	return nil
}

// Token returns the stored key for provider, or "" when none is stored.
func (s *Store) Token(ctx context.Context, provider string) (string, error) {
	provider, err := normalizeProvider(provider)
	if err != nil {
		return "", err
	}
	row := s.sql.QueryRow(ctx, sqlinline.QSelectIntegrationToken, provider)
	var token string
	if err := row.Scan(&token); err != nil {
		if infra.IsNoRows(err) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(token), nil
}

// SetToken stores key for provider, replacing any previous value.
func (s *Store) SetToken(ctx context.Context, provider, key string) error {
	provider, err := normalizeProvider(provider)
	if err != nil {
		return err
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%s api key is required", provider)
	}
	raw, err := json.Marshal(map[string]any{"source": "cli"})
	if err != nil {
		return err
	}
	_, err = s.sql.Exec(ctx, sqlinline.QUpsertIntegrationToken, provider, key, raw)
	return err
}

// FillMissing loads stored keys into the empty key fields of cfg and
// returns the providers it filled.
func (s *Store) FillMissing(ctx context.Context, cfg *infra.Config) ([]string, error) {
	targets := map[string]*string{
		ProviderGemini:     &cfg.GeminiAPIKey,
		ProviderQwen:       &cfg.QwenAPIKey,
		ProviderOpenRouter: &cfg.OpenRouterAPIKey,
	}
	var filled []string
	for _, provider := range Providers {
		dst := targets[provider]
		if strings.TrimSpace(*dst) != "" {
			continue
		}
		token, err := s.Token(ctx, provider)
		if err != nil {
			return filled, fmt.Errorf("load %s key: %w", provider, err)
		}
		if token != "" {
			*dst = token
			filled = append(filled, provider)
		}
	}
	return filled, nil
}

func normalizeProvider(provider string) (string, error) {
	p := strings.ToLower(strings.TrimSpace(provider))
	for _, known := range Providers {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("unsupported provider %q", provider)
}
