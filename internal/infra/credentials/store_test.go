package credentials

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/sqlinline"
)

type stubExecutor struct {
	tokens map[string]string
	err    error
	exec   struct {
		query string
		args  []any
	}
}

func (s *stubExecutor) Exec(ctx context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	s.exec.query = query
	s.exec.args = args
	return pgconn.CommandTag{}, s.err
}

func (s *stubExecutor) QueryRow(ctx context.Context, query string, args ...any) pgx.Row {
	if s.err != nil {
		return stubRow{err: s.err}
	}
	token, ok := s.tokens[args[0].(string)]
	if !ok {
		return stubRow{err: pgx.ErrNoRows}
	}
	return stubRow{token: token}
}

func (s *stubExecutor) Query(ctx context.Context, query string, args ...any) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

type stubRow struct {
	token string
	err   error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	ptr, ok := dest[0].(*string)
	if !ok {
		return errors.New("invalid dest")
	}
	*ptr = r.token
	return nil
}

func TestToken(t *testing.T) {
	store := NewStore(&stubExecutor{tokens: map[string]string{"qwen": " sk-qwen "}})
	key, err := store.Token(context.Background(), "Qwen")
	if err != nil {
		t.Fatalf("Token error: %v", err)
	}
	if key != "sk-qwen" {
		t.Fatalf("expected sk-qwen, got %q", key)
	}
}

func TestTokenNoRows(t *testing.T) {
	store := NewStore(&stubExecutor{})
	key, err := store.Token(context.Background(), ProviderGemini)
	if err != nil {
		t.Fatalf("Token error: %v", err)
	}
	if key != "" {
		t.Fatalf("expected empty key, got %q", key)
	}
}

func TestTokenUnknownProvider(t *testing.T) {
	store := NewStore(&stubExecutor{})
	if _, err := store.Token(context.Background(), "midjourney"); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestSetToken(t *testing.T) {
	exec := &stubExecutor{}
	store := NewStore(exec)
	if err := store.SetToken(context.Background(), "openrouter", " secret "); err != nil {
		t.Fatalf("SetToken error: %v", err)
	}
	if exec.exec.query != sqlinline.QUpsertIntegrationToken {
		t.Fatalf("unexpected query %q", exec.exec.query)
	}
	if len(exec.exec.args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(exec.exec.args))
	}
	if v, ok := exec.exec.args[1].(string); !ok || v != "secret" {
		t.Fatalf("expected secret argument, got %T %v", exec.exec.args[1], exec.exec.args[1])
	}
}

func TestSetTokenEmpty(t *testing.T) {
	store := NewStore(&stubExecutor{})
	if err := store.SetToken(context.Background(), ProviderQwen, " "); err == nil {
		t.Fatal("expected error for empty key")
	}
}

func TestFillMissingKeepsEnvironmentKeys(t *testing.T) {
	store := NewStore(&stubExecutor{tokens: map[string]string{
		"gemini":     "stored-gemini",
		"qwen":       "stored-qwen",
		"openrouter": "stored-openrouter",
	}})
	cfg := &infra.Config{GeminiAPIKey: "env-gemini"}

	filled, err := store.FillMissing(context.Background(), cfg)
	if err != nil {
		t.Fatalf("FillMissing error: %v", err)
	}
	if cfg.GeminiAPIKey != "env-gemini" {
		t.Fatalf("environment key overwritten: %q", cfg.GeminiAPIKey)
	}
	if cfg.QwenAPIKey != "stored-qwen" || cfg.OpenRouterAPIKey != "stored-openrouter" {
		t.Fatalf("stored keys not applied: %+v", cfg)
	}
	if len(filled) != 2 || filled[0] != "qwen" || filled[1] != "openrouter" {
		t.Fatalf("filled = %v", filled)
	}
}

func TestFillMissingPropagatesErrors(t *testing.T) {
	store := NewStore(&stubExecutor{err: errors.New("conn refused")})
	if _, err := store.FillMissing(context.Background(), &infra.Config{}); err == nil {
		t.Fatal("expected error")
	}
}
