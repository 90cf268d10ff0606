package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunClassify(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"classify", "elegant-necklace.jpg"}, &out, &bytes.Buffer{}); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if got := out.String(); !strings.HasPrefix(got, "necklace\t") {
		t.Fatalf("classify output = %q", got)
	}
}

func TestRunGenerateWritesMockup(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GENERATION_BACKENDS", "mockup")
	t.Setenv("ARTIFACT_DIR", dir)
	t.Setenv("APP_ENV", "test")

	var out bytes.Buffer
	err := run(context.Background(), []string{"generate", "-style", "studio", "-width", "640", "-height", "480", "elegant", "necklace"}, &out, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(out.String(), "backend: mockup") {
		t.Fatalf("generate output = %q", out.String())
	}
	matches, err := filepath.Glob(filepath.Join(dir, "*.svg"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one svg artifact, got %v (%v)", matches, err)
	}
	raw, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if !bytes.Contains(raw, []byte(`width="640"`)) {
		t.Fatalf("artifact not sized to request: %s", raw)
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	if err := run(context.Background(), []string{"paint"}, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected error for unknown command")
	}
	if err := run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
		t.Fatalf("expected usage error")
	}
}

func TestRunKeyRequiresDatabase(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	err := run(context.Background(), []string{"key", "qwen", "sk-test"}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "DATABASE_URL") {
		t.Fatalf("run() error = %v, want DATABASE_URL error", err)
	}
}
