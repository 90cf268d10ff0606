package storage

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
)

func TestSanitizeKey(t *testing.T) {
	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{key: "a/b.png", want: "a/b.png"},
		{key: "/abs/c.svg", want: "abs/c.svg"},
		{key: `win\path.txt`, want: "win/path.txt"},
		{key: "../escape", wantErr: true},
		{key: "..", wantErr: true},
		{key: "  ", wantErr: true},
	}
	for _, tc := range tests {
		got, err := sanitizeKey(tc.key)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("sanitizeKey(%q) expected error", tc.key)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("sanitizeKey(%q) = %q, %v; want %q", tc.key, got, err, tc.want)
		}
	}
}

func TestWriteArtifactExtensions(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		artifact domain.Artifact
		want     string
		content  string
	}{
		{domain.StructuredMockup{Markup: "<svg/>", MIME: "image/svg+xml"}, "req/out.svg", "<svg/>"},
		{domain.GeneratedImage{Data: []byte("jpg"), MIME: "image/jpeg"}, "req/out.jpg", "jpg"},
		{domain.GeneratedImage{URL: "https://img.example/x"}, "req/out.url", "https://img.example/x\n"},
		{domain.ConceptBrief{Text: "# brief"}, "req/out.md", "# brief"},
		{domain.TextDescription{Text: "plain"}, "req/out.txt", "plain"},
	}
	for _, tc := range tests {
		key, err := store.WriteArtifact(ctx, "req/out", tc.artifact)
		if err != nil {
			t.Fatalf("WriteArtifact(%T) error = %v", tc.artifact, err)
		}
		if key != tc.want {
			t.Fatalf("WriteArtifact(%T) key = %q, want %q", tc.artifact, key, tc.want)
		}
		raw, err := os.ReadFile(store.Path(key))
		if err != nil {
			t.Fatalf("read %s: %v", key, err)
		}
		if string(raw) != tc.content {
			t.Fatalf("%s content = %q, want %q", key, raw, tc.content)
		}
	}
}

func TestWriteArtifactRejectsEmptyImage(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	_, err = store.WriteArtifact(context.Background(), "x", domain.GeneratedImage{})
	if !errors.Is(err, domain.ErrEmptyArtifact) {
		t.Fatalf("WriteArtifact() error = %v, want ErrEmptyArtifact", err)
	}
}

func TestWriteHonoursCancelledContext(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Write(ctx, "a.txt", []byte("x")); !errors.Is(err, context.Canceled) {
		t.Fatalf("Write() error = %v, want context.Canceled", err)
	}
}
