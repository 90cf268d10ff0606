package pollinations

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
)

func TestImageURL(t *testing.T) {
	client, err := NewClient(Options{BaseURL: "https://img.example.com/", Model: "turbo", Referrer: "studio"})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	raw := client.ImageURL(ImageRequest{Prompt: " gold ring, studio light ", Width: 640, Height: 480, Seed: 9})
	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	if parsed.Host != "img.example.com" {
		t.Fatalf("host = %q", parsed.Host)
	}
	if parsed.Path != "/prompt/gold ring, studio light" {
		t.Fatalf("path = %q", parsed.Path)
	}
	q := parsed.Query()
	for key, want := range map[string]string{"model": "turbo", "width": "640", "height": "480", "seed": "9", "nologo": "true", "referrer": "studio"} {
		if got := q.Get(key); got != want {
			t.Fatalf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestImageURLDefaults(t *testing.T) {
	client, _ := NewClient(Options{})
	raw := client.ImageURL(ImageRequest{Prompt: "vase"})
	if !strings.HasPrefix(raw, "https://image.pollinations.ai/prompt/vase?") {
		t.Fatalf("url = %q", raw)
	}
	if strings.Contains(raw, "seed=") || strings.Contains(raw, "width=") {
		t.Fatalf("zero values should be omitted: %q", raw)
	}
}

func TestGenerateImageEmptyPrompt(t *testing.T) {
	client, _ := NewClient(Options{})
	_, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "  "})
	if !errors.Is(err, domain.ErrEmptyPrompt) {
		t.Fatalf("err = %v, want ErrEmptyPrompt", err)
	}
	if domain.KindOf(err) != domain.FailureHard {
		t.Fatalf("empty prompt should be a hard failure")
	}
}

func TestGenerateImageRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(make([]byte, maxImageBytes+4096))
	}))
	defer srv.Close()

	client, _ := NewClient(Options{BaseURL: srv.URL})
	asset, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "large vase"})
	if asset != nil {
		t.Fatalf("truncated image returned: %d bytes", len(asset.Data))
	}
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("err = %v, want ErrMalformedResponse", err)
	}
	if domain.KindOf(err) != domain.FailureHard {
		t.Fatalf("oversized body should be a hard failure, got %s", domain.KindOf(err))
	}
}
