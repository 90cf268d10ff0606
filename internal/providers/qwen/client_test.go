package qwen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
)

func TestGenerateImageRequiresKey(t *testing.T) {
	client, err := NewClient(Options{})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	_, err = client.GenerateImage(context.Background(), ImageRequest{Prompt: "hi"})
	if !errors.Is(err, domain.ErrMissingCredential) {
		t.Fatalf("err = %v, want missing credential", err)
	}
}

func TestGenerateImageDownloadsResult(t *testing.T) {
	var srvURL string
	var captured generationRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/services/aigc/multimodal-generation/generation", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("authorization = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"output":{"choices":[{"message":{"content":[{"image":"` + srvURL + `/img.png"}]}}]},"usage":{"width":1328,"height":1328},"request_id":"abc"}`))
	})
	mux.HandleFunc("/img.png", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()
	srvURL = srv.URL

	client, _ := NewClient(Options{APIKey: "secret", BaseURL: srv.URL})
	asset, err := client.GenerateImage(context.Background(), ImageRequest{
		Prompt:         "a necklace",
		NegativePrompt: "blurry",
		Size:           "1664*928",
		Seed:           7,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if asset.Format != "image/png" || len(asset.Data) != 4 || asset.Width != 1328 {
		t.Fatalf("unexpected asset: %#v", asset)
	}
	if captured.Model != "qwen-image-plus" {
		t.Fatalf("model = %q", captured.Model)
	}
	if captured.Parameters.Size != "1664*928" || captured.Parameters.NegativePrompt != "blurry" {
		t.Fatalf("unexpected parameters: %#v", captured.Parameters)
	}
	if captured.Parameters.Seed == nil || *captured.Parameters.Seed != 7 {
		t.Fatalf("seed not forwarded")
	}
}

func TestGenerateImageClassifiesFailures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   domain.FailureKind
	}{
		{"throttled", http.StatusTooManyRequests, `{"code":"Throttling.RateQuota","message":"too many"}`, domain.FailureRateLimited},
		{"internal", http.StatusInternalServerError, `{"code":"InternalError","message":"oops"}`, domain.FailureTransient},
		{"invalid key", http.StatusUnauthorized, `{"code":"InvalidApiKey","message":"bad key"}`, domain.FailureHard},
		{"bad request", http.StatusBadRequest, `not json`, domain.FailureHard},
		{"code in body", http.StatusOK, `{"code":"DataInspectionFailed","message":"blocked"}`, domain.FailureHard},
		{"no image", http.StatusOK, `{"output":{"choices":[]}}`, domain.FailureHard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()
			client, _ := NewClient(Options{APIKey: "k", BaseURL: srv.URL})
			_, err := client.GenerateImage(context.Background(), ImageRequest{Prompt: "x"})
			if err == nil {
				t.Fatalf("expected error")
			}
			if got := domain.KindOf(err); got != tc.want {
				t.Fatalf("kind = %s, want %s (err %v)", got, tc.want, err)
			}
			if !strings.HasPrefix(err.Error(), "qwen") {
				t.Fatalf("error should name the provider: %v", err)
			}
		})
	}
}
