package image

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/catalog"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/photoshoot"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/pollinations"
)

func necklaceRequest() Request {
	concept := photoshoot.Lookup(catalog.Necklace, catalog.Studio)
	return Request{
		Prompt:     photoshoot.Compile(concept, nil, ""),
		Dimensions: domain.Dimensions{Width: 800, Height: 600},
		Category:   catalog.Necklace,
		Style:      catalog.Studio,
		Concept:    concept,
		RequestID:  "req-42",
	}
}

func TestPollinationsBackendReturnsImage(t *testing.T) {
	var gotPath, gotWidth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotWidth = r.URL.Query().Get("width")
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write([]byte{0xff, 0xd8, 0xff})
	}))
	defer srv.Close()

	client, err := pollinations.NewClient(pollinations.Options{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	artifact, err := NewPollinationsBackend(client).Attempt(context.Background(), necklaceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, ok := artifact.(domain.GeneratedImage)
	if !ok {
		t.Fatalf("artifact = %T, want GeneratedImage", artifact)
	}
	if img.BackendName != BackendPollinations || len(img.Data) != 3 || img.MIME != "image/jpeg" {
		t.Fatalf("unexpected artifact: %#v", img)
	}
	if !strings.HasPrefix(gotPath, "/prompt/") {
		t.Fatalf("path = %q", gotPath)
	}
	if gotWidth != "800" {
		t.Fatalf("width = %q, want 800", gotWidth)
	}
}

func TestPollinationsBackendClassifiesStatus(t *testing.T) {
	cases := map[int]domain.FailureKind{
		http.StatusTooManyRequests:     domain.FailureRateLimited,
		http.StatusBadGateway:          domain.FailureTransient,
		http.StatusBadRequest:          domain.FailureHard,
		http.StatusServiceUnavailable:  domain.FailureTransient,
	}
	for status, want := range cases {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", status)
		}))
		client, _ := pollinations.NewClient(pollinations.Options{BaseURL: srv.URL})
		_, err := NewPollinationsBackend(client).Attempt(context.Background(), necklaceRequest())
		srv.Close()
		if err == nil {
			t.Fatalf("status %d: expected error", status)
		}
		if got := domain.KindOf(err); got != want {
			t.Fatalf("status %d: kind = %s, want %s", status, got, want)
		}
	}
}

func TestPollinationsBackendRejectsNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html>busy</html>"))
	}))
	defer srv.Close()
	client, _ := pollinations.NewClient(pollinations.Options{BaseURL: srv.URL})
	_, err := NewPollinationsBackend(client).Attempt(context.Background(), necklaceRequest())
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Fatalf("err = %v, want malformed response", err)
	}
}

type stubTextClient struct {
	text      string
	err       error
	hasKey    bool
	calls     int
	lastModel string
	lastText  string
}

func (s *stubTextClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	s.calls++
	s.lastModel = model
	s.lastText = prompt
	return s.text, s.err
}

func (s *stubTextClient) HasCredentials() bool { return s.hasKey }

func TestBriefBackend(t *testing.T) {
	client := &stubTextClient{hasKey: true, text: "```\nShoot the necklace on black velvet.\n```"}
	backend := NewBriefBackend(client, "gemini-2.0-flash")
	artifact, err := backend.Attempt(context.Background(), necklaceRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	brief, ok := artifact.(domain.ConceptBrief)
	if !ok {
		t.Fatalf("artifact = %T, want ConceptBrief", artifact)
	}
	if brief.Text != "Shoot the necklace on black velvet." {
		t.Fatalf("text = %q", brief.Text)
	}
	if client.lastModel != "gemini-2.0-flash" || !strings.Contains(client.lastText, "necklace") {
		t.Fatalf("unexpected instruction for model %q: %q", client.lastModel, client.lastText)
	}
}

func TestBriefBackendWithoutKey(t *testing.T) {
	client := &stubTextClient{}
	backend := NewBriefBackend(client, "")
	if backend.Available() {
		t.Fatalf("brief backend should be unavailable without a key")
	}
	_, err := backend.Attempt(context.Background(), necklaceRequest())
	if domain.KindOf(err) != domain.FailureMissingCredential {
		t.Fatalf("err = %v, want missing credential", err)
	}
	if client.calls != 0 {
		t.Fatalf("client should not be called")
	}
}

func TestBriefBackendEmptyText(t *testing.T) {
	client := &stubTextClient{hasKey: true, text: "   "}
	_, err := NewBriefBackend(client, "").Attempt(context.Background(), necklaceRequest())
	if !errors.Is(err, domain.ErrEmptyArtifact) {
		t.Fatalf("err = %v, want empty artifact", err)
	}
}

func TestMockupBackendDeterministic(t *testing.T) {
	backend := NewMockupBackend()
	req := necklaceRequest()
	first, err := backend.Attempt(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := backend.Attempt(context.Background(), req)
	mockup, ok := first.(domain.StructuredMockup)
	if !ok {
		t.Fatalf("artifact = %T, want StructuredMockup", first)
	}
	if mockup != second.(domain.StructuredMockup) {
		t.Fatalf("mockup rendering is not deterministic")
	}
	if mockup.MIME != MockupMIME || mockup.BackendName != BackendMockup {
		t.Fatalf("unexpected mockup metadata: %#v", mockup)
	}
	for _, want := range []string{`<svg`, `width="800"`, `height="600"`, "Necklace", "Studio shoot", "</svg>"} {
		if !strings.Contains(mockup.Markup, want) {
			t.Fatalf("markup missing %q", want)
		}
	}
}

func TestMockupBackendEscapesText(t *testing.T) {
	req := necklaceRequest()
	req.Attributes = &domain.ProductAttributes{SpecificProductType: `<script>"x"</script>`}
	markup := NewMockupBackend().Render(req)
	if strings.Contains(markup, "<script>") {
		t.Fatalf("markup contains unescaped input: %s", markup)
	}
}

func TestMockupBackendHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewMockupBackend().Attempt(ctx, necklaceRequest()); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}

func TestTextBackendNeverEmpty(t *testing.T) {
	terminal := NewTextBackend()
	for _, req := range []Request{{}, necklaceRequest()} {
		out := terminal.Describe(req)
		if strings.TrimSpace(out.Text) == "" {
			t.Fatalf("empty description for %#v", req)
		}
		if out.Backend() != domain.TextDescriptionBackend {
			t.Fatalf("backend = %q", out.Backend())
		}
	}
	out := terminal.Describe(necklaceRequest())
	if !strings.HasPrefix(out.Text, "Necklace photoshoot concept") {
		t.Fatalf("text = %q", out.Text)
	}
	if !strings.Contains(out.Text, "Frame: 800x600") {
		t.Fatalf("text missing frame: %q", out.Text)
	}
}

func TestTextBackendLocalizesLabels(t *testing.T) {
	terminal := NewTextBackend()
	english := terminal.Describe(necklaceRequest()).Text

	req := necklaceRequest()
	req.Locale = language.Indonesian
	indonesian := terminal.Describe(req).Text

	if english == indonesian {
		t.Fatalf("indonesian caption matches english: %q", english)
	}
	if !strings.HasPrefix(indonesian, "Konsep pemotretan Necklace") {
		t.Fatalf("text = %q", indonesian)
	}
	for _, want := range []string{"Gaya: Studio", "Bingkai: 800x600"} {
		if !strings.Contains(indonesian, want) {
			t.Fatalf("text missing %q: %q", want, indonesian)
		}
	}
}

func TestMockupBackendLocalizesLabels(t *testing.T) {
	req := necklaceRequest()
	english := NewMockupBackend().Render(req)
	req.Locale = language.Indonesian
	indonesian := NewMockupBackend().Render(req)

	if !strings.Contains(english, "Studio shoot") {
		t.Fatalf("english markup missing style caption")
	}
	if !strings.Contains(indonesian, "Sesi foto Studio") || strings.Contains(indonesian, "Studio shoot") {
		t.Fatalf("indonesian markup not localized: %s", indonesian)
	}
}
