package image

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"html"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
)

// MockupMIME is the content type of rendered mockups.
const MockupMIME = "image/svg+xml"

// MockupBackend renders a deterministic SVG layout locally. It needs no
// network and only fails when its context is already done.
type MockupBackend struct {
	lang language.Tag
}

// NewMockupBackend constructs the local renderer.
func NewMockupBackend() *MockupBackend {
	return &MockupBackend{lang: language.English}
}

// Name implements Backend.
func (b *MockupBackend) Name() string { return BackendMockup }

// Attempt implements Backend.
func (b *MockupBackend) Attempt(ctx context.Context, req Request) (domain.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, domain.NewFailure(domain.FailureTransient, BackendMockup, err)
	}
	return domain.StructuredMockup{
		Markup:      b.Render(req),
		MIME:        MockupMIME,
		BackendName: BackendMockup,
	}, nil
}

// Render builds the SVG document for req. Colours derive from a hash of the
// prompt so the same request renders the same mockup.
func (b *MockupBackend) Render(req Request) string {
	dims := req.Dimensions.OrDefault()
	seed := mockupSeed(req.Prompt)
	base := colorFromSeed(seed, 0)
	accent := colorFromSeed(seed, 1)
	frame := colorFromSeed(seed, 2)

	w, h := dims.Width, dims.Height
	stripe := maxInt(32, h/12)
	pad := maxInt(16, minInt(w, h)/16)
	fontSize := maxInt(14, minInt(w, h)/24)

	// Casers are stateful; one per render.
	tag := req.captionLanguage(b.lang)
	title := cases.Title(tag)
	labels := labelsFor(tag)
	caption := title.String(req.ProductLabel())
	var details []string
	if req.Style != "" {
		details = append(details, fmt.Sprintf(labels.shoot, title.String(string(req.Style))))
	}
	for _, v := range []string{req.Concept.ModelType, req.Concept.Setting, req.Concept.Poses} {
		if v = strings.TrimSpace(v); v != "" {
			details = append(details, v)
		}
	}
	if a := req.Attributes; a != nil {
		if palette := domain.CleanList(append(append([]string(nil), a.Materials...), a.Colors...)); len(palette) > 0 {
			details = append(details, strings.Join(palette, " / "))
		}
	}

	var s strings.Builder
	fmt.Fprintf(&s, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`, w, h, w, h)
	fmt.Fprintf(&s, `<rect width="%d" height="%d" fill="%s"/>`, w, h, base)
	for y := 0; y < h; y += stripe * 2 {
		fmt.Fprintf(&s, `<rect y="%d" width="%d" height="%d" fill="%s" fill-opacity="0.35"/>`, y, w, minInt(stripe, h-y), accent)
	}
	fmt.Fprintf(&s, `<rect x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-width="%d"/>`,
		pad, pad, w-2*pad, h-2*pad, frame, maxInt(2, pad/4))
	fmt.Fprintf(&s, `<text x="%d" y="%d" font-family="sans-serif" font-size="%d" text-anchor="middle" fill="#ffffff">%s</text>`,
		w/2, h/2, fontSize*2, html.EscapeString(caption))
	for i, line := range details {
		fmt.Fprintf(&s, `<text x="%d" y="%d" font-family="sans-serif" font-size="%d" text-anchor="middle" fill="#ffffff">%s</text>`,
			w/2, h/2+fontSize*2*(i+1), fontSize, html.EscapeString(line))
	}
	s.WriteString(`</svg>`)
	return s.String()
}

var _ Backend = (*MockupBackend)(nil)

func mockupSeed(prompt string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(prompt)))
	return hex.EncodeToString(sum[:9])
}

// colorFromSeed picks a #rrggbb colour from a hex seed; shift selects a
// different window of the seed.
func colorFromSeed(seed string, shift int) string {
	if len(seed) < 6 {
		seed = "000000"
	}
	doubled := seed + seed
	start := (shift * 6) % len(seed)
	return "#" + doubled[start:start+6]
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
