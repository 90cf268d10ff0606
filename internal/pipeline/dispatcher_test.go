package pipeline

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/image"
)

type stubBackend struct {
	name     string
	artifact domain.Artifact
	err      error
	panicVal any
	calls    int
	block    bool
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) Attempt(ctx context.Context, req image.Request) (domain.Artifact, error) {
	s.calls++
	if s.panicVal != nil {
		panic(s.panicVal)
	}
	if s.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return s.artifact, s.err
}

type credentialedBackend struct {
	stubBackend
	available bool
}

func (c *credentialedBackend) Available() bool { return c.available }

func failing(name string, kind domain.FailureKind) *stubBackend {
	return &stubBackend{name: name, err: domain.NewFailure(kind, name, errors.New(name+" failed"))}
}

func TestDispatchShortCircuits(t *testing.T) {
	first := &stubBackend{name: "first", artifact: domain.GeneratedImage{URL: "https://img/1", BackendName: "first"}}
	second := &stubBackend{name: "second", artifact: domain.StructuredMockup{Markup: "<svg/>", BackendName: "second"}}
	third := &stubBackend{name: "third"}
	d := NewDispatcher([]image.Backend{first, second, third}, nil, DispatcherOptions{})

	res := d.Dispatch(context.Background(), image.Request{Prompt: "p"})

	assert.Equal(t, "first", res.Artifact.Backend())
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 0, second.calls)
	assert.Equal(t, 0, third.calls)
	require.Len(t, res.Attempts, 1)
	assert.Equal(t, domain.OutcomeSuccess, res.Attempts[0].Outcome)
}

func TestDispatchTerminalGuarantee(t *testing.T) {
	backends := []image.Backend{
		failing("pollinations", domain.FailureTransient),
		failing("qwen", domain.FailureRateLimited),
		failing("mockup", domain.FailureHard),
		&stubBackend{name: "nil-artifact"},
		&stubBackend{name: "panics", panicVal: "boom"},
	}
	d := NewDispatcher(backends, nil, DispatcherOptions{})

	res := d.Dispatch(context.Background(), image.Request{Prompt: "a vase"})

	require.NotNil(t, res.Artifact)
	desc, ok := res.Artifact.(domain.TextDescription)
	require.True(t, ok, "artifact = %T", res.Artifact)
	assert.NotEmpty(t, desc.Text)
	assert.True(t, domain.Degraded(res.Artifact))
	require.Len(t, res.Attempts, 6)
	assert.Equal(t, domain.OutcomeTransientFailure, res.Attempts[0].Outcome)
	assert.Equal(t, domain.OutcomeTransientFailure, res.Attempts[1].Outcome)
	assert.Equal(t, "rate_limited", res.Attempts[1].Kind)
	assert.Equal(t, domain.OutcomeHardFailure, res.Attempts[2].Outcome)
	assert.Equal(t, domain.OutcomeHardFailure, res.Attempts[3].Outcome)
	assert.Equal(t, domain.OutcomeHardFailure, res.Attempts[4].Outcome)
	assert.Contains(t, res.Attempts[4].Detail, "panic: boom")
	assert.Equal(t, domain.TextDescriptionBackend, res.Attempts[5].Backend)
	for _, b := range backends {
		assert.Equal(t, 1, b.(*stubBackend).calls, "backend %s", b.Name())
	}
}

func TestDispatchSkipsUnavailableBackend(t *testing.T) {
	paid := &credentialedBackend{stubBackend: stubBackend{name: "qwen"}}
	mockup := &stubBackend{name: "mockup", artifact: domain.StructuredMockup{Markup: "<svg/>", BackendName: "mockup"}}
	d := NewDispatcher([]image.Backend{failing("pollinations", domain.FailureTransient), paid, mockup}, nil, DispatcherOptions{})

	res := d.Dispatch(context.Background(), image.Request{Prompt: "p"})

	assert.Equal(t, 0, paid.calls, "unavailable backend must not be attempted")
	assert.Equal(t, "mockup", res.Artifact.Backend())
	require.Len(t, res.Attempts, 3)
	assert.Equal(t, "missing_credential", res.Attempts[1].Kind)
	assert.Equal(t, domain.OutcomeTransientFailure, res.Attempts[1].Outcome)
}

func TestDispatchAttemptTimeout(t *testing.T) {
	slow := &stubBackend{name: "slow", block: true}
	fast := &stubBackend{name: "fast", artifact: domain.ConceptBrief{Text: "brief", BackendName: "fast"}}
	d := NewDispatcher([]image.Backend{slow, fast}, nil, DispatcherOptions{AttemptTimeout: 20 * time.Millisecond})

	res := d.Dispatch(context.Background(), image.Request{Prompt: "p"})

	assert.Equal(t, "fast", res.Artifact.Backend())
	assert.Equal(t, domain.OutcomeTransientFailure, res.Attempts[0].Outcome)
}

func TestDispatchCancelledContextJumpsToTerminal(t *testing.T) {
	first := &stubBackend{name: "first", artifact: domain.GeneratedImage{URL: "u", BackendName: "first"}}
	d := NewDispatcher([]image.Backend{first}, nil, DispatcherOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := d.Dispatch(ctx, image.Request{Prompt: "p"})

	assert.Equal(t, 0, first.calls)
	assert.Equal(t, domain.KindTextDescription, res.Artifact.Kind())
	require.Len(t, res.Attempts, 1)
}

func TestDispatcherOrder(t *testing.T) {
	d := NewDispatcher([]image.Backend{&stubBackend{name: "a"}, &stubBackend{name: "b"}}, nil, DispatcherOptions{})
	assert.Equal(t, []string{"a", "b", domain.TextDescriptionBackend}, d.Order())
}
