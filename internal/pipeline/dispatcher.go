package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/metrics"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/providers/image"
)

// DispatchResult is the artifact a dispatch settled on plus the trace of
// every backend consulted, terminal included.
type DispatchResult struct {
	Artifact domain.Artifact
	Attempts []domain.ProviderAttempt
}

// DispatcherOptions configures a Dispatcher.
type DispatcherOptions struct {
	// AttemptTimeout bounds each backend call. Zero leaves calls unbounded.
	AttemptTimeout time.Duration
	Logger         *infra.Logger
}

// Dispatcher tries generation backends strictly in order and falls through
// to a terminal that cannot fail.
type Dispatcher struct {
	backends []image.Backend
	terminal image.Terminal
	timeout  time.Duration
	logger   *infra.Logger
}

// NewDispatcher builds a dispatcher. A nil terminal uses image.TextBackend.
func NewDispatcher(backends []image.Backend, terminal image.Terminal, opts DispatcherOptions) *Dispatcher {
	if terminal == nil {
		terminal = image.NewTextBackend()
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Dispatcher{
		backends: append([]image.Backend(nil), backends...),
		terminal: terminal,
		timeout:  opts.AttemptTimeout,
		logger:   logger,
	}
}

// Order lists backend names in the order they are consulted.
func (d *Dispatcher) Order() []string {
	names := make([]string, 0, len(d.backends)+1)
	for _, b := range d.backends {
		names = append(names, b.Name())
	}
	return append(names, d.terminal.Name())
}

// Dispatch returns the first artifact produced. Backends that report
// themselves unavailable are skipped without a call. Once ctx is done no
// further backend is tried and the terminal answers. Dispatch never fails.
func (d *Dispatcher) Dispatch(ctx context.Context, req image.Request) DispatchResult {
	attempts := make([]domain.ProviderAttempt, 0, len(d.backends)+1)
	for _, backend := range d.backends {
		if ctx.Err() != nil {
			break
		}
		name := backend.Name()
		if avail, ok := backend.(image.Availability); ok && !avail.Available() {
			attempt := domain.ProviderAttempt{
				Backend: name,
				Outcome: domain.OutcomeTransientFailure,
				Kind:    domain.FailureMissingCredential.String(),
				Detail:  "skipped: no credential configured",
			}
			attempts = append(attempts, attempt)
			metrics.ObserveBackendAttempt(name, attempt.Outcome, 0)
			d.logger.Debug().Str("backend", name).Str("request_id", req.RequestID).Msg("dispatcher: backend skipped")
			continue
		}

		start := time.Now()
		artifact, err := d.attempt(ctx, backend, req)
		elapsed := time.Since(start)
		if err == nil {
			attempts = append(attempts, domain.ProviderAttempt{Backend: name, Outcome: domain.OutcomeSuccess, Duration: elapsed})
			metrics.ObserveBackendAttempt(name, domain.OutcomeSuccess, elapsed)
			metrics.ObserveArtifact(artifact)
			return DispatchResult{Artifact: artifact, Attempts: attempts}
		}

		kind := domain.KindOf(err)
		outcome := domain.OutcomeFor(kind)
		attempts = append(attempts, domain.ProviderAttempt{
			Backend:  name,
			Outcome:  outcome,
			Kind:     kind.String(),
			Detail:   err.Error(),
			Duration: elapsed,
		})
		metrics.ObserveBackendAttempt(name, outcome, elapsed)
		d.logger.Warn().
			Err(err).
			Str("backend", name).
			Str("outcome", string(outcome)).
			Str("request_id", req.RequestID).
			Dur("elapsed", elapsed).
			Msg("dispatcher: backend failed")
	}

	start := time.Now()
	text := d.terminal.Describe(req)
	elapsed := time.Since(start)
	attempts = append(attempts, domain.ProviderAttempt{Backend: d.terminal.Name(), Outcome: domain.OutcomeSuccess, Duration: elapsed})
	metrics.ObserveBackendAttempt(d.terminal.Name(), domain.OutcomeSuccess, elapsed)
	metrics.ObserveArtifact(text)
	return DispatchResult{Artifact: text, Attempts: attempts}
}

func (d *Dispatcher) attempt(ctx context.Context, backend image.Backend, req image.Request) (artifact domain.Artifact, err error) {
	callCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			artifact = nil
			err = domain.NewFailure(domain.FailureHard, backend.Name(), fmt.Errorf("panic: %v", r))
		}
	}()
	artifact, err = backend.Attempt(callCtx, req)
	if err != nil {
		return nil, err
	}
	if artifact == nil {
		return nil, domain.NewFailure(domain.FailureHard, backend.Name(), domain.ErrEmptyArtifact)
	}
	return artifact, nil
}
