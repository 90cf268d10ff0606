package vision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/infra"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/metrics"
)

// DefaultBackoff is the pause taken after a rate-limited model.
const DefaultBackoff = 2 * time.Second

const (
	suggestionRateLimited = "All vision models are rate limited right now. Retry in a few minutes or upgrade the API tier."
	suggestionCredentials = "No vision model is configured with credentials. Set GEMINI_API_KEY or OPENROUTER_API_KEY."
	suggestionGeneric     = "Image analysis is temporarily unavailable. Retry later or upload a clearer photo."
)

// Image is the uploaded photo handed to every model.
type Image struct {
	Data []byte
	MIME string
}

// Model is one vision-capable model. Failures should carry a
// domain.FailureKind; rate limits must report domain.FailureRateLimited.
type Model interface {
	Name() string
	Analyze(ctx context.Context, img Image, prompt string) (string, error)
}

// Result is the outcome of one pass over the queue. When Success is false,
// Err references the last model error and Suggestion is a retry hint.
type Result struct {
	Success    bool
	Text       string
	Model      string
	Err        error
	Suggestion string
	Attempts   []domain.ProviderAttempt
}

// WaitFunc pauses for d or until ctx is done.
type WaitFunc func(ctx context.Context, d time.Duration) error

// Options configures a Queue.
type Options struct {
	Backoff time.Duration
	Timeout time.Duration
	Wait    WaitFunc
	Logger  *infra.Logger
}

// Queue tries vision models in order until one answers.
type Queue struct {
	models  []Model
	backoff time.Duration
	timeout time.Duration
	wait    WaitFunc
	logger  *infra.Logger
}

// NewQueue builds a queue over models, most preferred first.
func NewQueue(models []Model, opts Options) *Queue {
	backoff := opts.Backoff
	if backoff < 0 {
		backoff = 0
	}
	wait := opts.Wait
	if wait == nil {
		wait = sleep
	}
	logger := opts.Logger
	if logger == nil {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Queue{
		models:  append([]Model(nil), models...),
		backoff: backoff,
		timeout: opts.Timeout,
		wait:    wait,
		logger:  logger,
	}
}

// Models returns the configured model names in order.
func (q *Queue) Models() []string {
	names := make([]string, len(q.models))
	for i, m := range q.models {
		names[i] = m.Name()
	}
	return names
}

// Analyze runs img through the models in order. A rate-limited model is
// followed by a backoff pause before the next model; any other failure moves
// on immediately. Each model is tried at most once. An empty prompt uses
// DefaultPrompt.
func (q *Queue) Analyze(ctx context.Context, img Image, prompt string) Result {
	if len(img.Data) == 0 {
		return Result{Err: domain.ErrNoImage, Suggestion: "Upload a product photo and try again."}
	}
	if len(q.models) == 0 {
		return Result{Err: domain.ErrNoVisionModels, Suggestion: suggestionCredentials}
	}
	if strings.TrimSpace(prompt) == "" {
		prompt = DefaultPrompt
	}

	var (
		attempts    []domain.ProviderAttempt
		lastErr     error
		lastModel   string
		rateLimited bool
		credentials = true
	)
	for i, model := range q.models {
		if err := ctx.Err(); err != nil {
			lastErr = err
			break
		}
		name := model.Name()
		start := time.Now()
		text, err := q.call(ctx, model, img, prompt)
		elapsed := time.Since(start)

		if err == nil {
			attempts = append(attempts, domain.ProviderAttempt{Backend: name, Outcome: domain.OutcomeSuccess, Duration: elapsed})
			metrics.ObserveVisionAttempt(name, domain.OutcomeSuccess, elapsed)
			return Result{Success: true, Text: text, Model: name, Attempts: attempts}
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
		metrics.ObserveVisionAttempt(name, outcome, elapsed)
		q.logger.Warn().Err(err).Str("model", name).Str("kind", kind.String()).Msg("vision: model failed")

		lastErr, lastModel = err, name
		if kind != domain.FailureMissingCredential {
			credentials = false
		}
		if kind == domain.FailureRateLimited {
			rateLimited = true
			if i < len(q.models)-1 && q.backoff > 0 {
				if werr := q.wait(ctx, q.backoff); werr != nil {
					lastErr = fmt.Errorf("%w (backoff interrupted: %v)", err, werr)
					break
				}
			}
		}
	}

	suggestion := suggestionGeneric
	switch {
	case rateLimited:
		suggestion = suggestionRateLimited
	case credentials && lastModel != "":
		suggestion = suggestionCredentials
	}
	failure := fmt.Errorf("%w: %w", domain.ErrVisionExhausted, lastErr)
	if lastModel != "" {
		failure = fmt.Errorf("%w: last model %s: %w", domain.ErrVisionExhausted, lastModel, lastErr)
	}
	return Result{Err: failure, Suggestion: suggestion, Attempts: attempts}
}

func (q *Queue) call(ctx context.Context, model Model, img Image, prompt string) (text string, err error) {
	callCtx := ctx
	if q.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			err = domain.NewFailure(domain.FailureHard, model.Name(), fmt.Errorf("panic: %v", r))
		}
	}()
	text, err = model.Analyze(callCtx, img, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
			return "", domain.NewFailure(domain.FailureTransient, model.Name(), err)
		}
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", domain.NewFailure(domain.FailureHard, model.Name(), domain.ErrEmptyArtifact)
	}
	return strings.TrimSpace(text), nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
