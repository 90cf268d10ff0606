package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyPrompt        = errors.New("empty prompt")
	ErrMissingCredential  = errors.New("missing credential")
	ErrRateLimited        = errors.New("rate limited")
	ErrMalformedResponse  = errors.New("malformed response")
	ErrEmptyArtifact      = errors.New("backend returned no artifact")
	ErrNoImage            = errors.New("image is required")
	ErrNoVisionModels     = errors.New("no vision models configured")
	ErrVisionExhausted    = errors.New("all vision models failed")
	ErrUnsupportedBackend = errors.New("unsupported backend")
)

// FailureKind tags why a backend or model call failed. Callers branch on the
// kind instead of inspecting error messages.
type FailureKind int

const (
	FailureTransient FailureKind = iota
	FailureHard
	FailureMissingCredential
	FailureRateLimited
)

func (k FailureKind) String() string {
	switch k {
	case FailureHard:
		return "hard"
	case FailureMissingCredential:
		return "missing_credential"
	case FailureRateLimited:
		return "rate_limited"
	default:
		return "transient"
	}
}

// Failure is the error value adapters return when they can say what kind of
// failure happened.
type Failure struct {
	Kind FailureKind
	Op   string
	Err  error
}

func (f *Failure) Error() string {
	if f == nil {
		return ""
	}
	if f.Err == nil {
		return fmt.Sprintf("%s: %s failure", f.Op, f.Kind)
	}
	if f.Op == "" {
		return f.Err.Error()
	}
	return fmt.Sprintf("%s: %v", f.Op, f.Err)
}

func (f *Failure) Unwrap() error {
	if f == nil {
		return nil
	}
	return f.Err
}

// NewFailure wraps err with a failure kind.
func NewFailure(kind FailureKind, op string, err error) *Failure {
	return &Failure{Kind: kind, Op: op, Err: err}
}

// KindOf reports the failure kind carried by err. Untagged errors count as
// transient, except the credential and rate-limit sentinels.
func KindOf(err error) FailureKind {
	if err == nil {
		return FailureTransient
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	switch {
	case errors.Is(err, ErrMissingCredential):
		return FailureMissingCredential
	case errors.Is(err, ErrRateLimited):
		return FailureRateLimited
	case errors.Is(err, ErrMalformedResponse), errors.Is(err, ErrEmptyArtifact):
		return FailureHard
	}
	return FailureTransient
}

// FailureForStatus maps an HTTP status code returned by a provider to a
// failure kind.
func FailureForStatus(status int) FailureKind {
	switch {
	case status == 429:
		return FailureRateLimited
	case status == 408 || status >= 500:
		return FailureTransient
	default:
		return FailureHard
	}
}
