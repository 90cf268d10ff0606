package domain

import "time"

// Outcome is the result of one backend attempt.
type Outcome string

const (
	OutcomeSuccess          Outcome = "success"
	OutcomeTransientFailure Outcome = "transient_failure"
	OutcomeHardFailure      Outcome = "hard_failure"
)

// ProviderAttempt is one entry in a dispatch trace. It is diagnostic only.
type ProviderAttempt struct {
	Backend  string        `json:"backend"`
	Outcome  Outcome       `json:"outcome"`
	Kind     string        `json:"kind,omitempty"`
	Detail   string        `json:"detail,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// OutcomeFor maps a failure kind onto an attempt outcome. Missing credentials
// and rate limits are transient: the backend may work on a later request.
func OutcomeFor(kind FailureKind) Outcome {
	if kind == FailureHard {
		return OutcomeHardFailure
	}
	return OutcomeTransientFailure
}
