package jobwatch

import (
	"encoding/json"
	"errors"
)

// PollKind tags a PollOutcome.
type PollKind string

const (
	PollPending PollKind = "pending"
	PollReady   PollKind = "ready"
	PollErrored PollKind = "errored"
)

// PollOutcome is the result of the latest poll of a phase. Pending and Errored
// both lead to another poll; they are kept apart so callers can tell a slow
// job from a failing backend.
type PollOutcome struct {
	Kind  PollKind
	Cause error
}

func pending() PollOutcome { return PollOutcome{Kind: PollPending} }

func ready() PollOutcome { return PollOutcome{Kind: PollReady} }

func errored(cause error) PollOutcome { return PollOutcome{Kind: PollErrored, Cause: cause} }

type pollOutcomeJSON struct {
	Kind  PollKind `json:"kind"`
	Error string   `json:"error,omitempty"`
}

// MarshalJSON encodes the outcome with the cause flattened to its message.
func (p PollOutcome) MarshalJSON() ([]byte, error) {
	out := pollOutcomeJSON{Kind: p.Kind}
	if p.Cause != nil {
		out.Error = p.Cause.Error()
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the outcome. The cause only keeps its message.
func (p *PollOutcome) UnmarshalJSON(data []byte) error {
	var in pollOutcomeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*p = PollOutcome{Kind: in.Kind}
	if in.Error != "" {
		p.Cause = errors.New(in.Error)
	}
	return nil
}
