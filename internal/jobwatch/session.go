package jobwatch

import (
	"context"
	"errors"
	"time"
)

// ErrSessionNotFound is returned when no snapshot was ever stored for a job.
var ErrSessionNotFound = errors.New("session not found")

// Phase is the position of a watch in its state machine. Phases only move
// forward: awaiting-job, awaiting-transaction, awaiting-receipt, done. Failed
// can be reached from any phase before done.
type Phase string

const (
	PhaseAwaitingJob         Phase = "awaiting-job"
	PhaseAwaitingTransaction Phase = "awaiting-transaction"
	PhaseAwaitingReceipt     Phase = "awaiting-receipt"
	PhaseDone                Phase = "done"
	PhaseFailed              Phase = "failed"
)

var phaseRank = map[Phase]int{
	PhaseAwaitingJob:         0,
	PhaseAwaitingTransaction: 1,
	PhaseAwaitingReceipt:     2,
	PhaseDone:                3,
	PhaseFailed:              3,
}

// Terminal reports whether no further snapshot follows this phase.
func (p Phase) Terminal() bool {
	return p == PhaseDone || p == PhaseFailed
}

// Before reports whether p comes strictly before other in the state machine.
func (p Phase) Before(other Phase) bool {
	return phaseRank[p] < phaseRank[other]
}

// Session is a snapshot of a watch.
type Session struct {
	ID        string      `json:"id"`
	JobID     string      `json:"jobId"`
	Network   string      `json:"network"`
	Phase     Phase       `json:"phase"`
	JobStatus JobStatus   `json:"jobStatus,omitempty"`
	TxHash    string      `json:"txHash,omitempty"`
	Receipt   *Receipt    `json:"receipt,omitempty"`
	Poll      PollOutcome `json:"poll"`
	Reason    string      `json:"reason,omitempty"`
	Attempt   uint        `json:"attempt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// SessionStorage keeps the last snapshot of every watched job.
type SessionStorage interface {
	// SaveSession stores s as the latest snapshot of s.JobID, replacing any previous one.
	SaveSession(ctx context.Context, s Session) error

	// LoadSession returns the latest snapshot stored for jobID, or
	// ErrSessionNotFound.
	LoadSession(ctx context.Context, jobID string) (Session, error)
}

type nopSessionStorage struct{}

var _ SessionStorage = nopSessionStorage{}

func (nopSessionStorage) SaveSession(context.Context, Session) error { return nil }

func (nopSessionStorage) LoadSession(context.Context, string) (Session, error) {
	return Session{}, ErrSessionNotFound
}
