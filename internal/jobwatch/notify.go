package jobwatch

import "context"

// OutcomeNotifier is told about every terminal snapshot.
type OutcomeNotifier interface {
	NotifyOutcome(ctx context.Context, s Session) error
}

type nopOutcomeNotifier struct{}

var _ OutcomeNotifier = nopOutcomeNotifier{}

func (nopOutcomeNotifier) NotifyOutcome(context.Context, Session) error { return nil }
