package jobwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/claimwatch/internal/pkg/validator"
	"github.com/gabapcia/claimwatch/internal/pkg/x/chflow"

	"github.com/google/uuid"
)

var (
	// ErrNetworkNotRegistered is returned when a watch targets a network with no receipt source.
	ErrNetworkNotRegistered = errors.New("network not registered")

	// ErrJobFailed is returned by Wait when the job finished with an error.
	ErrJobFailed = errors.New("job finished with error")

	// ErrWatchAbandoned is returned by Wait when the watch stopped before a
	// terminal snapshot, because the context was canceled or the timeout elapsed.
	ErrWatchAbandoned = errors.New("watch abandoned")
)

const (
	defaultPollInterval = 2 * time.Second
	defaultSettleDelay  = 1 * time.Second
)

// Service watches backend jobs until their transaction is mined.
type Service interface {
	// Watch starts following jobID on network (empty means the default network)
	// and returns the stream of snapshots. The stream ends with one PhaseDone or
	// PhaseFailed snapshot, or closes early when ctx is done.
	Watch(ctx context.Context, network, jobID string) (<-chan Session, error)

	// Wait runs Watch to completion and returns the terminal snapshot.
	Wait(ctx context.Context, network, jobID string) (Session, error)

	// LastKnown returns the latest stored snapshot of jobID.
	LastKnown(ctx context.Context, jobID string) (Session, error)
}

type watchRequest struct {
	JobID   string `validate:"required"`
	Network string `validate:"required"`
}

type service struct {
	queue          JobQueue
	networks       map[string]ReceiptSource
	defaultNetwork string

	pollInterval time.Duration
	settleDelay  time.Duration
	maxBackoff   time.Duration
	timeout      time.Duration

	storage  SessionStorage
	notifier OutcomeNotifier

	telemetry instruments
}

var _ Service = (*service)(nil)

func (s *service) Watch(ctx context.Context, network, jobID string) (<-chan Session, error) {
	if network == "" {
		network = s.defaultNetwork
	}

	if err := validator.Validate(watchRequest{JobID: jobID, Network: network}); err != nil {
		return nil, err
	}

	source, ok := s.networks[network]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNetworkNotRegistered, network)
	}

	sessionCh := make(chan Session)
	w := &watch{
		service: s,
		source:  source,
		out:     sessionCh,
		session: Session{
			ID:      uuid.Must(uuid.NewV7()).String(),
			JobID:   jobID,
			Network: network,
			Phase:   PhaseAwaitingJob,
		},
	}

	go w.run(ctx)

	return sessionCh, nil
}

func (s *service) Wait(ctx context.Context, network, jobID string) (Session, error) {
	sessionCh, err := s.Watch(ctx, network, jobID)
	if err != nil {
		return Session{}, err
	}

	last, _ := chflow.Last(sessionCh)

	switch last.Phase {
	case PhaseDone:
		return last, nil
	case PhaseFailed:
		return last, fmt.Errorf("%w: %s", ErrJobFailed, last.Reason)
	}

	cause := ctx.Err()
	if cause == nil {
		cause = context.DeadlineExceeded
	}
	return last, fmt.Errorf("%w: %w", ErrWatchAbandoned, cause)
}

func (s *service) LastKnown(ctx context.Context, jobID string) (Session, error) {
	if err := validator.Var(jobID, "required"); err != nil {
		return Session{}, err
	}

	return s.storage.LoadSession(ctx, jobID)
}

type config struct {
	pollInterval time.Duration
	settleDelay  time.Duration
	maxBackoff   time.Duration
	timeout      time.Duration
	storage      SessionStorage
	notifier     OutcomeNotifier
}

// Option configures the service returned by New.
type Option func(*config)

// New builds a Service that reads jobs from queue and receipts from the
// source registered for each network name. defaultNetwork is used when a
// watch does not name a network.
//
// Defaults: 2s poll interval in both phases, 1s settle delay after the
// receipt appears, fixed delay, no timeout, no storage, no notifier.
func New(queue JobQueue, networks map[string]ReceiptSource, defaultNetwork string, opts ...Option) *service {
	cfg := config{
		pollInterval: defaultPollInterval,
		settleDelay:  defaultSettleDelay,
		storage:      nopSessionStorage{},
		notifier:     nopOutcomeNotifier{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		queue:          queue,
		networks:       networks,
		defaultNetwork: defaultNetwork,
		pollInterval:   cfg.pollInterval,
		settleDelay:    cfg.settleDelay,
		maxBackoff:     cfg.maxBackoff,
		timeout:        cfg.timeout,
		storage:        cfg.storage,
		notifier:       cfg.notifier,
		telemetry:      newInstruments(),
	}
}

// WithPollInterval sets the delay between two polls of the same phase.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		c.pollInterval = d
	}
}

// WithSettleDelay sets how long the watcher waits after the receipt appears
// before reporting done.
func WithSettleDelay(d time.Duration) Option {
	return func(c *config) {
		c.settleDelay = d
	}
}

// WithBackoff doubles the delay after every unsuccessful poll, starting at the
// poll interval and capped at max. Zero keeps the fixed delay.
func WithBackoff(max time.Duration) Option {
	return func(c *config) {
		c.maxBackoff = max
	}
}

// WithTimeout bounds every watch. When it elapses the stream closes without a
// terminal snapshot. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

func WithSessionStorage(s SessionStorage) Option {
	return func(c *config) {
		c.storage = s
	}
}

func WithOutcomeNotifier(n OutcomeNotifier) Option {
	return func(c *config) {
		c.notifier = n
	}
}
