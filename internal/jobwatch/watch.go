package jobwatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/claimwatch/internal/pkg/logger"
	"github.com/gabapcia/claimwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/claimwatch/internal/pkg/x/chflow"
)

// errNotReady makes the poller schedule another attempt.
var errNotReady = errors.New("not ready")

// watch owns the state of a single session. It is only touched by the
// goroutine running it.
type watch struct {
	*service

	source  ReceiptSource
	session Session
	out     chan<- Session
}

func (w *watch) poller() retry.Retry {
	delay := retry.WithFixedDelay(w.pollInterval)
	if w.maxBackoff > 0 {
		delay = retry.WithBackoff(w.pollInterval, w.maxBackoff)
	}

	return retry.New(retry.WithAttempts(0), delay)
}

func (w *watch) run(ctx context.Context) {
	defer close(w.out)

	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.timeout)
		defer cancel()
	}

	ctx, span := w.telemetry.startWatch(ctx, w.session)
	defer span.End()

	ctx = logger.Derive(ctx,
		"watch.id", w.session.ID,
		"job.id", w.session.JobID,
		"job.network", w.session.Network,
	)
	logger.Debug(ctx, "job watch started")

	err := w.awaitJob(ctx)
	if err == nil {
		err = w.awaitReceipt(ctx)
	}

	switch {
	case err == nil:
		logger.Info(ctx, "job transaction mined",
			"tx.hash", w.session.TxHash,
			"tx.status", w.session.Receipt.Status,
		)
	case errors.Is(err, ErrJobFailed):
		logger.Info(ctx, "job finished with error", "job.reason", w.session.Reason)
	default:
		logger.Info(ctx, "job watch abandoned", "job.phase", w.session.Phase, "error", err)
	}
	w.telemetry.endWatch(span, w.session, err)
}

// awaitJob polls the queue until the job yields a transaction hash or fails.
func (w *watch) awaitJob(ctx context.Context) error {
	return w.poller().Execute(ctx, func() error {
		job, err := w.queue.FetchJob(ctx, w.session.JobID)
		if ctx.Err() != nil {
			return retry.Unrecoverable(ctx.Err())
		}
		w.session.Attempt++

		switch {
		case err != nil:
			logger.Warn(ctx, "job poll failed", "poll.attempt", w.session.Attempt, "error", err)
			w.session.Poll = errored(err)
		case job.txReady():
			w.session.JobStatus = job.Status
			w.session.TxHash = job.TxHash
			w.session.Poll = ready()
			w.advance(PhaseAwaitingTransaction)
			return w.emit(ctx)
		case job.Status == JobStatusFinishedWithError:
			w.session.JobStatus = job.Status
			w.session.Poll = ready()
			w.session.Reason = ErrJobFailed.Error()
			w.advance(PhaseFailed)
			if err := w.emit(ctx); err != nil {
				return err
			}
			return retry.Unrecoverable(ErrJobFailed)
		default:
			w.session.JobStatus = job.Status
			w.session.Poll = pending()
		}

		if err := w.emit(ctx); err != nil {
			return err
		}
		return errNotReady
	})
}

// awaitReceipt polls the network until the transaction is mined, then waits
// for the settle delay before reporting done.
func (w *watch) awaitReceipt(ctx context.Context) error {
	w.session.Attempt = 0

	err := w.poller().Execute(ctx, func() error {
		receipt, found, err := w.source.FetchReceipt(ctx, w.session.TxHash)
		if ctx.Err() != nil {
			return retry.Unrecoverable(ctx.Err())
		}
		w.session.Attempt++

		switch {
		case err != nil:
			logger.Warn(ctx, "receipt poll failed",
				"tx.hash", w.session.TxHash,
				"poll.attempt", w.session.Attempt,
				"error", err,
			)
			w.session.Poll = errored(err)
		case found:
			w.session.Receipt = &receipt
			w.session.Poll = ready()
			w.advance(PhaseAwaitingReceipt)
			w.save(ctx)
			return nil
		default:
			w.session.Poll = pending()
		}

		if err := w.emit(ctx); err != nil {
			return err
		}
		return errNotReady
	})
	if err != nil {
		return err
	}

	timer := time.NewTimer(w.settleDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	w.advance(PhaseDone)
	return w.emit(ctx)
}

// advance moves the session forward. Regressions are a programming error.
func (w *watch) advance(to Phase) {
	if !w.session.Phase.Before(to) {
		panic(fmt.Sprintf("jobwatch: illegal phase transition %s -> %s", w.session.Phase, to))
	}
	w.session.Phase = to
}

// save persists the current snapshot. Storage failures never stop the watch.
func (w *watch) save(ctx context.Context) {
	w.session.UpdatedAt = time.Now().UTC()
	if err := w.storage.SaveSession(ctx, w.session); err != nil {
		logger.Warn(ctx, "session save failed", "job.phase", w.session.Phase, "error", err)
	}
}

// emit stores and publishes the current snapshot. It returns an unrecoverable
// error once ctx is done so that no snapshot follows a cancellation.
func (w *watch) emit(ctx context.Context) error {
	if ctx.Err() != nil {
		return retry.Unrecoverable(ctx.Err())
	}

	w.save(ctx)
	w.telemetry.recordPoll(ctx, w.session)

	if w.session.Phase.Terminal() {
		if err := w.notifier.NotifyOutcome(ctx, w.session); err != nil {
			logger.Warn(ctx, "outcome notification failed", "job.phase", w.session.Phase, "error", err)
		}
	}

	if ctx.Err() != nil || !chflow.Send(ctx, w.out, w.session) {
		return retry.Unrecoverable(ctx.Err())
	}
	return nil
}
