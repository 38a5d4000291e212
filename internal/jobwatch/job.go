// Package jobwatch follows an asynchronous backend job until the blockchain
// transaction it produced is mined.
//
// A watch runs in two phases. First the job queue is polled until the job
// finishes and yields a transaction hash, then the network's receipt source is
// polled until the receipt appears. Every poll produces a Session snapshot on
// the stream returned by Watch. The stream ends with exactly one terminal
// snapshot (PhaseDone or PhaseFailed), or closes without one when the caller
// cancels the context or the configured timeout elapses.
package jobwatch

import "context"

// JobStatus is the lifecycle state of a backend job.
type JobStatus string

const (
	JobStatusPending           JobStatus = "pending"
	JobStatusInProcess         JobStatus = "in-process"
	JobStatusFinished          JobStatus = "finished"
	JobStatusFinishedWithError JobStatus = "finished-with-error"
)

// Job is a backend queue entry as seen by the watcher.
type Job struct {
	ID        string
	Operation string
	Status    JobStatus

	// TxHash is set once the job finished successfully and submitted a transaction.
	TxHash string
}

// txReady reports whether the job finished with a transaction to follow.
func (j Job) txReady() bool {
	return j.Status == JobStatusFinished && j.TxHash != ""
}

// JobQueue reads jobs from the backend queue.
type JobQueue interface {
	// FetchJob returns the current state of the job identified by id.
	FetchJob(ctx context.Context, id string) (Job, error)
}
