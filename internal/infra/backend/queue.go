package backend

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/gabapcia/claimwatch/internal/jobwatch"
)

// ErrUnknownJobStatus is returned for queue messages with a status the client does not know.
var ErrUnknownJobStatus = errors.New("unknown job status")

var _ jobwatch.JobQueue = (*client)(nil)

type queueMessage struct {
	UID       string `json:"uid"`
	Operation string `json:"operation"`
	Status    string `json:"status"`
	Result    *struct {
		TxHash string `json:"tx_hash"`
	} `json:"result"`
}

var jobStatuses = map[string]jobwatch.JobStatus{
	"PENDING":           jobwatch.JobStatusPending,
	"IN_PROCESS":        jobwatch.JobStatusInProcess,
	"FINISH":            jobwatch.JobStatusFinished,
	"FINISH_WITH_ERROR": jobwatch.JobStatusFinishedWithError,
}

func (m queueMessage) toJob(id string) (jobwatch.Job, error) {
	status, ok := jobStatuses[m.Status]
	if !ok {
		return jobwatch.Job{}, fmt.Errorf("%w: %q", ErrUnknownJobStatus, m.Status)
	}

	job := jobwatch.Job{
		ID:        id,
		Operation: m.Operation,
		Status:    status,
	}
	if m.UID != "" {
		job.ID = m.UID
	}
	if m.Result != nil {
		job.TxHash = m.Result.TxHash
	}
	return job, nil
}

// FetchJob reads GET /queue-message/{id}.
func (c *client) FetchJob(ctx context.Context, id string) (jobwatch.Job, error) {
	var msg queueMessage
	if err := c.getJSON(ctx, "/queue-message/"+url.PathEscape(id), nil, &msg); err != nil {
		return jobwatch.Job{}, err
	}

	return msg.toJob(id)
}
