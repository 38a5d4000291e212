package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/claimwatch/internal/jobwatch"

	"github.com/redis/go-redis/v9"
)

// jobwatchKeyPrefix is the namespace prefix for all keys written by job watches.
const jobwatchKeyPrefix = "jobwatch"

// jobwatchSessionKey builds the key holding the latest snapshot of a job:
//
//	"jobwatch:session:<jobID>"
func jobwatchSessionKey(jobID string) string {
	return fmt.Sprintf("%s:session:%s", jobwatchKeyPrefix, jobID)
}

// SaveSession stores s as JSON under the job's key, refreshing its TTL.
func (c *client) SaveSession(ctx context.Context, s jobwatch.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, jobwatchSessionKey(s.JobID), data, c.sessionTTL).Err()
}

// LoadSession returns the latest snapshot of jobID, or jobwatch.ErrSessionNotFound.
func (c *client) LoadSession(ctx context.Context, jobID string) (jobwatch.Session, error) {
	data, err := c.conn.Get(ctx, jobwatchSessionKey(jobID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = jobwatch.ErrSessionNotFound
		}

		return jobwatch.Session{}, err
	}

	var s jobwatch.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return jobwatch.Session{}, fmt.Errorf("decode session %s: %w", jobID, err)
	}
	return s, nil
}

// Compile-time assertion to ensure client implements the SessionStorage interface.
var _ jobwatch.SessionStorage = new(client)
