package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/claimwatch/internal/jobwatch"
	"github.com/gabapcia/claimwatch/internal/pkg/types"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, opts ...Option) (*client, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)

	c, err := NewClient(t.Context(), server.Addr(), "", "", 0, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, server
}

func TestJobwatchSessionKey(t *testing.T) {
	assert.Equal(t, "jobwatch:session:Q1", jobwatchSessionKey("Q1"))
}

func TestNewClient(t *testing.T) {
	t.Run("defaults the session ttl", func(t *testing.T) {
		c, _ := newTestClient(t)
		assert.Equal(t, 24*time.Hour, c.sessionTTL)
	})

	t.Run("fails when the server does not answer", func(t *testing.T) {
		server := miniredis.RunT(t)
		addr := server.Addr()
		server.Close()

		c, err := NewClient(t.Context(), addr, "", "", 0)
		assert.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestClient_SaveSession(t *testing.T) {
	t.Run("round trips a session", func(t *testing.T) {
		c, _ := newTestClient(t)

		session := jobwatch.Session{
			ID:        "0197a1b2-0000-7000-8000-000000000000",
			JobID:     "Q1",
			Network:   "layer1",
			Phase:     jobwatch.PhaseDone,
			JobStatus: jobwatch.JobStatusFinished,
			TxHash:    "0xT1",
			Receipt: &jobwatch.Receipt{
				TxHash:      "0xT1",
				BlockNumber: types.Hex("0x10"),
				GasUsed:     types.Hex("0x5208"),
				Status:      jobwatch.ReceiptStatusSuccess,
			},
			Poll:      jobwatch.PollOutcome{Kind: jobwatch.PollReady},
			Attempt:   2,
			UpdatedAt: time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC),
		}

		require.NoError(t, c.SaveSession(t.Context(), session))

		loaded, err := c.LoadSession(t.Context(), "Q1")
		require.NoError(t, err)
		assert.Equal(t, session, loaded)
	})

	t.Run("keeps the poll error message", func(t *testing.T) {
		c, _ := newTestClient(t)

		session := jobwatch.Session{
			JobID: "Q2",
			Phase: jobwatch.PhaseAwaitingJob,
			Poll:  jobwatch.PollOutcome{Kind: jobwatch.PollErrored, Cause: errors.New("connection reset")},
		}
		require.NoError(t, c.SaveSession(t.Context(), session))

		loaded, err := c.LoadSession(t.Context(), "Q2")
		require.NoError(t, err)
		assert.Equal(t, jobwatch.PollErrored, loaded.Poll.Kind)
		assert.EqualError(t, loaded.Poll.Cause, "connection reset")
	})

	t.Run("overwrites the previous snapshot and refreshes the ttl", func(t *testing.T) {
		c, server := newTestClient(t, WithSessionTTL(time.Hour))

		require.NoError(t, c.SaveSession(t.Context(), jobwatch.Session{JobID: "Q1", Phase: jobwatch.PhaseAwaitingJob}))
		server.FastForward(30 * time.Minute)
		require.NoError(t, c.SaveSession(t.Context(), jobwatch.Session{JobID: "Q1", Phase: jobwatch.PhaseAwaitingTransaction}))

		assert.Equal(t, time.Hour, server.TTL("jobwatch:session:Q1"))

		loaded, err := c.LoadSession(t.Context(), "Q1")
		require.NoError(t, err)
		assert.Equal(t, jobwatch.PhaseAwaitingTransaction, loaded.Phase)
	})

	t.Run("sessions expire", func(t *testing.T) {
		c, server := newTestClient(t, WithSessionTTL(time.Minute))

		require.NoError(t, c.SaveSession(t.Context(), jobwatch.Session{JobID: "Q1", Phase: jobwatch.PhaseAwaitingJob}))
		server.FastForward(2 * time.Minute)

		_, err := c.LoadSession(t.Context(), "Q1")
		assert.ErrorIs(t, err, jobwatch.ErrSessionNotFound)
	})
}

func TestClient_LoadSession(t *testing.T) {
	t.Run("unknown job", func(t *testing.T) {
		c, _ := newTestClient(t)

		_, err := c.LoadSession(t.Context(), "missing")
		assert.ErrorIs(t, err, jobwatch.ErrSessionNotFound)
	})

	t.Run("corrupt value", func(t *testing.T) {
		c, server := newTestClient(t)
		require.NoError(t, server.Set("jobwatch:session:Q1", "{not json"))

		_, err := c.LoadSession(t.Context(), "Q1")
		assert.ErrorContains(t, err, "decode session Q1")
	})
}
