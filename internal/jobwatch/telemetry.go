package jobwatch

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/claimwatch/internal/jobwatch"

type instruments struct {
	tracer   trace.Tracer
	polls    metric.Int64Counter
	outcomes metric.Int64Counter
}

func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	polls, err := meter.Int64Counter("jobwatch.polls",
		metric.WithDescription("Snapshots emitted by job watches, by phase and poll outcome."),
		metric.WithUnit("{poll}"),
	)
	if err != nil {
		polls = noop.Int64Counter{}
	}

	outcomes, err := meter.Int64Counter("jobwatch.outcomes",
		metric.WithDescription("Job watches that stopped, by final phase."),
		metric.WithUnit("{watch}"),
	)
	if err != nil {
		outcomes = noop.Int64Counter{}
	}

	return instruments{
		tracer:   otel.Tracer(instrumentationName),
		polls:    polls,
		outcomes: outcomes,
	}
}

func (i instruments) startWatch(ctx context.Context, s Session) (context.Context, trace.Span) {
	return i.tracer.Start(ctx, "jobwatch.watch", trace.WithAttributes(
		attribute.String("watch.id", s.ID),
		attribute.String("job.id", s.JobID),
		attribute.String("job.network", s.Network),
	))
}

func (i instruments) recordPoll(ctx context.Context, s Session) {
	i.polls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("job.network", s.Network),
		attribute.String("job.phase", string(s.Phase)),
		attribute.String("poll.outcome", string(s.Poll.Kind)),
	))
}

func (i instruments) endWatch(span trace.Span, s Session, err error) {
	phase := string(s.Phase)
	if err != nil && !s.Phase.Terminal() {
		phase = "abandoned"
	}

	i.outcomes.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("job.network", s.Network),
		attribute.String("job.phase", phase),
	))

	span.SetAttributes(
		attribute.String("job.phase", phase),
		attribute.String("tx.hash", s.TxHash),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}
