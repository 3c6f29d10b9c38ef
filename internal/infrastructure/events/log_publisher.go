package events

import (
	"context"
	"sync"

	"mecanica_xpto_workflow/internal/domain/entities"
	"mecanica_xpto_workflow/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// LogPublisher writes events to the structured log. It is used when no Pub/Sub
// project is configured.
type LogPublisher struct {
	logger zerolog.Logger
}

var _ interfaces.IEventPublisher = (*LogPublisher)(nil)

func NewLogPublisher(logger zerolog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event entities.DomainEvent) error {
	e := p.logger.Info()
	if event.Level == entities.EventLevelWarning {
		e = p.logger.Warn()
	}
	d := zerolog.Dict()
	for k, v := range event.Data {
		d = d.Str(k, v)
	}
	e.Str("event_id", event.ID).
		Str("event_type", event.Type).
		Str("aggregate_kind", string(event.AggregateKind)).
		Str("aggregate_id", event.AggregateID).
		Str("service_order_id", event.ServiceOrderID).
		Dict("data", d).
		Msg(event.Message)
	return nil
}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []entities.DomainEvent
}

var _ interfaces.IEventPublisher = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Publish(_ context.Context, event entities.DomainEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Events() []entities.DomainEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]entities.DomainEvent{}, r.events...)
}

// Fanout publishes to every publisher and returns the first error.
type Fanout []interfaces.IEventPublisher

var _ interfaces.IEventPublisher = Fanout(nil)

func (f Fanout) Publish(ctx context.Context, event entities.DomainEvent) error {
	var firstErr error
	for _, p := range f {
		if err := p.Publish(ctx, event); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
