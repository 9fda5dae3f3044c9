// Package eventbus delivers workspace events to in-process subscribers.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/nexuslab/nexus/internal/adapters/out/telemetry"
	"github.com/nexuslab/nexus/internal/boundaries/out"
	"github.com/nexuslab/nexus/internal/domain"
)

const (
	defaultBufferSize = 100
	publishTimeout    = 5 * time.Second
	handlerTimeout    = 30 * time.Second
	stopTimeout       = 5 * time.Second
)

var (
	// ErrStopped is returned by Publish once the bus is stopped.
	ErrStopped = errors.New("event bus is stopped")
	// ErrFull is returned when an event could not be queued in time.
	ErrFull = errors.New("event queue is full")

	errUnknownHandler = errors.New("handler is not subscribed")
)

// InMemory is a buffered, single-consumer event bus. Events reach handlers
// one at a time in publish order, so a crash recorded for a workspace is
// never overtaken by a later event for the same workspace.
type InMemory struct {
	queue    chan domain.Event
	finished chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc
	log      zerowrap.Logger
	logCtx   context.Context
	now      func() time.Time

	mu          sync.RWMutex
	subscribers []out.EventHandler
	metrics     *telemetry.Metrics
}

// NewInMemory creates a bus queueing up to bufferSize events.
func NewInMemory(bufferSize int, log zerowrap.Logger) *InMemory {
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	logCtx := zerowrap.CtxWithFields(zerowrap.WithCtx(context.Background(), log), map[string]any{
		zerowrap.FieldLayer:   "adapter",
		zerowrap.FieldAdapter: "eventbus",
	})
	return &InMemory{
		queue:    make(chan domain.Event, bufferSize),
		finished: make(chan struct{}),
		ctx:      ctx,
		cancel:   cancel,
		log:      log,
		logCtx:   logCtx,
		now:      time.Now,
	}
}

// SetMetrics attaches delivery counters. Call it before Start.
func (bus *InMemory) SetMetrics(m *telemetry.Metrics) {
	bus.mu.Lock()
	bus.metrics = m
	bus.mu.Unlock()
}

func (bus *InMemory) logger(fields map[string]any) zerowrap.Logger {
	if len(fields) == 0 {
		return zerowrap.FromCtx(bus.logCtx)
	}
	return zerowrap.FromCtx(zerowrap.CtxWithFields(bus.logCtx, fields))
}

func (bus *InMemory) count(counter func(*telemetry.Metrics) metric.Int64Counter, eventType domain.EventType) {
	bus.mu.RLock()
	m := bus.metrics
	bus.mu.RUnlock()
	if m == nil {
		return
	}
	counter(m).Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("event_type", string(eventType)),
	))
}

// newEvent stamps an event. Workspace and crash payloads also fill the
// workspace and container fields so handlers can route without a type switch.
func (bus *InMemory) newEvent(eventType domain.EventType, payload any) domain.Event {
	event := domain.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: bus.now().UTC(),
		Data:      payload,
	}
	switch p := payload.(type) {
	case domain.WorkspaceEventPayload:
		event.WorkspaceID, event.WorkspaceName, event.ContainerID = p.WorkspaceID, p.WorkspaceName, p.ContainerID
	case domain.CrashPayload:
		event.WorkspaceID, event.WorkspaceName, event.ContainerID = p.WorkspaceID, p.WorkspaceName, p.ContainerID
	}
	return event
}

// Publish queues an event. It blocks for at most five seconds when the
// queue is full, then drops the event.
func (bus *InMemory) Publish(eventType domain.EventType, payload any) error {
	if bus.ctx.Err() != nil {
		return ErrStopped
	}

	event := bus.newEvent(eventType, payload)
	log := bus.logger(map[string]any{
		zerowrap.FieldEvent: string(eventType),
		"workspace":         event.WorkspaceName,
	})

	timer := time.NewTimer(publishTimeout)
	defer timer.Stop()

	select {
	case bus.queue <- event:
		log.Debug().Msg("event queued")
		return nil
	case <-bus.ctx.Done():
		return ErrStopped
	case <-timer.C:
		bus.count(func(m *telemetry.Metrics) metric.Int64Counter { return m.EventsDropped }, eventType)
		log.Error().Msg("event dropped, queue full")
		return fmt.Errorf("%w: dropped %s event %s", ErrFull, eventType, event.ID)
	}
}

// Subscribe registers a handler for every event it CanHandle.
func (bus *InMemory) Subscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	bus.subscribers = append(bus.subscribers, handler)
	n := len(bus.subscribers)
	bus.mu.Unlock()

	log := bus.logger(nil)
	log.Debug().
		Str(zerowrap.FieldHandler, fmt.Sprintf("%T", handler)).
		Int("subscribers", n).
		Msg("handler subscribed")
	return nil
}

// Unsubscribe removes a previously subscribed handler.
func (bus *InMemory) Unsubscribe(handler out.EventHandler) error {
	bus.mu.Lock()
	defer bus.mu.Unlock()

	i := slices.Index(bus.subscribers, handler)
	if i < 0 {
		return errUnknownHandler
	}
	bus.subscribers = slices.Delete(bus.subscribers, i, i+1)
	return nil
}

// Start launches the delivery loop.
func (bus *InMemory) Start() error {
	log := bus.logger(nil)
	log.Info().Int("buffer_size", cap(bus.queue)).Msg("event bus started")
	go bus.loop()
	return nil
}

// Stop ends delivery. Queued events that were not delivered yet are dropped.
func (bus *InMemory) Stop() error {
	bus.cancel()

	timer := time.NewTimer(stopTimeout)
	defer timer.Stop()

	select {
	case <-bus.finished:
		log := bus.logger(nil)
		log.Info().Msg("event bus stopped")
		return nil
	case <-timer.C:
		return errors.New("timed out waiting for event bus to stop")
	}
}

func (bus *InMemory) loop() {
	defer close(bus.finished)
	for {
		select {
		case <-bus.ctx.Done():
			return
		case event := <-bus.queue:
			bus.deliver(event)
		}
	}
}

func (bus *InMemory) deliver(event domain.Event) {
	bus.mu.RLock()
	handlers := slices.Clone(bus.subscribers)
	bus.mu.RUnlock()

	for _, h := range handlers {
		if !h.CanHandle(event.Type) {
			continue
		}
		log := bus.logger(map[string]any{
			zerowrap.FieldEvent:   string(event.Type),
			zerowrap.FieldHandler: fmt.Sprintf("%T", h),
			"workspace":           event.WorkspaceName,
		})

		start := time.Now()
		if err := bus.invoke(h, event); err != nil {
			log.Error().Err(err).Dur(zerowrap.FieldDuration, time.Since(start)).Msg("event handler failed")
			continue
		}
		bus.count(func(m *telemetry.Metrics) metric.Int64Counter { return m.EventsProcessed }, event.Type)
		log.Debug().Dur(zerowrap.FieldDuration, time.Since(start)).Msg("event handled")
	}
}

// invoke runs one handler with a deadline. A handler that overruns is
// abandoned; its context is canceled so it can return early.
func (bus *InMemory) invoke(h out.EventHandler, event domain.Event) error {
	ctx, cancel := context.WithTimeout(bus.ctx, handlerTimeout)
	defer cancel()
	ctx = zerowrap.WithCtx(ctx, bus.log)

	result := make(chan error, 1)
	go func() { result <- h.Handle(ctx, event) }()

	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return fmt.Errorf("handler abandoned: %w", ctx.Err())
	}
}
