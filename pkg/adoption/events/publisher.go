package events

import (
	"context"
	"time"

	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/pkg/logger"
	pkgEvents "badger-buds-be/pkg/events"
)

// Sink is anything that can ship an event, normally *nats.Publisher.
type Sink interface {
	Publish(ctx context.Context, event pkgEvents.Event) error
}

// Publisher abstracts event publishing for selection changes
type Publisher interface {
	PublishCatSaved(ctx context.Context, sessionId string, cat *entity.Cat)
	PublishCatUnselected(ctx context.Context, sessionId, catId string)
	PublishCatAdopted(ctx context.Context, sessionId string, cat *entity.Cat)
}

// NatsPublisher publishes to a Sink and only logs failures; a nil sink disables it.
type NatsPublisher struct {
	sink   Sink
	logger logger.ILogger
}

func NewNatsPublisher(sink Sink, logger logger.ILogger) *NatsPublisher {
	return &NatsPublisher{
		sink:   sink,
		logger: logger,
	}
}

func (p *NatsPublisher) PublishCatSaved(ctx context.Context, sessionId string, cat *entity.Cat) {
	p.publish(ctx, pkgEvents.TypeCatSaved, map[string]interface{}{
		"session_id":  sessionId,
		"cat_id":      cat.Id,
		"cat_name":    cat.Name,
		"entity_type": "cat",
		"entity_id":   cat.Id,
	})
}

func (p *NatsPublisher) PublishCatUnselected(ctx context.Context, sessionId, catId string) {
	p.publish(ctx, pkgEvents.TypeCatUnselected, map[string]interface{}{
		"session_id":  sessionId,
		"cat_id":      catId,
		"entity_type": "cat",
		"entity_id":   catId,
	})
}

func (p *NatsPublisher) PublishCatAdopted(ctx context.Context, sessionId string, cat *entity.Cat) {
	p.publish(ctx, pkgEvents.TypeCatAdopted, map[string]interface{}{
		"session_id":  sessionId,
		"cat_id":      cat.Id,
		"cat_name":    cat.Name,
		"breed":       cat.Breed,
		"entity_type": "cat",
		"entity_id":   cat.Id,
	})
}

func (p *NatsPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.sink == nil {
		return
	}

	now := time.Now()
	data["occurred_at"] = now
	evt := pkgEvents.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: now,
	}

	if err := p.sink.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}
