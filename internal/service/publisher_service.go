package service

import (
	"context"
	"encoding/json"

	"badger-buds-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
)

type IPublisherService interface {
	PublishAdoption(ctx context.Context, msg dto.PublishAdoptionMessage) error
}

type publisherService struct {
	topicName string
	publisher message.Publisher
}

func NewPublisherService(topicName string, publisher message.Publisher) IPublisherService {
	return &publisherService{
		topicName: topicName,
		publisher: publisher,
	}
}

func (p *publisherService) PublishAdoption(ctx context.Context, msg dto.PublishAdoptionMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	// The message outlives the request, so the request context is not attached.
	m := message.NewMessage(watermill.NewUUID(), payload)
	return p.publisher.Publish(p.topicName, m)
}
