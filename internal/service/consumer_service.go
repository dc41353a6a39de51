package service

import (
	"context"
	"encoding/json"

	"badger-buds-be/internal/dto"
	"badger-buds-be/internal/entity"
	"badger-buds-be/internal/pkg/logger"
	"badger-buds-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService writes one adoption_records row per adoption message.
type consumerService struct {
	subscriber  message.Subscriber
	topicName   string
	uowFactory  unitofwork.RepositoryFactory
	auditLogger logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	auditLogger logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:  subscriber,
		topicName:   topicName,
		uowFactory:  uowFactory,
		auditLogger: auditLogger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishAdoptionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.auditLogger.Error("ADOPTION", "Failed to unmarshal adoption message", map[string]interface{}{
			"message_id": msg.UUID,
			"error":      err.Error(),
		})
		// invalid payloads never become valid, do not redeliver
		msg.Ack()
		return
	}

	record := &entity.AdoptionRecord{
		Id:        uuid.New(),
		SessionId: payload.SessionId,
		CatId:     payload.CatId,
		CatName:   payload.CatName,
		AdoptedAt: payload.AdoptedAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AdoptionRecordRepository().Create(ctx, record); err != nil {
		cs.auditLogger.Error("ADOPTION", "Failed to store adoption record", map[string]interface{}{
			"cat_id":     payload.CatId,
			"session_id": payload.SessionId,
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}

	cs.auditLogger.Info("ADOPTION", "Adoption recorded", map[string]interface{}{
		"record_id":  record.Id.String(),
		"cat_id":     record.CatId,
		"cat_name":   record.CatName,
		"session_id": record.SessionId,
	})
	msg.Ack()
}
