package service

import (
	"context"
	"encoding/json"

	"genui-be/internal/dto"
	"genui-be/internal/pkg/logger"
	"genui-be/internal/websocket"
	"genui-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	hub            *websocket.Hub
	eventPublisher IEventPublisher
	logger         logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	hub *websocket.Hub,
	eventPublisher IEventPublisher,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		hub:            hub,
		eventPublisher: eventPublisher,
		logger:         log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
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
	var payload dto.PublishGenerationMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("ConsumerService", "Failed to unmarshal generation message", map[string]interface{}{"error": err.Error()})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	if cs.hub != nil {
		cs.hub.Notify(payload.UserId, websocket.GenerationNotice{
			SessionId: payload.SessionId,
			Status:    payload.Status,
			Message:   payload.Message,
		})
	}

	if payload.Status == "completed" && cs.eventPublisher != nil {
		event := events.NewComponentGeneratedEvent(
			payload.SessionId.String(),
			payload.UserId.String(),
			payload.Provider,
			payload.Model,
		)
		if err := cs.eventPublisher.Publish(ctx, event); err != nil {
			cs.logger.Warn("ConsumerService", "Failed to publish outbound event", map[string]interface{}{"error": err.Error()})
		}
	}

	msg.Ack()
}
