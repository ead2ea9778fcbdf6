package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// CampaignRequestPayload is one queued campaign generation request.
type CampaignRequestPayload struct {
	RequestID string             `json:"request_id"`
	Lead      entity.LeadProfile `json:"lead"`
	Product   entity.ProductInfo `json:"product"`
	Origin    string             `json:"origin"`
}

type QueueProducerInterface interface {
	PublishCampaignRequest(ctx context.Context, payload CampaignRequestPayload) (string, error)
}

// publisher is the subset of *amqp.Channel the producer needs.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	Ch publisher
}

func NewProducer(ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

// PublishCampaignRequest assigns a request ID when the payload has none and
// returns it.
func (p *RabbitMQProducer) PublishCampaignRequest(ctx context.Context, payload CampaignRequestPayload) (string, error) {
	if payload.RequestID == "" {
		payload.RequestID = uuid.New().String()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    payload.RequestID,
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to publish to RabbitMQ: %w", err)
	}

	return payload.RequestID, nil
}
