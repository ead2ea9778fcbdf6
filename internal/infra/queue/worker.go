package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/ligue-outreach/internal/generation"
	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/usecase"
)

// CampaignRunner is satisfied by usecase.GenerateCampaignUseCase.
type CampaignRunner interface {
	Execute(ctx context.Context, input usecase.GenerateCampaignInput) (*usecase.GenerateCampaignOutput, error)
}

type consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

type Worker struct {
	Channel consumer
	Runner  CampaignRunner
}

func NewWorker(ch *amqp.Channel, runner CampaignRunner) *Worker {
	return &Worker{
		Channel: ch,
		Runner:  runner,
	}
}

// Start consumes queueName until ctx is cancelled or the channel closes.
func (w *Worker) Start(ctx context.Context, queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",
		false, // manual ack
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	log.Printf("[WORKER] waiting for campaign requests on '%s'", queueName)

	for {
		select {
		case <-ctx.Done():
			log.Printf("[WORKER] stopping")
			return nil
		case d, ok := <-msgs:
			if !ok {
				log.Printf("[WORKER] delivery channel closed")
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

func (w *Worker) handle(ctx context.Context, d amqp.Delivery) {
	var payload CampaignRequestPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		log.Printf("[WORKER] invalid JSON: %v", err)
		d.Nack(false, false)
		return
	}

	log.Printf("[WORKER] generating campaign for request %s (%s at %s)",
		payload.RequestID, payload.Lead.Name, payload.Lead.Company)

	start := time.Now()
	out, err := w.Runner.Execute(ctx, usecase.GenerateCampaignInput{
		Lead:    payload.Lead,
		Product: payload.Product,
	})
	if err != nil {
		log.Printf("[WORKER] request %s failed: %v", payload.RequestID, err)
		if kind := generation.KindOf(err); kind != "" {
			middleware.RecordGenerationError(string(kind))
		}
		middleware.RecordCampaign("queue", "failure", time.Since(start))
		d.Nack(false, false)
		return
	}

	middleware.RecordCampaign("queue", "success", time.Since(start))
	log.Printf("[WORKER] request %s stored as campaign %s", payload.RequestID, out.Campaign.ID)
	d.Ack(false)
}
