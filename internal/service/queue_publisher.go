// Package queue_publisher publishes catalog events to RabbitMQ. Errors are
// logged and returned so callers can ignore them without interrupting the
// request that produced the event.
package queue_publisher

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/iliyamo/movie-catalog/internal/logging"
	"github.com/iliyamo/movie-catalog/internal/metrics"
	q "github.com/iliyamo/movie-catalog/internal/queue"
)

// SearchPublisher sends SearchPerformedEvents to the catalog.search queue.
type SearchPublisher struct {
	URL string // AMQP broker URL
}

// NewSearchPublisher returns a publisher for the broker at url.
func NewSearchPublisher(url string) *SearchPublisher {
	return &SearchPublisher{URL: url}
}

// PublishSearch publishes ev as a persistent JSON message. It opens a
// connection per call and never panics.
func (p *SearchPublisher) PublishSearch(ctx context.Context, ev q.SearchPerformedEvent) (err error) {
	log := logging.Ctx(ctx)
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = "error"
		}
		metrics.SearchEvents.WithLabelValues(outcome).Inc()
	}()

	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Ensure the queue exists (idempotent). Durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(
		q.SearchQueueName, // name
		true,              // durable
		false,             // autoDelete
		false,             // exclusive
		false,             // noWait
		nil,               // args
	); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", q.SearchQueueName, false, false, pub); err != nil {
		log.Warn().Err(err).Msg("rabbitmq: publish failed")
		return err
	}
	return nil
}
