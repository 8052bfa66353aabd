package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	q "github.com/iliyamo/bus-seat-roster/internal/queue"
)

// AMQPPublisher publishes roster events to RabbitMQ.  Each publish opens
// its own connection; commits are rare enough that pooling is not worth
// the reconnect handling.
type AMQPPublisher struct {
	URL string
}

// PublishRosterCommitted publishes ev to the roster.committed queue as a
// persistent message.  Errors are logged and returned so the caller can
// choose to ignore them.
func (p *AMQPPublisher) PublishRosterCommitted(ctx context.Context, ev q.RosterCommittedEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		q.RosterCommittedQueue, // name
		true,                   // durable
		false,                  // autoDelete
		false,                  // exclusive
		false,                  // noWait
		nil,                    // args
	); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(ev)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		MessageId:    ev.RosterID,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", q.RosterCommittedQueue, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
