package messaging

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"nyumbanii_maintenance/internal/domain/entities"
	"nyumbanii_maintenance/internal/usecase/interfaces"

	"github.com/pkg/errors"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	defaultExchange   = "maintenance.events"
	defaultQueue      = "maintenance.notifications"
	bindingAllEvents  = "maintenance.#"
	contentTypeJSON   = "application/json"
	exchangeKindTopic = "topic"
)

// RabbitConfig is read from RABBITMQ_URL, RABBITMQ_EXCHANGE and RABBITMQ_QUEUE.
type RabbitConfig struct {
	URL      string
	Exchange string
	Queue    string
}

func RabbitConfigFromEnv() RabbitConfig {
	return RabbitConfig{
		URL:      os.Getenv("RABBITMQ_URL"),
		Exchange: getenvDefault("RABBITMQ_EXCHANGE", defaultExchange),
		Queue:    getenvDefault("RABBITMQ_QUEUE", defaultQueue),
	}
}

func (c RabbitConfig) Enabled() bool {
	return c.URL != ""
}

// RabbitPublisher publishes domain events as JSON to a topic exchange, keyed by
// DomainEvent.RoutingKey.
type RabbitPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

var _ interfaces.IEventPublisher = (*RabbitPublisher)(nil)

func NewRabbitPublisher(cfg RabbitConfig) (*RabbitPublisher, error) {
	conn, ch, err := dialExchange(cfg)
	if err != nil {
		return nil, err
	}
	return &RabbitPublisher{conn: conn, channel: ch, exchange: cfg.Exchange}, nil
}

func (p *RabbitPublisher) Publish(ctx context.Context, event entities.DomainEvent) error {
	if p == nil {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal event")
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, event.RoutingKey(), false, false, amqp.Publishing{
		ContentType:  contentTypeJSON,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         string(event.Type),
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
	if err != nil {
		return errors.Wrapf(err, "publish %s", event.RoutingKey())
	}
	return nil
}

func (p *RabbitPublisher) Close() error {
	if p == nil {
		return nil
	}
	if err := p.channel.Close(); err != nil {
		log.Printf("[messaging] close publisher channel err=%v", err)
	}
	return p.conn.Close()
}

// RabbitConsumer reads domain events from a durable queue bound to every maintenance
// routing key. Messages are acked after the handler returns nil; a malformed body is
// dropped, a handler error requeues once.
type RabbitConsumer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

var _ interfaces.IEventConsumer = (*RabbitConsumer)(nil)

func NewRabbitConsumer(cfg RabbitConfig) (*RabbitConsumer, error) {
	conn, ch, err := dialExchange(cfg)
	if err != nil {
		return nil, err
	}
	q, err := ch.QueueDeclare(cfg.Queue, true, false, false, false, nil)
	if err != nil {
		conn.Close()
		return nil, errors.Wrapf(err, "declare queue %s", cfg.Queue)
	}
	if err := ch.QueueBind(q.Name, bindingAllEvents, cfg.Exchange, false, nil); err != nil {
		conn.Close()
		return nil, errors.Wrapf(err, "bind queue %s", q.Name)
	}
	return &RabbitConsumer{conn: conn, channel: ch, queue: q.Name}, nil
}

func (c *RabbitConsumer) Consume(handler func(ctx context.Context, event entities.DomainEvent) error) error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrapf(err, "consume %s", c.queue)
	}
	go func() {
		for msg := range deliveries {
			handleDelivery(msg, handler)
		}
		log.Printf("[messaging] delivery channel closed queue=%s", c.queue)
	}()
	return nil
}

func handleDelivery(msg amqp.Delivery, handler func(ctx context.Context, event entities.DomainEvent) error) {
	var event entities.DomainEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("[messaging] drop malformed event routing_key=%s err=%v", msg.RoutingKey, err)
		_ = msg.Nack(false, false)
		return
	}
	if err := handler(context.Background(), event); err != nil {
		log.Printf("[messaging] handler failed event_id=%s type=%s redelivered=%t err=%v", event.ID, event.Type, msg.Redelivered, err)
		_ = msg.Nack(false, !msg.Redelivered)
		return
	}
	_ = msg.Ack(false)
}

func (c *RabbitConsumer) Close() error {
	if c == nil {
		return nil
	}
	if err := c.channel.Close(); err != nil {
		log.Printf("[messaging] close consumer channel err=%v", err)
	}
	return c.conn.Close()
}

func dialExchange(cfg RabbitConfig) (*amqp.Connection, *amqp.Channel, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "dial rabbitmq")
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, errors.Wrap(err, "open channel")
	}
	if err := ch.ExchangeDeclare(cfg.Exchange, exchangeKindTopic, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, nil, errors.Wrapf(err, "declare exchange %s", cfg.Exchange)
	}
	return conn, ch, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
