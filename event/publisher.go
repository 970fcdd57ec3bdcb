package event

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/log"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "events"
	ExchangeKind = "topic"
)

// Publisher sends an entity change notification.
type Publisher interface {
	Publish(routingKey string, payload any) error
}

type noopPublisher struct{}

func (noopPublisher) Publish(string, any) error { return nil }

// Bus is the publisher the handlers use. It discards events until Connect succeeds.
var Bus Publisher = noopPublisher{}

// Change is the body of every entity event.
type Change struct {
	Entity string    `json:"entity"`
	Action string    `json:"action"`
	ID     uint      `json:"id"`
	At     time.Time `json:"at"`
}

// Emit publishes a change on "<entity>.<action>" and to Live. Failures are only logged.
func Emit(entity, action string, id uint, at time.Time) {
	key := entity + "." + action
	change := Change{Entity: entity, Action: action, ID: id, At: at}
	if err := Bus.Publish(key, change); err != nil {
		log.Errorf("[events] publish %s %d: %v", key, id, err)
	}
	Live.Publish(change)
}

type AMQPPublisher struct {
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewAMQPPublisher(url string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("rabbitmq dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	if err := ch.ExchangeDeclare(ExchangeName, ExchangeKind, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	return &AMQPPublisher{conn: conn, channel: ch}, nil
}

func (p *AMQPPublisher) Publish(routingKey string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	// amqp channels are not safe for concurrent publishes
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.channel.Publish(
		ExchangeName,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	); err != nil {
		return fmt.Errorf("publish message: %w", err)
	}
	return nil
}

func (p *AMQPPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}

// Connect installs an AMQP publisher on Bus. An empty url keeps events disabled.
func Connect(url string) func() {
	if url == "" {
		log.Info("[events] RABBITMQ_URL not set, change events disabled")
		return func() {}
	}
	p, err := NewAMQPPublisher(url)
	if err != nil {
		log.Errorf("[events] %v, change events disabled", err)
		return func() {}
	}
	Bus = p
	log.Infof("[events] publishing to exchange %s", ExchangeName)
	return func() {
		Bus = noopPublisher{}
		p.Close()
	}
}
