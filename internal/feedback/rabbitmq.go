package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

func connectToRabbitMQ(url string) (*amqp.Connection, error) {
	var conn *amqp.Connection
	var err error
	for i := 0; i < MaxConnectRetry; i++ {
		conn, err = amqp.Dial(url)
		if err == nil {
			slog.Info("connected to rabbitmq")
			return conn, nil
		}
		slog.Warn("failed to connect to rabbitmq", "attempt", i+1, "max_attempts", MaxConnectRetry, "error", err)
		time.Sleep(RetryDelay)
	}
	slog.Error("failed to connect to rabbitmq", "attempts", MaxConnectRetry, "error", err)
	return nil, fmt.Errorf("failed to connect after %d attempts: %w", MaxConnectRetry, err)
}

type RabbitMQPublisher struct {
	connLock   sync.RWMutex
	conn       *amqp.Connection
	channel    *amqp.Channel
	url        string
	destructor sync.Once
}

func NewRabbitMQPublisher(rabbitMQURL string) (*RabbitMQPublisher, error) {
	p := &RabbitMQPublisher{url: rabbitMQURL}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *RabbitMQPublisher) connect() error {
	var err error
	p.conn, err = connectToRabbitMQ(p.url)
	if err != nil {
		return err
	}

	p.channel, err = p.conn.Channel()
	if err != nil {
		p.conn.Close()
		slog.Error("failed to open rabbitmq channel", "error", err)
		return fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	if _, err := p.channel.QueueDeclare(RatingQueue, true, false, false, false, nil); err != nil {
		p.conn.Close()
		return fmt.Errorf("failed to declare rabbitmq queue %s: %w", RatingQueue, err)
	}

	slog.Info("rabbitmq channel opened and rating queue declared")

	// Handle reconnects in background
	go p.handleReconnect()

	return nil
}

func (p *RabbitMQPublisher) handleReconnect() {
	notifyClose := make(chan *amqp.Error)
	p.channel.NotifyClose(notifyClose)

	err, ok := <-notifyClose
	if !ok { // channel is just closed on graceful close
		slog.Info("rabbitmq connection closed", "error", err)
		return
	}

	slog.Warn("rabbitmq connection closed, attempting to reconnect", "error", err)

	p.connLock.Lock() // This is to ensure that the connection is not used while we are reconnecting
	defer p.connLock.Unlock()

	p.channel = nil
	p.conn = nil
	for {
		if p.connect() == nil {
			slog.Info("successfully reconnected to rabbitmq")
			return
		}
		time.Sleep(RetryDelay * 10)
	}
}

func (p *RabbitMQPublisher) PublishRating(ctx context.Context, rating Rating) error {
	p.connLock.RLock()
	defer p.connLock.RUnlock()

	if p.channel == nil || p.channel.IsClosed() {
		return fmt.Errorf("rabbitmq connection is closed")
	}

	body, err := json.Marshal(rating)
	if err != nil {
		slog.Error("failed to marshal rating", "error", err)
		return fmt.Errorf("failed to marshal rating: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",          // exchange (default)
		RatingQueue, // routing key (queue name)
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})

	if err != nil {
		slog.Error("failed to publish rating, potential connection issue", "error", err)
		return fmt.Errorf("failed to publish rating: %w", err)
	}

	return nil
}

func (p *RabbitMQPublisher) Close() {
	p.destructor.Do(func() {
		if err := p.conn.Close(); err != nil {
			slog.Error("error closing rabbitmq connection", "error", err)
		}
	})
}

type RabbitMQTask struct {
	d amqp.Delivery
}

func (t *RabbitMQTask) Type() string {
	return t.d.RoutingKey
}

func (t *RabbitMQTask) Payload() []byte {
	return t.d.Body
}

func (t *RabbitMQTask) Ack() error {
	return t.d.Ack(false)
}

func (t *RabbitMQTask) Nack() error {
	return t.d.Nack(false, false)
}

func (t *RabbitMQTask) Reject() error {
	return t.d.Reject(false)
}

type RabbitMQReceiver struct {
	tasks chan Task
	url   string
	stop  chan struct{}
}

func NewRabbitMQReceiver(rabbitMQURL string) (*RabbitMQReceiver, error) {
	c := &RabbitMQReceiver{
		tasks: make(chan Task),
		url:   rabbitMQURL,
		stop:  make(chan struct{}),
	}

	if err := c.receiveTasks(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *RabbitMQReceiver) consume(msgs <-chan amqp.Delivery) {
	for d := range msgs {
		c.tasks <- &RabbitMQTask{d: d}
	}
}

func (c *RabbitMQReceiver) receiveTasks() error {
	conn, err := connectToRabbitMQ(c.url)
	if err != nil {
		return err
	}
	channel, err := conn.Channel()
	if err != nil {
		slog.Error("failed to open rabbitmq channel", "error", err)
		conn.Close()
		return fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	// One message at a time per consumer.
	if err := channel.Qos(1, 0, false); err != nil {
		slog.Error("failed to set channel qos", "error", err)
		conn.Close()
		return fmt.Errorf("failed to set channel qos: %w", err)
	}

	if _, err := channel.QueueDeclare(RatingQueue, true, false, false, false, nil); err != nil {
		conn.Close()
		return fmt.Errorf("failed to declare rabbitmq queue %s: %w", RatingQueue, err)
	}

	msgs, err := channel.Consume(RatingQueue, "", false, false, false, false, nil)
	if err != nil {
		slog.Error("failed to consume from rabbitmq queue", "queue", RatingQueue, "error", err)
		conn.Close()
		return fmt.Errorf("failed to consume from rabbitmq queue %s: %w", RatingQueue, err)
	}

	go c.consume(msgs)
	go c.handleReconnect(conn, channel)

	return nil
}

func (c *RabbitMQReceiver) handleReconnect(conn *amqp.Connection, channel *amqp.Channel) {
	notifyClose := make(chan *amqp.Error)
	channel.NotifyClose(notifyClose)

	select {
	case err, ok := <-notifyClose:
		if !ok { // channel is just closed on graceful close
			slog.Info("rabbitmq connection closed", "error", err)
			return
		}

		slog.Warn("rabbitmq connection closed, attempting to reconnect", "error", err)

		for {
			if c.receiveTasks() == nil {
				slog.Info("successfully restarted rabbitmq consumer")
				return
			}
			time.Sleep(RetryDelay * 10)
		}
	case <-c.stop:
		slog.Info("stopping rabbitmq consumer")
		if err := conn.Close(); err != nil {
			slog.Error("error closing rabbitmq connection", "error", err)
		}
		return
	}
}

func (c *RabbitMQReceiver) Tasks() <-chan Task {
	return c.tasks
}

func (c *RabbitMQReceiver) Close() {
	close(c.stop)
}
