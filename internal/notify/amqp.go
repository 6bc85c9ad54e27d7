package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strings"

	"github.com/rabbitmq/amqp091-go"
)

const receiptRoutingKey = "transfer.receipt"

type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

// AMQPReceiptPublisher publishes receipts to a RabbitMQ topic exchange.
type AMQPReceiptPublisher struct {
	conn     *amqp091.Connection
	channel  amqpChannel
	exchange string
}

func sanitizeAMQPURL(raw string) (string, error) {
	clean := strings.TrimSpace(raw)
	clean = strings.Trim(clean, "\"'")
	if !strings.HasSuffix(clean, "/") {
		clean += "/"
	}
	u, err := url.Parse(clean)
	if err != nil {
		return "", err
	}
	if u.Scheme != "amqp" && u.Scheme != "amqps" {
		return "", errors.New("AMQP scheme must be either 'amqp://' or 'amqps://'")
	}
	return clean, nil
}

func NewAMQPReceiptPublisher(amqpURL, exchange string) (*AMQPReceiptPublisher, error) {
	cleanURL, err := sanitizeAMQPURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp091.Dial(cleanURL)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	publisher, err := newAMQPReceiptPublisher(channel, exchange)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}
	publisher.conn = conn
	return publisher, nil
}

func newAMQPReceiptPublisher(channel amqpChannel, exchange string) (*AMQPReceiptPublisher, error) {
	err := channel.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		return nil, err
	}
	return &AMQPReceiptPublisher{channel: channel, exchange: exchange}, nil
}

func (p *AMQPReceiptPublisher) SendReceipt(ctx context.Context, receipt Receipt) error {
	body, err := json.Marshal(receipt)
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(ctx,
		p.exchange,
		receiptRoutingKey,
		false,
		false,
		amqp091.Publishing{
			ContentType: "application/json",
			MessageId:   receipt.TransactionID,
			Body:        body,
		})
}

func (p *AMQPReceiptPublisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
}
