package certificate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/yizeng/gab/gin/gorm/club-points/internal/config"
	"github.com/yizeng/gab/gin/gorm/club-points/internal/domain"
)

var ErrDispatchDisabled = errors.New("certificate dispatch is disabled")

// Publisher hands certificate requests to the generator over AMQP. Each
// request becomes one persistent message whose MessageId is the job id.
type Publisher struct {
	conn       *amqp.Connection
	channel    *amqp.Channel
	exchange   string
	routingKey string
}

func NewPublisher(conf *config.CertificatesConfig) (*Publisher, error) {
	conn, err := amqp.Dial(conf.AMQPURL)
	if err != nil {
		return nil, fmt.Errorf("amqp.Dial -> %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("conn.Channel -> %w", err)
	}

	p := &Publisher{
		conn:       conn,
		channel:    ch,
		exchange:   conf.Exchange,
		routingKey: conf.RoutingKey,
	}

	if err := ch.ExchangeDeclare(conf.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		p.Close()
		return nil, fmt.Errorf("ch.ExchangeDeclare -> %w", err)
	}
	if _, err := ch.QueueDeclare(conf.Queue, true, false, false, false, nil); err != nil {
		p.Close()
		return nil, fmt.Errorf("ch.QueueDeclare -> %w", err)
	}
	if err := ch.QueueBind(conf.Queue, conf.RoutingKey, conf.Exchange, false, nil); err != nil {
		p.Close()
		return nil, fmt.Errorf("ch.QueueBind -> %w", err)
	}

	zap.L().Info("certificate publisher ready",
		zap.String("exchange", conf.Exchange),
		zap.String("queue", conf.Queue))

	return p, nil
}

// Publish sends req and returns the id of the message it was sent as.
func (p *Publisher) Publish(ctx context.Context, req domain.CertificateRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("json.Marshal -> %w", err)
	}

	id := uuid.NewString()
	err = p.channel.PublishWithContext(ctx, p.exchange, p.routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    id,
		Timestamp:    time.Now(),
		Body:         body,
	})
	if err != nil {
		return id, fmt.Errorf("p.channel.PublishWithContext -> %w", err)
	}

	zap.L().Debug("certificate request published",
		zap.String("message_id", id),
		zap.String("event", req.EventName),
		zap.Int("members", len(req.Members)))

	return id, nil
}

func (p *Publisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

// Disabled is used when no broker is configured. Every publish fails with
// ErrDispatchDisabled.
type Disabled struct{}

func (Disabled) Publish(context.Context, domain.CertificateRequest) (string, error) {
	return uuid.NewString(), ErrDispatchDisabled
}

func (Disabled) Close() {}
