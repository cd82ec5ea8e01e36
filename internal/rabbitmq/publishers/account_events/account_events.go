package accountevents

import (
	"context"
	"time"
	e "verimail/internal/core/domain/errors"
	"verimail/internal/core/domain/logging"
	"verimail/internal/core/domain/user"
	"verimail/internal/rabbitmq"
	"verimail/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	log      logging.Logger
	channel  *rabbitmq.Channel
	exchange string
	now      func() time.Time
}

func NewRabbitMQ(
	log logging.Logger,
	channel *rabbitmq.Channel,
	exchange string,
	now func() time.Time,
) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, now: now}
}

func (p *RabbitMQ) PublishRegistered(ctx context.Context, u user.User) error {
	return p.publish(ctx, schema.EventRegistered, u)
}

func (p *RabbitMQ) PublishActivated(ctx context.Context, u user.User) error {
	return p.publish(ctx, schema.EventActivated, u)
}

func (p *RabbitMQ) publish(ctx context.Context, eventType string, u user.User) error {
	event := schema.AccountEvent{
		Type:   eventType,
		UserID: int64(u.ID),
		Email:  string(u.Email.Value),
		At:     p.now(),
	}
	body, err := event.Marshal()
	if err != nil {
		return err
	}
	err = p.channel.PublishWithContext(ctx, p.exchange, eventType, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, p.log, err)
		return err
	}
	p.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", p.exchange),
		logging.Entry("RK", eventType),
		logging.Entry("userID", u.ID),
	)
	return nil
}
