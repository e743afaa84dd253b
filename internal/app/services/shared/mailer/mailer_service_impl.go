package mailer

import (
	"context"
	"telemedicina-service/internal/app/contracts"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/dto/requests"
	"telemedicina-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// publisher is the part of *amqp091.Channel the service relies on.
type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type mailerService struct {
	Channel publisher
	Queue   string
	Log     *zap.Logger
}

// NewMailerService hands emails over to the mail worker through a durable
// queue instead of talking to the relay directly.
func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	return newMailerService(channel, queue, logger), nil
}

func newMailerService(channel publisher, queue string, logger *zap.Logger) *mailerService {
	return &mailerService{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (s *mailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("mailerService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
	)

	body, err := json.Marshal(request)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	headers := amqp091.Table{
		"message_type":     "JSON",
		"requeue_strategy": "DROP",
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Priority:     0,
		Headers:      headers,
		MessageId:    requestID,
	}

	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	if err != nil {
		s.Log.Error("mailerService.SendEmail error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("mailerService.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
