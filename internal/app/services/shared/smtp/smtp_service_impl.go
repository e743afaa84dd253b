package smtp

import (
	"context"
	"telemedicina-service/internal/app/contracts"
	"telemedicina-service/internal/app/drivers/mailer"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/dto/requests"
	"telemedicina-service/internal/pkg/exceptions"
	"telemedicina-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type smtpService struct {
	Client *mailer.SMTPClient
	Log    *zap.Logger
}

func NewSmtpService(client *mailer.SMTPClient, logger *zap.Logger) contracts.MailerService {
	return &smtpService{
		Client: client,
		Log:    logger,
	}
}

func (svc *smtpService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	svc.Log.Info("smtpService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	// net/smtp has no context support; bail out early when the caller already gave up.
	if err := ctx.Err(); err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}

	recipients := make([]string, 0, len(request.To)+len(request.Cc)+len(request.Bcc))
	recipients = append(recipients, request.To...)
	recipients = append(recipients, request.Cc...)
	recipients = append(recipients, request.Bcc...)

	err := svc.Client.SendMail(svc.Client.Address(), svc.Client.Auth, request.From, recipients, utils.BuildPlainTextMessage(request))
	if err != nil {
		svc.Log.Error("smtpService.SendEmail error sending email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}

	svc.Log.Info("smtpService.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
