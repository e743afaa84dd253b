package utils

import (
	"fmt"
	"strings"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/dto/requests"
)

func BuildResetPasswordEmailPayload(fromEmail, toEmail, resetLink, userFullName, expiryTime string) *requests.EmailPayload {
	return &requests.EmailPayload{
		Subject: constvars.EmailResetPasswordSubject,
		From:    fromEmail,
		To:      []string{toEmail},
		Cc:      []string{},
		Bcc:     []string{},
		Body:    fmt.Sprintf(constvars.EmailResetPasswordBody, userFullName, resetLink, expiryTime),
	}
}

func BuildPlainTextMessage(payload *requests.EmailPayload) []byte {
	return []byte(fmt.Sprintf(constvars.EmailSendBasicFormat, payload.From, strings.Join(payload.To, ", "), payload.Subject, payload.Body))
}
