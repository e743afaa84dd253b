package mailer

import (
	"fmt"
	"net/smtp"
	"telemedicina-service/internal/app/config"
)

// SendMailFunc matches smtp.SendMail so the relay can be replaced in tests.
type SendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPClient struct {
	Host     string
	Port     int
	Username string
	Auth     smtp.Auth
	SendMail SendMailFunc
}

func NewSMTPClient(driverConfig *config.DriverConfig) *SMTPClient {
	auth := smtp.PlainAuth("", driverConfig.SMTP.Username, driverConfig.SMTP.Password, driverConfig.SMTP.Host)
	return &SMTPClient{
		Host:     driverConfig.SMTP.Host,
		Port:     driverConfig.SMTP.Port,
		Username: driverConfig.SMTP.Username,
		Auth:     auth,
		SendMail: smtp.SendMail,
	}
}

func (c *SMTPClient) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
