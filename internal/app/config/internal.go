package config

type InternalConfig struct {
	App      App
	Mailer   AppMailer
	RabbitMQ AppRabbitMQ
	Minio    AppMinio
}

type App struct {
	Env                                    string
	Port                                   string
	Version                                string
	PublicDir                              string
	AllowedOrigins                         string
	ResetPasswordUrl                       string
	ProfileStore                           string
	MailerDriver                           string
	CVStorageEnabled                       bool
	ShutdownTimeoutInSeconds               int
	RequestTimeoutInSeconds                int
	RequestBodyLimitInMegabyte             int
	ResetPasswordTokenExpiredTimeInMinutes int
}

type AppMailer struct {
	EmailSender string
}

type AppRabbitMQ struct {
	MailerQueue string
}

type AppMinio struct {
	BucketName          string
	CVMaxUploadSizeInMB int
}
