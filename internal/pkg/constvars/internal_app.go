package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_UID_KEY                  ContextKey = "uid"
	CONTEXT_ACCESS_TOKEN_KEY         ContextKey = "access_token"
)

const (
	REQUEST_ID_PREFIX = "TLMD_SVC_"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"
)

const (
	ProfileStorePostgrest = "postgrest"
	ProfileStorePostgres  = "postgres"
	ProfileStoreMongo     = "mongo"

	MailerDriverSMTP     = "smtp"
	MailerDriverRabbitMQ = "rabbitmq"
)

const (
	// RedisResetPasswordKeyFormat maps a reset token to the identity it resets.
	RedisResetPasswordKeyFormat = "reset_password:%s"
	ProfilesCollection          = "profiles"
	CVObjectPrefix              = "cv"
)

const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
	RoleAdmin   = "admin"
)

const (
	PagePatientIndex = "index.html"
	PageDoctorIndex  = "doctorIndex.html"
	PageAdminIndex   = "admin.html"
	PageLogin        = "login.html"
	ViewLoginSection = "login-section"
)
