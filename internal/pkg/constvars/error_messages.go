package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"role":     "must be one of [patient, doctor, admin]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "internal server error"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientInvalidCredentials            = "invalid credentials"
	ErrClientProfileNotFound               = "user profile not found"
	ErrClientRoleForbiddenFormat           = "you are not allowed to sign in as %s"
	ErrClientFailedToCreateUser            = "failed to create the user"
	ErrClientFailedToCreateProfileFormat   = "failed to create the profile: %s"
	ErrClientAccountNotFound               = "no account found with that email"
	ErrClientRecoveryFailed                = "internal error sending email"
	ErrClientResetPasswordTokenExpired     = "your reset password request already expired"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientCVTooLargeFormat              = "cv must not exceed %d MB"
	ErrClientInvalidCVDocument             = "cv must be a base64 encoded document"
	ErrClientUpstreamUnavailable           = "the service is temporarily unavailable, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON         = "cannot convert struct or other data types to JSON"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevServerProcess             = "server failed to process the request"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevPanicRecovered            = "panic recovered while serving request"
	ErrDevBackendRequestFailed      = "identity backend rejected the request"
	ErrDevBackendDecodeResponse     = "failed to decode identity backend response"
	ErrDevBackendNoUserReturned     = "identity backend returned no user record"
	ErrDevInvalidCredentials        = "sign in rejected by identity backend"
	ErrDevProfileNotFound           = "profile not found for identity"
	ErrDevProfileInsertFailed       = "failed to insert profile"
	ErrDevRoleTypeDoesntMatch       = "requested role does not match profile role"
	ErrDevAccountNotFound           = "no profile registered with the given email"
	ErrDevRecoveryFailed            = "password recovery failed"
	ErrDevAuthTokenMissing          = "authorization bearer token missing"
	ErrDevAuthTokenInvalidOrExpired = "access token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected access token signing method"
	ErrDevResetTokenExpired         = "reset password token unknown or expired"
	ErrDevPostgresDBFindData        = "failed to find data in postgres"
	ErrDevPostgresDBInsertData      = "failed to insert data into postgres"
	ErrDevMongoDBFindDocument       = "failed to find document in mongodb"
	ErrDevMongoDBInsertDocument     = "failed to insert document into mongodb"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisSetData              = "failed to set data into redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevSMTPSendEmailFormat       = "failed to send email via smtp host %s"
	ErrDevRabbitMQPublishFormat     = "failed to publish message to queue %s"
	ErrDevMinioCreateObjectFormat   = "failed to create object in bucket %s"
	ErrDevInvalidDataURL            = "cv is not a valid base64 data url"
	ErrDevCVTooLarge                = "cv exceeds the upload size limit"
)
