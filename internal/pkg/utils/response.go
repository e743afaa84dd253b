package utils

import (
	"errors"
	"net/http"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/dto/responses"
	"telemedicina-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildSuccessResponse writes the envelope. Pass an untyped nil for user or
// session to leave them out.
func BuildSuccessResponse(w http.ResponseWriter, code int, message string, user, session interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		User:    user,
		Session: session,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			location := map[string]interface{}{
				"file":          location.File,
				"line":          location.Line,
				"function_name": location.FunctionName,
			}
			log.Error(customErr.DevMessage,
				zap.Int(constvars.LoggingStatusCodeKey, code),
				zap.Any(constvars.LoggingLocationKey, location),
			)
		}
	} else {
		log.Error(err.Error())
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(responses.ResponseDTO{
		Success: false,
		Message: clientMessage,
	})
}
