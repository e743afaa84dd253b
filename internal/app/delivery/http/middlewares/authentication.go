package middlewares

import (
	"context"
	"net/http"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/exceptions"
	"telemedicina-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer access token locally and puts its subject
// and the raw token in the request context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		token := utils.ExtractBearerToken(r)
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		uid, err := utils.ParseAccessToken(token, m.DriverConfig.Supabase.JWTSecret)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate rejected access token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_UID_KEY, uid)
		ctx = context.WithValue(ctx, constvars.CONTEXT_ACCESS_TOKEN_KEY, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
