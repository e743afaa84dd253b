package utils

import (
	"fmt"
	"strings"
	"telemedicina-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateResetPasswordToken returns an opaque single use token.
func GenerateResetPasswordToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "") + strings.ReplaceAll(uuid.NewString(), "-", "")
}

func GenerateFileName(prefix, ownerID, fileExtension string) string {
	timestamp := time.Now().UTC().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s/%s_%s%s", prefix, ownerID, timestamp, fileExtension)
}

func BuildResetPasswordLink(baseURL, token string) string {
	separator := "?"
	if strings.Contains(baseURL, "?") {
		separator = "&"
	}
	return baseURL + separator + "token=" + token
}
