package utils

import (
	"net/http"
	"strings"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// ExtractBearerToken returns the token of an Authorization header or an empty
// string when none is present.
func ExtractBearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get(constvars.HeaderAuthorization))
	if len(header) < len(constvars.AuthorizationBearerPrefix) {
		return ""
	}
	if !strings.EqualFold(header[:len(constvars.AuthorizationBearerPrefix)], constvars.AuthorizationBearerPrefix) {
		return ""
	}
	return strings.TrimSpace(header[len(constvars.AuthorizationBearerPrefix):])
}

// ParseAccessToken verifies an access token issued by the identity backend and
// returns its subject.
// An empty secret never verifies, since anyone can sign with it.
func ParseAccessToken(tokenString, secret string) (string, error) {
	if secret == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, exceptions.WrapWithoutError(constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthSigningMethod)
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	if !token.Valid || claims.Subject == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(nil)
	}

	return claims.Subject, nil
}
