package utils

import (
	"encoding/base64"
	"errors"
	"mime"
	"regexp"
	"strings"
	"telemedicina-service/internal/pkg/constvars"
)

var dataURLPattern = regexp.MustCompile(constvars.RegexDataURL)

func IsDataURL(value string) bool {
	return dataURLPattern.MatchString(value)
}

// ParseDataURL decodes a base64 data URL into its content type, a file
// extension guess and the raw bytes.
func ParseDataURL(value string) (contentType, extension string, data []byte, err error) {
	header := dataURLPattern.FindString(value)
	if header == "" {
		return "", "", nil, errors.New(constvars.ErrDevInvalidDataURL)
	}

	contentType = "application/octet-stream"
	if match := dataURLPattern.FindStringSubmatch(value); len(match) > 1 && match[1] != "" {
		contentType = match[1]
	}

	data, err = base64.StdEncoding.DecodeString(strings.TrimSpace(value[len(header):]))
	if err != nil {
		return "", "", nil, err
	}

	if extensions, _ := mime.ExtensionsByType(contentType); len(extensions) > 0 {
		extension = extensions[0]
	}
	return contentType, extension, data, nil
}
