package contracts

import (
	"context"
	"telemedicina-service/internal/pkg/dto/requests"
)

type Storage interface {
	UploadFile(ctx context.Context, request *requests.UploadFile) (string, error)
}
