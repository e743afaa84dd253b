package storage

import (
	"bytes"
	"context"
	"telemedicina-service/internal/app/contracts"
	"telemedicina-service/internal/pkg/constvars"
	"telemedicina-service/internal/pkg/dto/requests"
	"telemedicina-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

func NewMinioStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
	}
}

// UploadFile stores the bytes under request.ObjectName and returns the object key.
func (m *minioStorage) UploadFile(ctx context.Context, request *requests.UploadFile) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	m.Log.Info("minioStorage.UploadFile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, request.ObjectName),
	)

	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		request.ObjectName,
		bytes.NewReader(request.Data),
		int64(len(request.Data)),
		minio.PutObjectOptions{
			ContentType: request.ContentType,
		},
	)
	if err != nil {
		m.Log.Error("minioStorage.UploadFile error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioStorage.UploadFile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectKey, request.ObjectName),
	)
	return request.ObjectName, nil
}
