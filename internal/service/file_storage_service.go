package service

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"path/filepath"

	"healthtrack-service/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/sirupsen/logrus"
)

// FileStorage uploads identification-document attachments to blob storage
// and hands back a reference the profile document can embed.
type FileStorage interface {
	Upload(ctx context.Context, data []byte, fileName string) (*entity.FileReference, error)
}

type minioFileStorage struct {
	client *minio.Client
	bucket string
	log    *logrus.Logger
}

func NewMinioFileStorage(client *minio.Client, bucket string, log *logrus.Logger) FileStorage {
	return &minioFileStorage{
		client: client,
		bucket: bucket,
		log:    log,
	}
}

func (s *minioFileStorage) Upload(ctx context.Context, data []byte, fileName string) (*entity.FileReference, error) {
	fileID := uuid.NewString()
	objectName := fmt.Sprintf("%s-%s", fileID, fileName)

	contentType := mime.TypeByExtension(filepath.Ext(fileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		s.log.Warnf("Failed to upload attachment %s: %+v", objectName, err)
		return nil, err
	}

	return &entity.FileReference{
		ID:   fileID,
		Name: fileName,
		URL:  fmt.Sprintf("%s/%s/%s", s.client.EndpointURL(), s.bucket, objectName),
	}, nil
}
