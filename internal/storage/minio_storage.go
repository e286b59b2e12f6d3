package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/Naveesha-Jayah/share-taste/internal/config"

	"io"
	"time"
)

// MinIOStorage - хранилище медиа-файлов в бакете MinIO
type MinIOStorage struct {
	client *minio.Client
	bucket string
}

func NewMinIOStorage(cfg *config.Config) (*MinIOStorage, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка подключения к MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета: %w", err)
		}
	}

	return &MinIOStorage{
		client: client,
		bucket: cfg.MinIO.BucketName,
	}, nil
}

// validObjectName отклоняет имена с разделителями пути, пространство имён плоское
func validObjectName(fileName string) bool {
	if fileName == "" || fileName == "." || fileName == ".." {
		return false
	}
	return !strings.ContainsAny(fileName, `/\`)
}

func (m *MinIOStorage) Save(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) error {
	if !validObjectName(fileName) {
		return ErrInvalidPath
	}

	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucket, fileName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"uploaded-at": time.Now().Format(time.RFC3339),
			},
		})
	if err != nil {
		return fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return nil
}

func (m *MinIOStorage) Open(ctx context.Context, fileName string) (io.ReadCloser, string, error) {
	if !validObjectName(fileName) {
		return nil, "", ErrInvalidPath
	}

	obj, err := m.client.GetObject(ctx, m.bucket, fileName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", fmt.Errorf("ошибка чтения из MinIO: %w", err)
	}

	stat, err := obj.Stat()
	if err != nil {
		obj.Close()
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return nil, "", ErrFileNotFound
		}
		return nil, "", fmt.Errorf("ошибка чтения из MinIO: %w", err)
	}

	contentType := stat.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return obj, contentType, nil
}
