package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Naveesha-Jayah/share-taste/internal/config"
	"github.com/Naveesha-Jayah/share-taste/internal/media"
	"github.com/Naveesha-Jayah/share-taste/internal/models"
	"github.com/Naveesha-Jayah/share-taste/internal/storage"
)

// UploadRequest - загружаемый файл вместе с заявленными клиентом метаданными
type UploadRequest struct {
	FileName    string
	File        io.Reader
	Size        int64
	ContentType string
	MediaType   string
	Duration    *int64
	Existing    []models.MediaItem
}

type MediaService interface {
	Upload(ctx context.Context, req UploadRequest) (*models.MediaDescriptor, error)
	Fetch(ctx context.Context, fileName string) (io.ReadCloser, string, error)
}

type mediaService struct {
	storage storage.Storage
	cfg     *config.Config
}

func NewMediaService(storage storage.Storage, cfg *config.Config) MediaService {
	return &mediaService{
		storage: storage,
		cfg:     cfg,
	}
}

// Upload прогоняет файл через политику допуска и кладёт его в хранилище.
// Запись в БД здесь не происходит: привязка к рецепту выполняется
// последующим сохранением рецепта.
func (s *mediaService) Upload(ctx context.Context, req UploadRequest) (*models.MediaDescriptor, error) {
	candidate := media.Candidate{
		Type:        req.MediaType,
		ContentType: req.ContentType,
		Size:        req.Size,
		Duration:    req.Duration,
	}

	if err := media.CheckUpload(candidate, req.Existing); err != nil {
		return nil, err
	}

	fileName := generateFileName(req.FileName)

	if err := s.storage.Save(ctx, fileName, req.File, req.Size, req.ContentType); err != nil {
		return nil, fmt.Errorf("ошибка сохранения файла: %w", err)
	}

	descriptor := &models.MediaDescriptor{
		Filename: fileName,
		Type:     req.MediaType,
	}
	if req.MediaType == models.MediaTypeVideo {
		descriptor.Duration = req.Duration
	}

	return descriptor, nil
}

func (s *mediaService) Fetch(ctx context.Context, fileName string) (io.ReadCloser, string, error) {
	return s.storage.Open(ctx, fileName)
}

// generateFileName собирает имя из времени в миллисекундах и случайного
// суффикса с расширением оригинала. Случайные коллизии пренебрежимо редки,
// при точном совпадении имён файл перезаписывается.
func generateFileName(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.New().String(), ext)
}
