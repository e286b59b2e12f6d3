package storage

import (
	"context"
	"errors"
	"io"
)

var (
	ErrInvalidPath  = errors.New("недопустимый путь к файлу")
	ErrFileNotFound = errors.New("файл не найден")
)

// Storage - хранилище загруженных медиа-файлов
type Storage interface {
	Save(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) error
	Open(ctx context.Context, fileName string) (io.ReadCloser, string, error)
}
