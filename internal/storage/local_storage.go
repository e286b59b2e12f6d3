package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// LocalStorage - хранилище в плоской директории на диске
type LocalStorage struct {
	root string
}

// NewLocalStorage нормализует путь к директории загрузок и создаёт её
func NewLocalStorage(uploadDir string) (*LocalStorage, error) {
	root, err := filepath.Abs(uploadDir)
	if err != nil {
		return nil, fmt.Errorf("не удалось определить путь к директории загрузок: %w", err)
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать директорию загрузок: %w", err)
	}

	log.Printf("Директория загрузок: %s", root)

	return &LocalStorage{root: root}, nil
}

// resolve возвращает абсолютный путь к файлу внутри корня хранилища.
// Имена, выводящие за пределы корня ("..", абсолютные пути), отклоняются.
func (s *LocalStorage) resolve(fileName string) (string, error) {
	path := filepath.Join(s.root, filepath.Clean("/"+fileName))
	if filepath.Dir(path) != s.root || path == s.root {
		return "", ErrInvalidPath
	}
	if filepath.Base(path) != fileName {
		return "", ErrInvalidPath
	}
	return path, nil
}

func (s *LocalStorage) Save(ctx context.Context, fileName string, file io.Reader, size int64, contentType string) error {
	path, err := s.resolve(fileName)
	if err != nil {
		return err
	}

	// при совпадении имён файл перезаписывается
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("не удалось создать файл: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(path)
		return fmt.Errorf("не удалось записать файл: %w", err)
	}

	return nil
}

func (s *LocalStorage) Open(ctx context.Context, fileName string) (io.ReadCloser, string, error) {
	path, err := s.resolve(fileName)
	if err != nil {
		return nil, "", err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, "", ErrFileNotFound
		}
		return nil, "", fmt.Errorf("не удалось прочитать файл: %w", err)
	}

	contentType := detectContentType(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("не удалось открыть файл: %w", err)
	}

	return f, contentType, nil
}

func detectContentType(path string) string {
	if mtype, err := mimetype.DetectFile(path); err == nil {
		return mtype.String()
	}
	if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		return byExt
	}
	return "application/octet-stream"
}
