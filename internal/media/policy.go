package media

import (
	"errors"
	"strings"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
)

const (
	// MaxFileSize - максимальный размер загружаемого файла (50 МБ)
	MaxFileSize = 50 * 1024 * 1024
	// MaxVideoDuration - максимальная длительность видео в секундах
	MaxVideoDuration = 30
	// MaxPhotoCount - максимальное количество фотографий на рецепт
	MaxPhotoCount = 3
)

var (
	ErrFileTooLarge    = errors.New("размер файла превышает 50 МБ")
	ErrInvalidType     = errors.New("недопустимый тип файла, разрешены image/* и video/*")
	ErrVideoWithPhotos = errors.New("нельзя добавить видео, пока у рецепта есть фотографии")
	ErrPhotoWithVideo  = errors.New("нельзя добавить фото, пока у рецепта есть видео")
	ErrVideoLimit      = errors.New("допускается только одно видео на рецепт")
	ErrPhotoLimit      = errors.New("допускается не более 3 фотографий на рецепт")
	ErrVideoDuration   = errors.New("длительность видео должна быть указана и не превышать 30 секунд")
	ErrEmptySet        = errors.New("рецепт должен содержать хотя бы один медиа-элемент")
	ErrMixedSet        = errors.New("рецепт не может содержать одновременно фото и видео")
)

// IsRejection сообщает, является ли ошибка отказом политики допуска,
// то есть ожидаемым ответом клиенту, а не сбоем сервера
func IsRejection(err error) bool {
	rejections := []error{
		ErrFileTooLarge,
		ErrInvalidType,
		ErrVideoWithPhotos,
		ErrPhotoWithVideo,
		ErrVideoLimit,
		ErrPhotoLimit,
		ErrVideoDuration,
		ErrEmptySet,
		ErrMixedSet,
	}

	for _, rejection := range rejections {
		if errors.Is(err, rejection) {
			return true
		}
	}
	return false
}

// Candidate - загружаемый медиа-файл, каким его заявил клиент
type Candidate struct {
	Type        string // photo | video
	ContentType string
	Size        int64
	Duration    *int64 // секунды, только для видео
}

func countByType(items []models.MediaItem) (videos, photos int) {
	for _, item := range items {
		switch item.Type {
		case models.MediaTypeVideo:
			videos++
		case models.MediaTypePhoto:
			photos++
		}
	}
	return videos, photos
}

// CheckUpload решает, можно ли добавить кандидата к уже имеющемуся набору медиа.
// Набор existing передаёт клиент, он не перечитывается из БД: проверка даёт
// раннюю обратную связь, авторитетная проверка набора выполняется при
// сохранении рецепта через ValidateSet.
func CheckUpload(c Candidate, existing []models.MediaItem) error {
	// проверка размера
	if c.Size > MaxFileSize {
		return ErrFileTooLarge
	}

	// заявленный тип должен соответствовать content-type файла
	switch c.Type {
	case models.MediaTypePhoto:
		if !strings.HasPrefix(c.ContentType, "image/") {
			return ErrInvalidType
		}
	case models.MediaTypeVideo:
		if !strings.HasPrefix(c.ContentType, "video/") {
			return ErrInvalidType
		}
	default:
		return ErrInvalidType
	}

	videos, photos := countByType(existing)

	// нельзя смешивать фото и видео
	if c.Type == models.MediaTypeVideo && photos > 0 {
		return ErrVideoWithPhotos
	}
	if c.Type == models.MediaTypePhoto && videos > 0 {
		return ErrPhotoWithVideo
	}

	// ограничения на количество
	if c.Type == models.MediaTypeVideo && videos > 0 {
		return ErrVideoLimit
	}
	if c.Type == models.MediaTypePhoto && photos >= MaxPhotoCount {
		return ErrPhotoLimit
	}

	// проверка длительности видео
	if c.Type == models.MediaTypeVideo {
		if c.Duration == nil || *c.Duration > MaxVideoDuration {
			return ErrVideoDuration
		}
	}

	return nil
}

// ValidateSet проверяет инвариант полного набора медиа рецепта:
// либо одно видео без фотографий, либо от 1 до 3 фотографий без видео.
func ValidateSet(items []models.MediaItem) error {
	if len(items) == 0 {
		return ErrEmptySet
	}

	videos, photos := countByType(items)

	if videos+photos != len(items) {
		return ErrInvalidType
	}

	if videos > 0 {
		if videos > 1 {
			return ErrVideoLimit
		}
		if photos > 0 {
			return ErrMixedSet
		}
		for _, item := range items {
			if item.Type == models.MediaTypeVideo {
				if item.Duration == nil || *item.Duration > MaxVideoDuration {
					return ErrVideoDuration
				}
			}
		}
		return nil
	}

	if photos > MaxPhotoCount {
		return ErrPhotoLimit
	}

	return nil
}
