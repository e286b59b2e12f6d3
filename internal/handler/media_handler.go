package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
	"github.com/Naveesha-Jayah/share-taste/internal/service"
)

// UploadMedia принимает multipart-форму с полями file, type, duration и
// existingMedia (JSON-массив уже прикреплённых к рецепту медиа-элементов)
func (h *Handlers) UploadMedia(w http.ResponseWriter, r *http.Request) {
	// ограничение размера тела из конфига
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+1024)

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, fmt.Sprintf("Файл слишком большой (макс. %d MB)",
				h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	mediaType := r.FormValue("type")

	var duration *int64
	if value := r.FormValue("duration"); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			WriteError(w, "Неверное значение длительности", http.StatusBadRequest)
			return
		}
		duration = &parsed
	}

	// снимок уже прикреплённых медиа присылает клиент, он служит только
	// для ранней обратной связи
	var existing []models.MediaItem
	if value := r.FormValue("existingMedia"); value != "" {
		if err := json.Unmarshal([]byte(value), &existing); err != nil {
			WriteError(w, "Неверный формат данных existingMedia", http.StatusBadRequest)
			return
		}
	}

	descriptor, err := h.MediaService.Upload(r.Context(), service.UploadRequest{
		FileName:    header.Filename,
		File:        file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		MediaType:   mediaType,
		Duration:    duration,
		Existing:    existing,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, descriptor, http.StatusOK)
}

// GetMedia отдаёт ранее загруженный файл по имени
func (h *Handlers) GetMedia(w http.ResponseWriter, r *http.Request) {
	fileName := mux.Vars(r)["filename"]

	content, contentType, err := h.MediaService.Fetch(r.Context(), fileName)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	defer content.Close()

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content); err != nil {
		// заголовки уже отправлены, остаётся только залогировать
		fmt.Printf("Ошибка при отдаче файла %s: %v\n", fileName, err)
	}
}
