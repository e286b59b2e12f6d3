package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Naveesha-Jayah/share-taste/internal/media"
	"github.com/Naveesha-Jayah/share-taste/internal/repository"
	"github.com/Naveesha-Jayah/share-taste/internal/storage"
)

// ErrorResponse - стандартный ответ с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse - стандартный ответ с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteError - универсальная функция для отправки ошибок
func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeSuccess - функция для успешных ответов
func writeSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeServiceError отображает ошибки сервисного слоя на HTTP-статусы:
// NotFound -> 404, отказ политики или неверный путь -> 400, остальное -> 500
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, storage.ErrFileNotFound):
		WriteError(w, err.Error(), http.StatusNotFound)
	case media.IsRejection(err), errors.Is(err, storage.ErrInvalidPath):
		WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Внутренняя ошибка: %v", err)
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
