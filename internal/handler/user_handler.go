package handlers

import (
	"net/http"
)

// GetCurrentUser возвращает профиль текущего пользователя, создавая его
// при первом обращении по данным из claims токена
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	email, ok := r.Context().Value("email").(string)
	if !ok || email == "" {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	name, _ := r.Context().Value("name").(string)
	picture, _ := r.Context().Value("picture").(string)

	user, err := h.UserService.GetOrCreateUser(r.Context(), email, name, picture)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, user, http.StatusOK)
}

func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserService.GetUsers(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, users, http.StatusOK)
}

func (h *Handlers) FollowUser(w http.ResponseWriter, r *http.Request) {
	email, ok := r.Context().Value("email").(string)
	if !ok || email == "" {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	targetID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	if err := h.UserService.FollowUser(r.Context(), email, targetID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Подписка оформлена"}, http.StatusOK)
}

func (h *Handlers) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	email, ok := r.Context().Value("email").(string)
	if !ok || email == "" {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	targetID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	if err := h.UserService.UnfollowUser(r.Context(), email, targetID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Подписка отменена"}, http.StatusOK)
}
