package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
)

func (h *Handlers) CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var challenge models.Challenge

	if err := json.NewDecoder(r.Body).Decode(&challenge); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(challenge); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.ChallengeService.CreateChallenge(r.Context(), &challenge)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, created, http.StatusCreated)
}

func (h *Handlers) GetChallenges(w http.ResponseWriter, r *http.Request) {
	challenges, err := h.ChallengeService.GetChallenges(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, challenges, http.StatusOK)
}

func (h *Handlers) GetChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID челленджа", http.StatusBadRequest)
		return
	}

	challenge, err := h.ChallengeService.GetChallengeByID(r.Context(), challengeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, challenge, http.StatusOK)
}

func (h *Handlers) UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID челленджа", http.StatusBadRequest)
		return
	}

	var challenge models.Challenge

	if err := json.NewDecoder(r.Body).Decode(&challenge); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(challenge); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	challenge.ChallengeID = challengeID

	updated, err := h.ChallengeService.UpdateChallenge(r.Context(), &challenge)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, updated, http.StatusOK)
}

func (h *Handlers) DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	challengeID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID челленджа", http.StatusBadRequest)
		return
	}

	if err := h.ChallengeService.DeleteChallenge(r.Context(), challengeID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: fmt.Sprintf("Челлендж с ID %d успешно удален", challengeID)}, http.StatusOK)
}
