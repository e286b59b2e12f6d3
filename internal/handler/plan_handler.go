package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
)

func (h *Handlers) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var plan models.Plan

	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(plan); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.PlanService.CreatePlan(r.Context(), &plan)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, created, http.StatusCreated)
}

func (h *Handlers) GetPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.PlanService.GetPlans(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, plans, http.StatusOK)
}

func (h *Handlers) GetPlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID плана", http.StatusBadRequest)
		return
	}

	plan, err := h.PlanService.GetPlanByID(r.Context(), planID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, plan, http.StatusOK)
}

func (h *Handlers) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID плана", http.StatusBadRequest)
		return
	}

	var plan models.Plan

	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(plan); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	plan.PlanID = planID

	updated, err := h.PlanService.UpdatePlan(r.Context(), &plan)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, updated, http.StatusOK)
}

func (h *Handlers) DeletePlan(w http.ResponseWriter, r *http.Request) {
	planID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID плана", http.StatusBadRequest)
		return
	}

	if err := h.PlanService.DeletePlan(r.Context(), planID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: fmt.Sprintf("План с ID %d успешно удален", planID)}, http.StatusOK)
}
