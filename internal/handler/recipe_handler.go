package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
)

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}

func (h *Handlers) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	var recipe models.Recipe

	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(recipe); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.RecipeService.CreateRecipe(r.Context(), &recipe)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, created, http.StatusCreated)
}

func (h *Handlers) GetRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.RecipeService.GetRecipes(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, recipes, http.StatusOK)
}

func (h *Handlers) GetRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID рецепта", http.StatusBadRequest)
		return
	}

	recipe, err := h.RecipeService.GetRecipeByID(r.Context(), recipeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, recipe, http.StatusOK)
}

// UpdateRecipe целиком заменяет все изменяемые поля рецепта, включая набор медиа
func (h *Handlers) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID рецепта", http.StatusBadRequest)
		return
	}

	var recipe models.Recipe

	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(recipe); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	recipe.RecipeID = recipeID

	updated, err := h.RecipeService.UpdateRecipe(r.Context(), &recipe)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, updated, http.StatusOK)
}

func (h *Handlers) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := pathID(r)
	if err != nil {
		WriteError(w, "Неверный ID рецепта", http.StatusBadRequest)
		return
	}

	if err := h.RecipeService.DeleteRecipe(r.Context(), recipeID); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
