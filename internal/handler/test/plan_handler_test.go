package test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
	"github.com/Naveesha-Jayah/share-taste/internal/repository"
)

func TestCreatePlanHandler(t *testing.T) {
	t.Run("Успешное создание плана", func(t *testing.T) {
		handler := newTestHandlers()
		mockPlan := handler.PlanService.(*MockPlanService)

		created := &models.Plan{
			PlanID:    1,
			PlanTitle: "Неделя супов",
			Meals:     pq.StringArray{"Борщ"},
		}
		mockPlan.On("CreatePlan", mock.Anything, mock.AnythingOfType("*models.Plan")).
			Return(created, nil)

		body, _ := json.Marshal(map[string]interface{}{
			"planTitle": "Неделя супов",
			"meals":     []string{"Борщ"},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CreatePlan(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)

		var response models.Plan
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, int64(1), response.PlanID)
		mockPlan.AssertExpectations(t)
	})

	t.Run("Невалидный JSON", func(t *testing.T) {
		handler := newTestHandlers()

		req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewReader([]byte("{")))
		rr := httptest.NewRecorder()

		handler.CreatePlan(rr, req)

		assertJSONError(t, rr, http.StatusBadRequest, "Неверный формат запроса")
	})

	t.Run("План без названия отклоняется валидатором", func(t *testing.T) {
		handler := newTestHandlers()

		body, _ := json.Marshal(map[string]interface{}{"planDescription": "без названия"})

		req := httptest.NewRequest(http.MethodPost, "/api/plans", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		handler.CreatePlan(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestGetPlanHandler(t *testing.T) {
	t.Run("Несуществующий план", func(t *testing.T) {
		handler := newTestHandlers()
		mockPlan := handler.PlanService.(*MockPlanService)

		mockPlan.On("GetPlanByID", mock.Anything, int64(99)).
			Return(nil, fmt.Errorf("план с ID 99: %w", repository.ErrNotFound))

		req := httptest.NewRequest(http.MethodGet, "/api/plans/99", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "99"})
		rr := httptest.NewRecorder()

		handler.GetPlan(rr, req)

		assertJSONError(t, rr, http.StatusNotFound, "не найден")
	})

	t.Run("Нечисловой ID", func(t *testing.T) {
		handler := newTestHandlers()

		req := httptest.NewRequest(http.MethodGet, "/api/plans/abc", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "abc"})
		rr := httptest.NewRecorder()

		handler.GetPlan(rr, req)

		assertJSONError(t, rr, http.StatusBadRequest, "Неверный ID плана")
	})
}

func TestDeletePlanHandler(t *testing.T) {
	t.Run("Успешное удаление с подтверждением", func(t *testing.T) {
		handler := newTestHandlers()
		mockPlan := handler.PlanService.(*MockPlanService)

		mockPlan.On("DeletePlan", mock.Anything, int64(3)).Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/api/plans/3", nil)
		req = mux.SetURLVars(req, map[string]string{"id": "3"})
		rr := httptest.NewRecorder()

		handler.DeletePlan(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var response map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
		assert.Equal(t, "План с ID 3 успешно удален", response["message"])
	})
}
