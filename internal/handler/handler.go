package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/Naveesha-Jayah/share-taste/internal/config"
	"github.com/Naveesha-Jayah/share-taste/internal/service"
)

type Handlers struct {
	RecipeService    service.RecipeService
	PlanService      service.PlanService
	ChallengeService service.ChallengeService
	UserService      service.UserService
	MediaService     service.MediaService
	TablesService    service.TablesService
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		RecipeService:    services.Recipe,
		PlanService:      services.Plan,
		ChallengeService: services.Challenge,
		UserService:      services.User,
		MediaService:     services.Media,
		TablesService:    services.Tables,
		Cfg:              config,
		Validate:         validator.New(),
	}
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"service": "share-taste"}, http.StatusOK)
}

func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
