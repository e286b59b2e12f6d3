package service

import (
	"github.com/Naveesha-Jayah/share-taste/internal/config"
	"github.com/Naveesha-Jayah/share-taste/internal/repository"
	"github.com/Naveesha-Jayah/share-taste/internal/storage"
)

type Service struct {
	Recipe    RecipeService
	Plan      PlanService
	Challenge ChallengeService
	User      UserService
	Media     MediaService
	Tables    TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Recipe:    NewRecipeService(rep.Recipe),
		Plan:      NewPlanService(rep.Plan),
		Challenge: NewChallengeService(rep.Challenge),
		User:      NewUserService(rep.User),
		Media:     NewMediaService(storage, cfg),
		Tables:    NewTablesService(rep.Tables),
	}
}
