package service

import (
	"context"

	"github.com/Naveesha-Jayah/share-taste/internal/media"
	"github.com/Naveesha-Jayah/share-taste/internal/models"
	"github.com/Naveesha-Jayah/share-taste/internal/repository"
)

type RecipeService interface {
	CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	GetRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipeByID(ctx context.Context, recipeID int64) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID int64) error
}

type recipeService struct {
	recipeRepo repository.RecipeRepository
}

func NewRecipeService(recipeRepo repository.RecipeRepository) RecipeService {
	return &recipeService{recipeRepo: recipeRepo}
}

// CreateRecipe проверяет инвариант набора медиа и сохраняет рецепт.
// Проверка набора при сохранении - авторитетная: набор собирает клиент,
// и проверка отдельного файла при загрузке его не гарантирует.
func (s *recipeService) CreateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if err := media.ValidateSet(recipe.MediaItems); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (s *recipeService) GetRecipes(ctx context.Context) ([]models.Recipe, error) {
	return s.recipeRepo.GetAll(ctx)
}

func (s *recipeService) GetRecipeByID(ctx context.Context, recipeID int64) (*models.Recipe, error) {
	return s.recipeRepo.GetByID(ctx, recipeID)
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipe *models.Recipe) (*models.Recipe, error) {
	if err := media.ValidateSet(recipe.MediaItems); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, err
	}

	return recipe, nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID int64) error {
	return s.recipeRepo.Delete(ctx, recipeID)
}
