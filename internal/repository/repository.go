package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
)

var (
	// ErrNotFound - запись с указанным ID отсутствует в БД
	ErrNotFound = errors.New("запись не найдена")
	// ErrDuplicateEmail - нарушение уникальности email при создании пользователя
	ErrDuplicateEmail = errors.New("пользователь с таким email уже существует")
)

type RecipeRepository interface {
	Create(ctx context.Context, recipe *models.Recipe) error
	GetAll(ctx context.Context) ([]models.Recipe, error)
	GetByID(ctx context.Context, recipeID int64) (*models.Recipe, error)
	Update(ctx context.Context, recipe *models.Recipe) error
	Delete(ctx context.Context, recipeID int64) error
}

type PlanRepository interface {
	Create(ctx context.Context, plan *models.Plan) error
	GetAll(ctx context.Context) ([]models.Plan, error)
	GetByID(ctx context.Context, planID int64) (*models.Plan, error)
	Update(ctx context.Context, plan *models.Plan) error
	Delete(ctx context.Context, planID int64) error
}

type ChallengeRepository interface {
	Create(ctx context.Context, challenge *models.Challenge) error
	GetAll(ctx context.Context) ([]models.Challenge, error)
	GetByID(ctx context.Context, challengeID int64) (*models.Challenge, error)
	Update(ctx context.Context, challenge *models.Challenge) error
	Delete(ctx context.Context, challengeID int64) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	AddFollow(ctx context.Context, followerID, followeeID int64) error
	RemoveFollow(ctx context.Context, followerID, followeeID int64) error
	GetFollowing(ctx context.Context, userID int64) ([]int64, error)
}

type TablesRepository interface {
	CountTablesDB() (int, error)
}

type Repository struct {
	Recipe    RecipeRepository
	Plan      PlanRepository
	Challenge ChallengeRepository
	User      UserRepository
	Tables    TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Recipe:    NewRecipeRepository(db),
		Plan:      NewPlanRepository(db),
		Challenge: NewChallengeRepository(db),
		User:      NewUserRepository(db),
		Tables:    NewTablesRepository(db),
	}
}
