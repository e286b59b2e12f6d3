package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
)

type recipeRepository struct {
	db *sqlx.DB
}

func NewRecipeRepository(db *sqlx.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

// Create сохраняет рецепт вместе с его медиа-элементами в одной транзакции
func (r *recipeRepository) Create(ctx context.Context, recipe *models.Recipe) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	recipe.CreatedAt = now
	recipe.UpdatedAt = now

	query := `
		INSERT INTO recipes (recipe_name, recipe_description, prep_time, cook_time, servings, difficulty_level, category, ingredients, instructions, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING recipe_id
	`

	err = tx.QueryRowContext(ctx, query,
		recipe.RecipeName,
		recipe.RecipeDescription,
		recipe.PrepTime,
		recipe.CookTime,
		recipe.Servings,
		recipe.DifficultyLevel,
		recipe.Category,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.CreatedAt,
		recipe.UpdatedAt,
	).Scan(&recipe.RecipeID)
	if err != nil {
		return fmt.Errorf("ошибка при создании рецепта: %w", err)
	}

	if err := insertMediaItems(ctx, tx, recipe.RecipeID, recipe.MediaItems); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func insertMediaItems(ctx context.Context, tx *sqlx.Tx, recipeID int64, items []models.MediaItem) error {
	query := `
		INSERT INTO recipe_media (recipe_id, path, type, duration)
		VALUES ($1, $2, $3, $4)
		RETURNING media_id
	`

	for i := range items {
		items[i].RecipeID = recipeID

		err := tx.QueryRowContext(ctx, query,
			recipeID,
			items[i].Path,
			items[i].Type,
			items[i].Duration,
		).Scan(&items[i].MediaID)
		if err != nil {
			return fmt.Errorf("ошибка при сохранении медиа-элемента: %w", err)
		}
	}

	return nil
}

func (r *recipeRepository) GetAll(ctx context.Context) ([]models.Recipe, error) {
	var recipes []models.Recipe

	query := `SELECT * FROM recipes ORDER BY recipe_id`

	err := r.db.SelectContext(ctx, &recipes, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении рецептов: %w", err)
	}

	if len(recipes) == 0 {
		return recipes, nil
	}

	ids := make([]int64, 0, len(recipes))
	index := make(map[int64]*models.Recipe, len(recipes))
	for i := range recipes {
		ids = append(ids, recipes[i].RecipeID)
		index[recipes[i].RecipeID] = &recipes[i]
	}

	var items []models.MediaItem

	mediaQuery := `SELECT * FROM recipe_media WHERE recipe_id = ANY($1) ORDER BY media_id`

	err = r.db.SelectContext(ctx, &items, mediaQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении медиа-элементов: %w", err)
	}

	for _, item := range items {
		recipe := index[item.RecipeID]
		recipe.MediaItems = append(recipe.MediaItems, item)
	}

	return recipes, nil
}

func (r *recipeRepository) GetByID(ctx context.Context, recipeID int64) (*models.Recipe, error) {
	var recipe models.Recipe

	query := `SELECT * FROM recipes WHERE recipe_id = $1`

	err := r.db.GetContext(ctx, &recipe, query, recipeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("рецепт с ID %d: %w", recipeID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении рецепта: %w", err)
	}

	mediaQuery := `SELECT * FROM recipe_media WHERE recipe_id = $1 ORDER BY media_id`

	err = r.db.SelectContext(ctx, &recipe.MediaItems, mediaQuery, recipeID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении медиа-элементов: %w", err)
	}

	return &recipe, nil
}

// Update полностью заменяет изменяемые поля рецепта и его набор медиа
func (r *recipeRepository) Update(ctx context.Context, recipe *models.Recipe) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("ошибка при открытии транзакции: %w", err)
	}
	defer tx.Rollback()

	recipe.UpdatedAt = time.Now()

	query := `
		UPDATE recipes
		SET recipe_name = $1, recipe_description = $2, prep_time = $3, cook_time = $4, servings = $5, difficulty_level = $6, category = $7, ingredients = $8, instructions = $9, updated_at = $10
		WHERE recipe_id = $11
	`

	result, err := tx.ExecContext(ctx, query,
		recipe.RecipeName,
		recipe.RecipeDescription,
		recipe.PrepTime,
		recipe.CookTime,
		recipe.Servings,
		recipe.DifficultyLevel,
		recipe.Category,
		recipe.Ingredients,
		recipe.Instructions,
		recipe.UpdatedAt,
		recipe.RecipeID,
	)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении рецепта: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("рецепт с ID %d: %w", recipe.RecipeID, ErrNotFound)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM recipe_media WHERE recipe_id = $1`, recipe.RecipeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении медиа-элементов: %w", err)
	}

	if err := insertMediaItems(ctx, tx, recipe.RecipeID, recipe.MediaItems); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("ошибка при фиксации транзакции: %w", err)
	}

	return nil
}

func (r *recipeRepository) Delete(ctx context.Context, recipeID int64) error {
	// медиа-элементы удаляются каскадно по внешнему ключу
	query := `DELETE FROM recipes WHERE recipe_id = $1`

	result, err := r.db.ExecContext(ctx, query, recipeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении рецепта: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("рецепт с ID %d: %w", recipeID, ErrNotFound)
	}

	return nil
}
