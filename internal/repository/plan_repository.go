package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
)

type planRepository struct {
	db *sqlx.DB
}

func NewPlanRepository(db *sqlx.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) Create(ctx context.Context, plan *models.Plan) error {
	query := `
		INSERT INTO plans (plan_title, plan_description, plan_duration, plan_difficulty, plan_category, meals)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING plan_id
	`

	err := r.db.QueryRowContext(ctx, query,
		plan.PlanTitle,
		plan.PlanDescription,
		plan.PlanDuration,
		plan.PlanDifficulty,
		plan.PlanCategory,
		plan.Meals,
	).Scan(&plan.PlanID)
	if err != nil {
		return fmt.Errorf("ошибка при создании плана: %w", err)
	}

	return nil
}

func (r *planRepository) GetAll(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan

	query := `SELECT * FROM plans ORDER BY plan_id`

	err := r.db.SelectContext(ctx, &plans, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении планов: %w", err)
	}

	return plans, nil
}

func (r *planRepository) GetByID(ctx context.Context, planID int64) (*models.Plan, error) {
	var plan models.Plan

	query := `SELECT * FROM plans WHERE plan_id = $1`

	err := r.db.GetContext(ctx, &plan, query, planID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("план с ID %d: %w", planID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении плана: %w", err)
	}

	return &plan, nil
}

func (r *planRepository) Update(ctx context.Context, plan *models.Plan) error {
	query := `
		UPDATE plans
		SET plan_title = $1, plan_description = $2, plan_duration = $3, plan_difficulty = $4, plan_category = $5, meals = $6
		WHERE plan_id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		plan.PlanTitle,
		plan.PlanDescription,
		plan.PlanDuration,
		plan.PlanDifficulty,
		plan.PlanCategory,
		plan.Meals,
		plan.PlanID,
	)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении плана: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("план с ID %d: %w", plan.PlanID, ErrNotFound)
	}

	return nil
}

func (r *planRepository) Delete(ctx context.Context, planID int64) error {
	query := `DELETE FROM plans WHERE plan_id = $1`

	result, err := r.db.ExecContext(ctx, query, planID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении плана: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("план с ID %d: %w", planID, ErrNotFound)
	}

	return nil
}
