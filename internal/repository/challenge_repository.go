package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
)

type challengeRepository struct {
	db *sqlx.DB
}

func NewChallengeRepository(db *sqlx.DB) ChallengeRepository {
	return &challengeRepository{db: db}
}

func (r *challengeRepository) Create(ctx context.Context, challenge *models.Challenge) error {
	query := `
		INSERT INTO challenges (challenge_title, challenge_description, category, difficulty, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING challenge_id
	`

	err := r.db.QueryRowContext(ctx, query,
		challenge.ChallengeTitle,
		challenge.ChallengeDescription,
		challenge.Category,
		challenge.Difficulty,
		challenge.StartDate,
		challenge.EndDate,
	).Scan(&challenge.ChallengeID)
	if err != nil {
		return fmt.Errorf("ошибка при создании челленджа: %w", err)
	}

	return nil
}

func (r *challengeRepository) GetAll(ctx context.Context) ([]models.Challenge, error) {
	var challenges []models.Challenge

	query := `SELECT * FROM challenges ORDER BY challenge_id`

	err := r.db.SelectContext(ctx, &challenges, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении челленджей: %w", err)
	}

	return challenges, nil
}

func (r *challengeRepository) GetByID(ctx context.Context, challengeID int64) (*models.Challenge, error) {
	var challenge models.Challenge

	query := `SELECT * FROM challenges WHERE challenge_id = $1`

	err := r.db.GetContext(ctx, &challenge, query, challengeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("челлендж с ID %d: %w", challengeID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении челленджа: %w", err)
	}

	return &challenge, nil
}

func (r *challengeRepository) Update(ctx context.Context, challenge *models.Challenge) error {
	query := `
		UPDATE challenges
		SET challenge_title = $1, challenge_description = $2, category = $3, difficulty = $4, start_date = $5, end_date = $6
		WHERE challenge_id = $7
	`

	result, err := r.db.ExecContext(ctx, query,
		challenge.ChallengeTitle,
		challenge.ChallengeDescription,
		challenge.Category,
		challenge.Difficulty,
		challenge.StartDate,
		challenge.EndDate,
		challenge.ChallengeID,
	)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении челленджа: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("челлендж с ID %d: %w", challenge.ChallengeID, ErrNotFound)
	}

	return nil
}

func (r *challengeRepository) Delete(ctx context.Context, challengeID int64) error {
	query := `DELETE FROM challenges WHERE challenge_id = $1`

	result, err := r.db.ExecContext(ctx, query, challengeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении челленджа: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("челлендж с ID %d: %w", challengeID, ErrNotFound)
	}

	return nil
}
