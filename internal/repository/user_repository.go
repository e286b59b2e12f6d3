package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
)

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// uniqueViolation - код ошибки PostgreSQL для нарушения уникальности
const uniqueViolation = "23505"

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (email, name, image_url)
		VALUES ($1, $2, $3)
		RETURNING user_id
	`

	err := r.db.QueryRowContext(ctx, query, user.Email, user.Name, user.ImageURL).Scan(&user.UserID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fmt.Errorf("email %s: %w", user.Email, ErrDuplicateEmail)
		}
		return fmt.Errorf("ошибка при создании пользователя: %w", err)
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE user_id = $1`

	err := r.db.GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с ID %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя: %w", err)
	}

	user.Following, err = r.GetFollowing(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пользователь с email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении пользователя по email: %w", err)
	}

	user.Following, err = r.GetFollowing(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User

	query := `SELECT * FROM users ORDER BY user_id`

	err := r.db.SelectContext(ctx, &users, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пользователей: %w", err)
	}

	if len(users) == 0 {
		return users, nil
	}

	// подписки загружаются одним запросом и раскладываются по пользователям
	rows, err := r.db.QueryContext(ctx, `SELECT follower_id, followee_id FROM user_follows ORDER BY followee_id`)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок: %w", err)
	}
	defer rows.Close()

	following := make(map[int64][]int64)
	for rows.Next() {
		var followerID, followeeID int64
		if err := rows.Scan(&followerID, &followeeID); err != nil {
			return nil, fmt.Errorf("ошибка при чтении подписок: %w", err)
		}
		following[followerID] = append(following[followerID], followeeID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка при чтении подписок: %w", err)
	}

	for i := range users {
		users[i].Following = following[users[i].UserID]
	}

	return users, nil
}

func (r *userRepository) AddFollow(ctx context.Context, followerID, followeeID int64) error {
	// повторная подписка не ошибка, отношение остаётся множеством
	query := `
		INSERT INTO user_follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении подписки: %w", err)
	}

	return nil
}

func (r *userRepository) RemoveFollow(ctx context.Context, followerID, followeeID int64) error {
	query := `DELETE FROM user_follows WHERE follower_id = $1 AND followee_id = $2`

	_, err := r.db.ExecContext(ctx, query, followerID, followeeID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении подписки: %w", err)
	}

	return nil
}

func (r *userRepository) GetFollowing(ctx context.Context, userID int64) ([]int64, error) {
	var following []int64

	query := `SELECT followee_id FROM user_follows WHERE follower_id = $1 ORDER BY followee_id`

	err := r.db.SelectContext(ctx, &following, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении подписок: %w", err)
	}

	return following, nil
}
