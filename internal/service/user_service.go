package service

import (
	"context"
	"errors"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
	"github.com/Naveesha-Jayah/share-taste/internal/repository"
)

type UserService interface {
	GetOrCreateUser(ctx context.Context, email, name, imageURL string) (*models.User, error)
	GetUsers(ctx context.Context) ([]models.User, error)
	FollowUser(ctx context.Context, email string, targetID int64) error
	UnfollowUser(ctx context.Context, email string, targetID int64) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// GetOrCreateUser ищет пользователя по email и создаёт его при отсутствии.
// Уникальность email обеспечивает БД: проигравший гонку insert
// повторяется как lookup.
func (s *userService) GetOrCreateUser(ctx context.Context, email, name, imageURL string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user = &models.User{
		Email:    email,
		Name:     name,
		ImageURL: imageURL,
	}

	err = s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return s.userRepo.GetByEmail(ctx, email)
		}
		return nil, err
	}

	return user, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *userService) FollowUser(ctx context.Context, email string, targetID int64) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	// цель должна существовать, иначе NotFound уходит клиенту
	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	return s.userRepo.AddFollow(ctx, user.UserID, target.UserID)
}

func (s *userService) UnfollowUser(ctx context.Context, email string, targetID int64) error {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return err
	}

	return s.userRepo.RemoveFollow(ctx, user.UserID, target.UserID)
}
