package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/lib/pq"
)

const (
	MediaTypePhoto = "photo"
	MediaTypeVideo = "video"
)

// MediaItem - один медиа-элемент рецепта (фото или видео)
type MediaItem struct {
	MediaID  int64  `json:"-" db:"media_id"`
	RecipeID int64  `json:"-" db:"recipe_id"`
	Path     string `json:"path" db:"path"`
	Type     string `json:"type" db:"type"`
	Duration *int64 `json:"duration,omitempty" db:"duration"`
}

type Recipe struct {
	RecipeID          int64          `json:"id" db:"recipe_id"`
	RecipeName        string         `json:"recipeName" db:"recipe_name" validate:"required,max=255"`
	RecipeDescription string         `json:"recipeDescription" db:"recipe_description"`
	PrepTime          int            `json:"prepTime" db:"prep_time" validate:"min=0"`
	CookTime          int            `json:"cookTime" db:"cook_time" validate:"min=0"`
	Servings          int            `json:"servings" db:"servings" validate:"min=0"`
	DifficultyLevel   string         `json:"difficultyLevel" db:"difficulty_level"`
	Category          string         `json:"category" db:"category"`
	Ingredients       pq.StringArray `json:"ingredients" db:"ingredients"`
	Instructions      pq.StringArray `json:"instructions" db:"instructions"`
	MediaItems        []MediaItem    `json:"mediaItems" db:"-"`
	CreatedAt         time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt         time.Time      `json:"updatedAt" db:"updated_at"`
}

type Plan struct {
	PlanID          int64          `json:"id" db:"plan_id"`
	PlanTitle       string         `json:"planTitle" db:"plan_title" validate:"required,max=255"`
	PlanDescription string         `json:"planDescription" db:"plan_description"`
	PlanDuration    string         `json:"planDuration" db:"plan_duration"`
	PlanDifficulty  string         `json:"planDifficulty" db:"plan_difficulty"`
	PlanCategory    string         `json:"planCategory" db:"plan_category"`
	Meals           pq.StringArray `json:"meals" db:"meals"`
}

type Challenge struct {
	ChallengeID          int64  `json:"id" db:"challenge_id"`
	ChallengeTitle       string `json:"challengeTitle" db:"challenge_title" validate:"required,max=255"`
	ChallengeDescription string `json:"challengeDescription" db:"challenge_description"`
	Category             string `json:"category" db:"category"`
	Difficulty           string `json:"difficulty" db:"difficulty"`
	StartDate            Date   `json:"startDate" db:"start_date"`
	EndDate              Date   `json:"endDate" db:"end_date"`
}

type User struct {
	UserID    int64   `json:"id" db:"user_id"`
	Email     string  `json:"email" db:"email" validate:"required,email"`
	Name      string  `json:"name" db:"name"`
	ImageURL  string  `json:"imageUrl" db:"image_url"`
	Following []int64 `json:"following" db:"-"`
}

// MediaDescriptor - ответ эндпоинта загрузки медиа
type MediaDescriptor struct {
	Filename string `json:"filename"`
	Type     string `json:"type"`
	Duration *int64 `json:"duration,omitempty"`
}

// Date - календарная дата без времени, в JSON в формате "2006-01-02"
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("неверный формат даты: %s", s)
	}

	parsed, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return fmt.Errorf("неверный формат даты: %w", err)
	}

	d.Time = parsed
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("нельзя преобразовать %T в Date", src)
	}
}
