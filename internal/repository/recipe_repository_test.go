package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveesha-Jayah/share-taste/internal/models"
)

func newRecipeRepoMock(t *testing.T) (RecipeRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRecipeRepository(sqlxDB), mock
}

func TestRecipeRepository_Create(t *testing.T) {
	repo, mock := newRecipeRepoMock(t)
	ctx := context.Background()

	t.Run("Рецепт и медиа сохраняются в одной транзакции", func(t *testing.T) {
		recipe := &models.Recipe{
			RecipeName:  "Борщ",
			Ingredients: pq.StringArray{"Свекла", "Капуста"},
			MediaItems: []models.MediaItem{
				{Path: "1_a.jpg", Type: models.MediaTypePhoto},
				{Path: "2_b.jpg", Type: models.MediaTypePhoto},
			},
		}

		mock.ExpectBegin()
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO recipes")).
			WillReturnRows(sqlmock.NewRows([]string{"recipe_id"}).AddRow(int64(1)))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO recipe_media")).
			WithArgs(int64(1), "1_a.jpg", models.MediaTypePhoto, nil).
			WillReturnRows(sqlmock.NewRows([]string{"media_id"}).AddRow(int64(10)))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO recipe_media")).
			WithArgs(int64(1), "2_b.jpg", models.MediaTypePhoto, nil).
			WillReturnRows(sqlmock.NewRows([]string{"media_id"}).AddRow(int64(11)))
		mock.ExpectCommit()

		err := repo.Create(ctx, recipe)

		require.NoError(t, err)
		assert.Equal(t, int64(1), recipe.RecipeID)
		assert.Equal(t, int64(10), recipe.MediaItems[0].MediaID)
		assert.Equal(t, int64(1), recipe.MediaItems[1].RecipeID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecipeRepository_Update(t *testing.T) {
	repo, mock := newRecipeRepoMock(t)
	ctx := context.Background()

	recipe := &models.Recipe{
		RecipeID:   5,
		RecipeName: "Борщ",
		MediaItems: []models.MediaItem{
			{Path: "1_a.jpg", Type: models.MediaTypePhoto},
		},
	}

	t.Run("Набор медиа полностью заменяется", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE recipes")).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipe_media WHERE recipe_id = $1")).
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO recipe_media")).
			WithArgs(int64(5), "1_a.jpg", models.MediaTypePhoto, nil).
			WillReturnRows(sqlmock.NewRows([]string{"media_id"}).AddRow(int64(20)))
		mock.ExpectCommit()

		err := repo.Update(ctx, recipe)

		require.NoError(t, err)
		assert.Equal(t, int64(20), recipe.MediaItems[0].MediaID)
	})

	t.Run("Обновление несуществующего рецепта", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("UPDATE recipes")).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.Update(ctx, recipe)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecipeRepository_Delete(t *testing.T) {
	repo, mock := newRecipeRepoMock(t)
	ctx := context.Background()

	t.Run("Успешное удаление", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipes WHERE recipe_id = $1")).
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(ctx, 3)

		assert.NoError(t, err)
	})

	t.Run("Удаление несуществующего рецепта", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM recipes WHERE recipe_id = $1")).
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(ctx, 99)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
