package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Naveesha-Jayah/share-taste/internal/config"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func authHandler(t *testing.T, captured *map[string]string) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			email, _ := r.Context().Value("email").(string)
			name, _ := r.Context().Value("name").(string)
			picture, _ := r.Context().Value("picture").(string)
			*captured = map[string]string{"email": email, "name": name, "picture": picture}
		}
		w.WriteHeader(http.StatusOK)
	})

	cfg := &config.Config{JWTSecretKey: testSecret}
	return AuthMiddleware(cfg)(inner)
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("Публичные пути не требуют токена", func(t *testing.T) {
		handler := authHandler(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Пользовательский путь без токена", func(t *testing.T) {
		handler := authHandler(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Валидный токен кладёт claims в контекст", func(t *testing.T) {
		var captured map[string]string
		handler := authHandler(t, &captured)

		token := signToken(t, jwt.MapClaims{
			"email":   "a@example.com",
			"name":    "A",
			"picture": "http://img",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "a@example.com", captured["email"])
		assert.Equal(t, "A", captured["name"])
		assert.Equal(t, "http://img", captured["picture"])
	})

	t.Run("Токен без email отклоняется", func(t *testing.T) {
		handler := authHandler(t, nil)

		token := signToken(t, jwt.MapClaims{
			"name": "A",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Просроченный токен отклоняется", func(t *testing.T) {
		handler := authHandler(t, nil)

		token := signToken(t, jwt.MapClaims{
			"email": "a@example.com",
			"exp":   time.Now().Add(-time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("Неверный формат заголовка", func(t *testing.T) {
		handler := authHandler(t, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
		req.Header.Set("Authorization", "Basic abc")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := CORSMiddleware(inner)

	t.Run("Заголовки CORS выставляются", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	})

	t.Run("Preflight завершается без вызова обработчика", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/recipes", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
