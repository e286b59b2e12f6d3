package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Naveesha-Jayah/share-taste/cmd/app"
	"github.com/Naveesha-Jayah/share-taste/internal/config"
	handlers "github.com/Naveesha-Jayah/share-taste/internal/handler"
	"github.com/Naveesha-Jayah/share-taste/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handlers.HealthHandler).Methods(http.MethodGet)
	router.HandleFunc("/tables", handler.TablesHandler).Methods(http.MethodGet)

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/recipes", handler.GetRecipes).Methods(http.MethodGet)
	api.HandleFunc("/recipes", handler.CreateRecipe).Methods(http.MethodPost)
	api.HandleFunc("/recipes/upload-media", handler.UploadMedia).Methods(http.MethodPost)
	api.HandleFunc("/recipes/media/{filename}", handler.GetMedia).Methods(http.MethodGet)
	api.HandleFunc("/recipes/{id:[0-9]+}", handler.GetRecipe).Methods(http.MethodGet)
	api.HandleFunc("/recipes/{id:[0-9]+}", handler.UpdateRecipe).Methods(http.MethodPut)
	api.HandleFunc("/recipes/{id:[0-9]+}", handler.DeleteRecipe).Methods(http.MethodDelete)

	api.HandleFunc("/plans", handler.GetPlans).Methods(http.MethodGet)
	api.HandleFunc("/plans", handler.CreatePlan).Methods(http.MethodPost)
	api.HandleFunc("/plans/{id:[0-9]+}", handler.GetPlan).Methods(http.MethodGet)
	api.HandleFunc("/plans/{id:[0-9]+}", handler.UpdatePlan).Methods(http.MethodPut)
	api.HandleFunc("/plans/{id:[0-9]+}", handler.DeletePlan).Methods(http.MethodDelete)

	api.HandleFunc("/challenges", handler.GetChallenges).Methods(http.MethodGet)
	api.HandleFunc("/challenges", handler.CreateChallenge).Methods(http.MethodPost)
	api.HandleFunc("/challenges/{id:[0-9]+}", handler.GetChallenge).Methods(http.MethodGet)
	api.HandleFunc("/challenges/{id:[0-9]+}", handler.UpdateChallenge).Methods(http.MethodPut)
	api.HandleFunc("/challenges/{id:[0-9]+}", handler.DeleteChallenge).Methods(http.MethodDelete)

	api.HandleFunc("/users/me", handler.GetCurrentUser).Methods(http.MethodGet)
	api.HandleFunc("/users", handler.GetUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id:[0-9]+}/follow", handler.FollowUser).Methods(http.MethodPost)
	api.HandleFunc("/users/{id:[0-9]+}/unfollow", handler.UnfollowUser).Methods(http.MethodPost)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
