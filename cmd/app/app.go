package app

import (
	"log"

	"github.com/Naveesha-Jayah/share-taste/internal/config"
	"github.com/Naveesha-Jayah/share-taste/internal/database"
	"github.com/Naveesha-Jayah/share-taste/internal/repository"
	"github.com/Naveesha-Jayah/share-taste/internal/service"
	"github.com/Naveesha-Jayah/share-taste/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// media storage: flat local dir by default, MinIO optionally
	var mediaStorage storage.Storage
	switch cfg.MediaStorage {
	case "minio":
		mediaStorage, err = storage.NewMinIOStorage(cfg)
	default:
		mediaStorage, err = storage.NewLocalStorage(cfg.UploadDir)
	}
	if err != nil {
		log.Fatalf("Не удалось инициализировать хранилище медиа: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, mediaStorage)

	return db, repo, services
}
