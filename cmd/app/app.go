package app

import (
	"context"
	"log"

	"ecotourism/internal/config"
	"ecotourism/internal/database"
	"ecotourism/internal/repository"
	"ecotourism/internal/service"
	"ecotourism/internal/storage"
)

type Registries struct {
	News    repository.NewsRegistry
	Events  repository.EventRegistry
	Courses repository.CourseRegistry
}

func App(cfg *config.Config) (*database.DB, *repository.Repository, *Registries, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	// реестры загружают свои данные из kv-хранилища один раз при старте
	ctx := context.Background()
	registries := &Registries{
		News:    repository.NewNewsRegistry(ctx, repo.KV, minioClient),
		Events:  repository.NewEventRegistry(ctx, repo.KV),
		Courses: repository.NewCourseRegistry(ctx, repo.KV),
	}

	services := service.NewService(repo, registries.News, registries.Events, registries.Courses, cfg, minioClient)

	return db, repo, registries, services
}
