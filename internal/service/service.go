package service

import (
	"ecotourism/internal/config"
	"ecotourism/internal/repository"
	"ecotourism/internal/storage"
)

type Service struct {
	News   NewsService
	Event  EventService
	Course CourseService
	Auth   AuthService
}

func NewService(
	repo *repository.Repository,
	news repository.NewsRegistry,
	events repository.EventRegistry,
	courses repository.CourseRegistry,
	cfg *config.Config,
	storage storage.Storage,
) *Service {
	reconciler := NewReconciler(news, events, cfg.ReconcileDelay)

	return &Service{
		News:   NewNewsService(news, storage),
		Event:  NewEventService(events, reconciler),
		Course: NewCourseService(courses),
		Auth:   NewAuthService(repo.User, cfg),
	}
}
