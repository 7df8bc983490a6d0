package handlers

import (
	"github.com/go-playground/validator/v10"

	"ecotourism/internal/config"
	"ecotourism/internal/repository"
	"ecotourism/internal/service"
)

type Handlers struct {
	AuthService   service.AuthService
	NewsService   service.NewsService
	EventService  service.EventService
	CourseService service.CourseService
	News          repository.NewsRegistry
	Events        repository.EventRegistry
	UserRepo      repository.UserRepository
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(
	repo *repository.Repository,
	services *service.Service,
	news repository.NewsRegistry,
	events repository.EventRegistry,
	config *config.Config,
) *Handlers {
	return &Handlers{
		AuthService:   services.Auth,
		NewsService:   services.News,
		EventService:  services.Event,
		CourseService: services.Course,
		News:          news,
		Events:        events,
		UserRepo:      repo.User,
		Cfg:           config,
		Validate:      validator.New(),
	}
}
