package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"ecotourism/internal/models"
	"ecotourism/internal/repository"
	"ecotourism/internal/storage"
)

// NewsInput - форма создания/редактирования новости.
// Обязательность полей проверяет форма (валидатор в хендлере),
// сам реестр принимает запись как есть
type NewsInput struct {
	Type        string `json:"type" validate:"required,oneof=news promotion holiday eco-event"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Region      string `json:"region"`
	Status      string `json:"status" validate:"required,oneof=active inactive"`
	Discount    string `json:"discount"`
	ValidUntil  string `json:"validUntil"`
}

type NewsService interface {
	CreateNews(ctx context.Context, in NewsInput) models.NewsItem
	UpdateNews(ctx context.Context, id string, in NewsInput) error
	DeleteNews(ctx context.Context, id string) error
	AttachImage(ctx context.Context, newsID, fileName string, file io.Reader, size int64) (models.NewsItem, error)
	RemoveImage(ctx context.Context, newsID string) error
}

type newsService struct {
	news    repository.NewsRegistry
	storage storage.Storage
}

func NewNewsService(news repository.NewsRegistry, storage storage.Storage) NewsService {
	return &newsService{
		news:    news,
		storage: storage,
	}
}

func (s *newsService) CreateNews(ctx context.Context, in NewsInput) models.NewsItem {
	return s.news.Add(ctx, models.NewsItem{
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Region:      in.Region,
		Status:      in.Status,
		Discount:    in.Discount,
		ValidUntil:  in.ValidUntil,
	})
}

func (s *newsService) UpdateNews(ctx context.Context, id string, in NewsInput) error {
	patch := repository.NewsItemPatch{
		Type:        repository.StrPtr(in.Type),
		Title:       repository.StrPtr(in.Title),
		Description: repository.StrPtr(in.Description),
		Date:        repository.StrPtr(in.Date),
		Region:      repository.StrPtr(in.Region),
		Status:      repository.StrPtr(in.Status),
		Discount:    repository.StrPtr(in.Discount),
		ValidUntil:  repository.StrPtr(in.ValidUntil),
	}

	if !s.news.Update(ctx, id, patch) {
		return fmt.Errorf("новость с ID %s не найдена", id)
	}

	return nil
}

func (s *newsService) DeleteNews(ctx context.Context, id string) error {
	item, ok := s.news.GetByID(id)
	if !ok {
		return fmt.Errorf("новость с ID %s не найдена", id)
	}

	if item.Image != "" {
		if err := s.storage.DeleteImage(ctx, item.Image); err != nil {
			log.Printf("Предупреждение: не удалось удалить изображение из MinIO: %v", err)
		}
	}

	s.news.Delete(ctx, id)
	return nil
}

// AttachImage загружает изображение в MinIO и привязывает его к новости.
// В записи сохраняется имя объекта, временная ссылка выводится реестром
func (s *newsService) AttachImage(ctx context.Context, newsID, fileName string, file io.Reader, size int64) (models.NewsItem, error) {
	item, ok := s.news.GetByID(newsID)
	if !ok {
		return models.NewsItem{}, fmt.Errorf("новость с ID %s не найдена", newsID)
	}

	objectName, err := s.storage.UploadImage(ctx, newsID, fileName, file, size)
	if err != nil {
		return models.NewsItem{}, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	// старое изображение принадлежит только этой записи, чистим его
	if item.Image != "" {
		if err := s.storage.DeleteImage(ctx, item.Image); err != nil {
			log.Printf("Предупреждение: не удалось удалить старое изображение: %v", err)
		}
	}

	s.news.Update(ctx, newsID, repository.NewsItemPatch{Image: repository.StrPtr(objectName)})

	updated, _ := s.news.GetByID(newsID)
	return updated, nil
}

func (s *newsService) RemoveImage(ctx context.Context, newsID string) error {
	item, ok := s.news.GetByID(newsID)
	if !ok {
		return fmt.Errorf("новость с ID %s не найдена", newsID)
	}

	if item.Image == "" {
		return fmt.Errorf("у новости нет изображения")
	}

	if err := s.storage.DeleteImage(ctx, item.Image); err != nil {
		log.Printf("Предупреждение: не удалось удалить изображение из MinIO: %v", err)
	}

	s.news.Update(ctx, newsID, repository.NewsItemPatch{Image: repository.StrPtr("")})
	return nil
}
