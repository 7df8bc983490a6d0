package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"ecotourism/internal/models"
)

// Repository объединяет хранилища, работающие напрямую с БД.
// Реестры новостей/событий/курсов создаются отдельно: им нужны
// KV-хранилище и клиент MinIO
type Repository struct {
	User UserRepository
	KV   KVStore
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User: NewUserRepository(db),
		KV:   NewKVRepository(db),
	}
}

// Ключи персистентного хранилища. Каждый реестр целиком
// сериализуется в JSON-массив под своим ключом.
const (
	KeyEvents  = "events"
	KeyNews    = "news"
	KeyCourses = "courses"
)

// KVStore - строковое key-value хранилище для JSON-блобов реестров
type KVStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type NewsRegistry interface {
	Add(ctx context.Context, item models.NewsItem) models.NewsItem
	Update(ctx context.Context, id string, patch NewsItemPatch) bool
	Delete(ctx context.Context, id string) bool
	DeleteByTitle(ctx context.Context, title string) int
	GetByID(id string) (models.NewsItem, bool)
	FindByTitle(title string) []models.NewsItem
	List() []models.NewsItem
	ListActive() []models.NewsItem
	ReplaceAll(ctx context.Context, items []models.NewsItem)
	ClearDuplicates(ctx context.Context) int
	Reset(ctx context.Context)
}

type EventRegistry interface {
	Add(ctx context.Context, event models.CalendarEvent) models.CalendarEvent
	Update(ctx context.Context, id string, event models.CalendarEvent) bool
	Delete(ctx context.Context, id string) bool
	GetByID(id string) (models.CalendarEvent, bool)
	List() []models.CalendarEvent
	ReplaceAll(ctx context.Context, events []models.CalendarEvent)
	Reset(ctx context.Context)
}

type CourseRegistry interface {
	Add(ctx context.Context, course models.Course) models.Course
	Update(ctx context.Context, id string, course models.Course) bool
	Delete(ctx context.Context, id string) bool
	List() []models.Course
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error
	GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error)
}

// NewsItemPatch - частичное обновление записи новости.
// nil-поле остаётся нетронутым, указатель на пустую строку очищает поле.
type NewsItemPatch struct {
	Type        *string `json:"type,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty"`
	Region      *string `json:"region,omitempty"`
	Status      *string `json:"status,omitempty"`
	Image       *string `json:"image,omitempty"`
	Discount    *string `json:"discount,omitempty"`
	ValidUntil  *string `json:"validUntil,omitempty"`
}

func StrPtr(s string) *string {
	return &s
}
