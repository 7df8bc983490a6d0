package models

import (
	"time"
)

// Типы записей, участвующих в синхронизации новостей и событий
const (
	TypeNews      = "news"
	TypePromotion = "promotion"
	TypeHoliday   = "holiday"
	TypeEcoEvent  = "eco-event"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type User struct {
	UserID                 string    `json:"userId" db:"user_id"`
	Email                  string    `json:"email" db:"email"`
	PasswordHash           string    `json:"passwordHash" db:"password_hash"`
	Role                   string    `json:"role" db:"role"`
	RefreshToken           string    `json:"refreshToken" db:"refresh_token"`
	RefreshTokenExpiryTime time.Time `json:"refreshTokenExpiryTime" db:"refresh_token_expiry_time"`
}

type CreateUserRequest struct {
	Email    string `json:"email" db:"email"`
	Password string `json:"password" db:"password"`
	Role     string `json:"role" db:"role"`
}

// NewsItem - запись реестра новостей.
// Title служит ключом связи с CalendarEvent.Title (см. Reconciler).
// Image хранит имя объекта в MinIO, ImageURL - временная ссылка,
// которая не сохраняется как источник истины и восстанавливается
// из Image при каждой загрузке реестра.
type NewsItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Region      string `json:"region"`
	Status      string `json:"status"`
	Image       string `json:"image,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	Discount    string `json:"discount,omitempty"`
	ValidUntil  string `json:"validUntil,omitempty"`
}

// CalendarEvent - событие календаря админ-панели.
// Для типа eco-event поле Date хранит диапазон в виде "<начало> - <конец>",
// для остальных типов - одну дату.
type CalendarEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Type        string `json:"type"`
	Region      string `json:"region"`
	Status      string `json:"status"`
}

// Course - курс для гидов (раздел "Курсы" админ-панели)
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
	Instructor  string `json:"instructor"`
	Status      string `json:"status"`
}

// IsNewsworthy reports whether an event of this type is projected into the news registry
func IsNewsworthy(eventType string) bool {
	return eventType == TypeNews || eventType == TypePromotion || eventType == TypeEcoEvent
}
