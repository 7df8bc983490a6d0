package test

import (
	"context"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"

	"ecotourism/internal/models"
	"ecotourism/internal/repository"
	"ecotourism/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req models.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) RefreshTokens(ctx context.Context, refreshToken string) (*models.User, string, string, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*jwt.Token, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwt.Token), args.Error(1)
}

type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) CreateNews(ctx context.Context, in service.NewsInput) models.NewsItem {
	args := m.Called(ctx, in)
	return args.Get(0).(models.NewsItem)
}

func (m *MockNewsService) UpdateNews(ctx context.Context, id string, in service.NewsInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockNewsService) DeleteNews(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockNewsService) AttachImage(ctx context.Context, newsID, fileName string, file io.Reader, size int64) (models.NewsItem, error) {
	args := m.Called(ctx, newsID, fileName, file, size)
	return args.Get(0).(models.NewsItem), args.Error(1)
}

func (m *MockNewsService) RemoveImage(ctx context.Context, newsID string) error {
	args := m.Called(ctx, newsID)
	return args.Error(0)
}

type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) CreateEvent(ctx context.Context, in service.EventInput) (models.CalendarEvent, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.CalendarEvent), args.Error(1)
}

func (m *MockEventService) UpdateEvent(ctx context.Context, id string, in service.EventInput) (models.CalendarEvent, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(models.CalendarEvent), args.Error(1)
}

func (m *MockEventService) DeleteEvent(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventService) SyncAll(ctx context.Context) service.SyncReport {
	args := m.Called(ctx)
	return args.Get(0).(service.SyncReport)
}

func (m *MockEventService) ClearAll(ctx context.Context) {
	m.Called(ctx)
}

type MockCourseService struct {
	mock.Mock
}

func (m *MockCourseService) CreateCourse(ctx context.Context, in service.CourseInput) models.Course {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Course)
}

func (m *MockCourseService) UpdateCourse(ctx context.Context, id string, in service.CourseInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockCourseService) DeleteCourse(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseService) ListCourses() []models.Course {
	args := m.Called()
	return args.Get(0).([]models.Course)
}

type MockNewsRegistry struct {
	mock.Mock
}

func (m *MockNewsRegistry) Add(ctx context.Context, item models.NewsItem) models.NewsItem {
	args := m.Called(ctx, item)
	return args.Get(0).(models.NewsItem)
}

func (m *MockNewsRegistry) Update(ctx context.Context, id string, patch repository.NewsItemPatch) bool {
	args := m.Called(ctx, id, patch)
	return args.Bool(0)
}

func (m *MockNewsRegistry) Delete(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockNewsRegistry) DeleteByTitle(ctx context.Context, title string) int {
	args := m.Called(ctx, title)
	return args.Int(0)
}

func (m *MockNewsRegistry) GetByID(id string) (models.NewsItem, bool) {
	args := m.Called(id)
	return args.Get(0).(models.NewsItem), args.Bool(1)
}

func (m *MockNewsRegistry) FindByTitle(title string) []models.NewsItem {
	args := m.Called(title)
	return args.Get(0).([]models.NewsItem)
}

func (m *MockNewsRegistry) List() []models.NewsItem {
	args := m.Called()
	return args.Get(0).([]models.NewsItem)
}

func (m *MockNewsRegistry) ListActive() []models.NewsItem {
	args := m.Called()
	return args.Get(0).([]models.NewsItem)
}

func (m *MockNewsRegistry) ReplaceAll(ctx context.Context, items []models.NewsItem) {
	m.Called(ctx, items)
}

func (m *MockNewsRegistry) ClearDuplicates(ctx context.Context) int {
	args := m.Called(ctx)
	return args.Int(0)
}

func (m *MockNewsRegistry) Reset(ctx context.Context) {
	m.Called(ctx)
}

type MockEventRegistry struct {
	mock.Mock
}

func (m *MockEventRegistry) Add(ctx context.Context, event models.CalendarEvent) models.CalendarEvent {
	args := m.Called(ctx, event)
	return args.Get(0).(models.CalendarEvent)
}

func (m *MockEventRegistry) Update(ctx context.Context, id string, event models.CalendarEvent) bool {
	args := m.Called(ctx, id, event)
	return args.Bool(0)
}

func (m *MockEventRegistry) Delete(ctx context.Context, id string) bool {
	args := m.Called(ctx, id)
	return args.Bool(0)
}

func (m *MockEventRegistry) GetByID(id string) (models.CalendarEvent, bool) {
	args := m.Called(id)
	return args.Get(0).(models.CalendarEvent), args.Bool(1)
}

func (m *MockEventRegistry) List() []models.CalendarEvent {
	args := m.Called()
	return args.Get(0).([]models.CalendarEvent)
}

func (m *MockEventRegistry) ReplaceAll(ctx context.Context, events []models.CalendarEvent) {
	m.Called(ctx, events)
}

func (m *MockEventRegistry) Reset(ctx context.Context) {
	m.Called(ctx)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, refreshToken string, expiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshToken, expiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByRefreshToken(ctx context.Context, refreshToken string) (*models.User, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
