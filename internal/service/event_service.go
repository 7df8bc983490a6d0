package service

import (
	"context"
	"fmt"
	"time"

	"ecotourism/internal/models"
	"ecotourism/internal/repository"
)

// EventInput - форма создания/редактирования события календаря.
// Для eco-event заполняются DateFrom/DateTo, для остальных типов - Date
type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date"`
	DateFrom    string `json:"dateFrom"`
	DateTo      string `json:"dateTo"`
	Type        string `json:"type" validate:"required,oneof=holiday eco-event promotion news"`
	Region      string `json:"region"`
	Status      string `json:"status" validate:"required,oneof=active inactive"`
}

type EventService interface {
	CreateEvent(ctx context.Context, in EventInput) (models.CalendarEvent, error)
	UpdateEvent(ctx context.Context, id string, in EventInput) (models.CalendarEvent, error)
	DeleteEvent(ctx context.Context, id string) error
	SyncAll(ctx context.Context) SyncReport
	ClearAll(ctx context.Context)
}

type eventService struct {
	events     repository.EventRegistry
	reconciler *Reconciler
}

func NewEventService(events repository.EventRegistry, reconciler *Reconciler) EventService {
	return &eventService{
		events:     events,
		reconciler: reconciler,
	}
}

// eventDate вычисляет сохраняемую дату события:
// eco-event хранит диапазон "<начало> - <конец>", news получает текущую
// дату независимо от введённой, остальные типы - дату из формы
func eventDate(in EventInput) string {
	switch in.Type {
	case models.TypeEcoEvent:
		return fmt.Sprintf("%s%s%s", in.DateFrom, rangeSeparator, in.DateTo)
	case models.TypeNews:
		return time.Now().Format(dateLayout)
	default:
		return in.Date
	}
}

func (s *eventService) CreateEvent(ctx context.Context, in EventInput) (models.CalendarEvent, error) {
	event := models.CalendarEvent{
		Title:       in.Title,
		Description: in.Description,
		Date:        eventDate(in),
		Type:        in.Type,
		Region:      in.Region,
		Status:      in.Status,
	}

	event = s.events.Add(ctx, event)
	s.reconciler.OnEventCreated(ctx, event, in)

	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, in EventInput) (models.CalendarEvent, error) {
	oldEvent, ok := s.events.GetByID(id)
	if !ok {
		return models.CalendarEvent{}, fmt.Errorf("событие с ID %s не найдено", id)
	}

	event := models.CalendarEvent{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Date:        eventDate(in),
		Type:        in.Type,
		Region:      in.Region,
		Status:      in.Status,
	}

	s.events.Update(ctx, id, event)
	s.reconciler.OnEventUpdated(ctx, oldEvent, event, in)

	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	event, ok := s.events.GetByID(id)
	if !ok {
		return fmt.Errorf("событие с ID %s не найдено", id)
	}

	s.events.Delete(ctx, id)
	s.reconciler.OnEventDeleted(ctx, event)

	return nil
}

func (s *eventService) SyncAll(ctx context.Context) SyncReport {
	return s.reconciler.SyncAll(ctx)
}

func (s *eventService) ClearAll(ctx context.Context) {
	s.reconciler.ClearAll(ctx)
}
