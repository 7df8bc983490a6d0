package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"ecotourism/internal/models"
)

type eventRegistry struct {
	mu     sync.Mutex
	events []models.CalendarEvent
	kv     KVStore
}

// NewEventRegistry загружает события календаря из хранилища.
// События заводятся вручную, поэтому начальный список пуст
func NewEventRegistry(ctx context.Context, kv KVStore) EventRegistry {
	r := &eventRegistry{kv: kv}
	r.load(ctx)
	return r
}

func (r *eventRegistry) load(ctx context.Context) {
	raw, err := r.kv.Get(ctx, KeyEvents)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("Ошибка при загрузке событий из хранилища: %v", err)
		}
		r.events = nil
		return
	}

	var events []models.CalendarEvent
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		log.Printf("Ошибка при разборе сохранённых событий: %v", err)
		r.events = nil
		r.persist(ctx)
		return
	}

	r.events = events
}

func (r *eventRegistry) persist(ctx context.Context) {
	data, err := json.Marshal(r.events)
	if err != nil {
		log.Printf("Ошибка при сериализации событий: %v", err)
		return
	}

	if err := r.kv.Set(ctx, KeyEvents, string(data)); err != nil {
		log.Printf("Ошибка при сохранении событий: %v", err)
	}
}

func (r *eventRegistry) Add(ctx context.Context, event models.CalendarEvent) models.CalendarEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	event.ID = newID("event")
	r.events = append(r.events, event)
	r.persist(ctx)

	return event
}

func (r *eventRegistry) Update(ctx context.Context, id string, event models.CalendarEvent) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID != id {
			continue
		}
		event.ID = id
		r.events[i] = event
		r.persist(ctx)
		return true
	}

	return false
}

func (r *eventRegistry) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.events {
		if r.events[i].ID == id {
			r.events = append(r.events[:i], r.events[i+1:]...)
			r.persist(ctx)
			return true
		}
	}

	return false
}

func (r *eventRegistry) GetByID(id string) (models.CalendarEvent, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, event := range r.events {
		if event.ID == id {
			return event, true
		}
	}

	return models.CalendarEvent{}, false
}

func (r *eventRegistry) List() []models.CalendarEvent {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.CalendarEvent, len(r.events))
	copy(out, r.events)
	return out
}

func (r *eventRegistry) ReplaceAll(ctx context.Context, events []models.CalendarEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = events
	r.persist(ctx)
}

// Reset безвозвратно очищает реестр и удаляет сохранённый ключ
func (r *eventRegistry) Reset(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = nil
	if err := r.kv.Delete(ctx, KeyEvents); err != nil {
		log.Printf("Ошибка при удалении ключа событий: %v", err)
	}
}
