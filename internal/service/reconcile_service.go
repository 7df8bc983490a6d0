package service

import (
	"context"
	"log"
	"strings"
	"time"

	"ecotourism/internal/models"
	"ecotourism/internal/repository"
)

// Значения по умолчанию для проекции акций (как в исходных данных платформы)
const (
	promoDiscount   = "20%"
	promoValidUntil = "2024-12-31"
)

const (
	dateLayout     = "2006-01-02"
	rangeSeparator = " - "
)

// SyncReport - итог ручной массовой синхронизации
type SyncReport struct {
	EventDuplicatesRemoved int `json:"eventDuplicatesRemoved"`
	NewsDuplicatesRemoved  int `json:"newsDuplicatesRemoved"`
}

// Reconciler поддерживает согласованность реестра новостей с реестром
// событий: события типов news/promotion/eco-event проецируются в новости
// по точному совпадению названия. Вызывается синхронно в конце каждой
// мутации события
type Reconciler struct {
	news   repository.NewsRegistry
	events repository.EventRegistry
	dedupe *DedupeScheduler
}

func NewReconciler(news repository.NewsRegistry, events repository.EventRegistry, dedupeDelay time.Duration) *Reconciler {
	r := &Reconciler{
		news:   news,
		events: events,
	}
	r.dedupe = NewDedupeScheduler(dedupeDelay, func() {
		removed := news.ClearDuplicates(context.Background())
		if removed > 0 {
			log.Printf("Отложенная очистка: удалено %d дубликатов новостей", removed)
		}
	})
	return r
}

// resolveLinkedNews находит новость, связанную с событием.
// Связь по названию - единственный контракт совместимости с исходными
// данными; вся стратегия соединения изолирована здесь
func (r *Reconciler) resolveLinkedNews(event models.CalendarEvent) (models.NewsItem, bool) {
	matches := r.news.FindByTitle(event.Title)
	if len(matches) == 0 {
		return models.NewsItem{}, false
	}
	return matches[0], true
}

// newsDate выводит дату проекции из формы события:
// для eco-event - начало диапазона, для news - текущая дата,
// иначе дата из формы
func newsDate(in EventInput) string {
	switch in.Type {
	case models.TypeEcoEvent:
		if in.DateFrom != "" {
			return in.DateFrom
		}
		if strings.Contains(in.Date, rangeSeparator) {
			return strings.SplitN(in.Date, rangeSeparator, 2)[0]
		}
		return in.Date
	case models.TypeNews:
		return time.Now().Format(dateLayout)
	default:
		return in.Date
	}
}

// storedNewsDate выводит дату проекции из уже сохранённого события:
// у eco-event дата хранится диапазоном и режется до начала
func storedNewsDate(event models.CalendarEvent) string {
	if event.Type == models.TypeEcoEvent && strings.Contains(event.Date, rangeSeparator) {
		return strings.SplitN(event.Date, rangeSeparator, 2)[0]
	}
	return event.Date
}

func projectionFields(in EventInput, date string) models.NewsItem {
	item := models.NewsItem{
		Type:        in.Type,
		Title:       in.Title,
		Description: in.Description,
		Date:        date,
		Region:      in.Region,
		Status:      in.Status,
	}
	if in.Type == models.TypePromotion {
		item.Discount = promoDiscount
		item.ValidUntil = promoValidUntil
	}
	return item
}

// OnEventCreated проецирует новое событие в реестр новостей.
// Если новость с таким названием уже есть, ничего не делаем
func (r *Reconciler) OnEventCreated(ctx context.Context, event models.CalendarEvent, in EventInput) {
	if !models.IsNewsworthy(event.Type) {
		return
	}

	if _, exists := r.resolveLinkedNews(event); exists {
		return
	}

	item := r.news.Add(ctx, projectionFields(in, newsDate(in)))
	log.Printf("Событие спроецировано в новости: id=%s, title=%s, type=%s", item.ID, item.Title, item.Type)
}

// OnEventUpdated переносит правку события в связанную новость.
// Поиск идёт по СТАРОМУ названию (до правки), а поля берутся новые -
// асимметрия исходного поведения сохранена намеренно. Найденная новость
// обновляется на месте, сохраняя id и прикреплённое изображение;
// при промахе создаётся новая. В конце планируется отложенная очистка
// дубликатов
func (r *Reconciler) OnEventUpdated(ctx context.Context, oldEvent, event models.CalendarEvent, in EventInput) {
	if models.IsNewsworthy(in.Type) && models.IsNewsworthy(oldEvent.Type) {
		date := newsDate(in)

		if linked, ok := r.resolveLinkedNews(oldEvent); ok {
			patch := repository.NewsItemPatch{
				Type:        repository.StrPtr(in.Type),
				Title:       repository.StrPtr(in.Title),
				Description: repository.StrPtr(in.Description),
				Date:        repository.StrPtr(date),
				Region:      repository.StrPtr(in.Region),
				Status:      repository.StrPtr(in.Status),
			}
			if in.Type == models.TypePromotion {
				patch.Discount = repository.StrPtr(promoDiscount)
				patch.ValidUntil = repository.StrPtr(promoValidUntil)
			} else {
				patch.Discount = repository.StrPtr("")
				patch.ValidUntil = repository.StrPtr("")
			}
			r.news.Update(ctx, linked.ID, patch)
			log.Printf("Обновлена связанная новость: id=%s, title=%s", linked.ID, in.Title)
		} else {
			item := r.news.Add(ctx, projectionFields(in, date))
			log.Printf("Связанная новость не найдена, создана новая: id=%s, title=%s", item.ID, item.Title)
		}
	}

	r.dedupe.Schedule()
}

// OnEventDeleted удаляет проекцию удалённого события: сначала по id
// каждого совпадения по названию, затем ещё раз по названию.
// Двойное удаление идемпотентно и оставлено для надёжности
func (r *Reconciler) OnEventDeleted(ctx context.Context, event models.CalendarEvent) {
	if !models.IsNewsworthy(event.Type) {
		return
	}

	matches := r.news.FindByTitle(event.Title)
	for _, item := range matches {
		r.news.Delete(ctx, item.ID)
	}
	r.news.DeleteByTitle(ctx, event.Title)

	log.Printf("Удалены новости события %q: %d", event.Title, len(matches))
}

// SyncAll - ручная массовая синхронизация:
// дедупликация событий по названию (остаётся первое), проекция
// недостающих событий в новости, очистка дубликатов новостей.
// Возвращает отчёт для показа пользователю
func (r *Reconciler) SyncAll(ctx context.Context) SyncReport {
	events := r.events.List()

	seen := make(map[string]bool)
	unique := make([]models.CalendarEvent, 0, len(events))
	for _, event := range events {
		if seen[event.Title] {
			log.Printf("Удаляем дубликат события: id=%s, title=%s", event.ID, event.Title)
			continue
		}
		seen[event.Title] = true
		unique = append(unique, event)
	}

	eventsRemoved := len(events) - len(unique)
	if eventsRemoved > 0 {
		r.events.ReplaceAll(ctx, unique)
	}

	newsTitles := make(map[string]bool)
	for _, item := range r.news.List() {
		newsTitles[item.Title] = true
	}

	for _, event := range unique {
		if !models.IsNewsworthy(event.Type) || newsTitles[event.Title] {
			continue
		}
		in := EventInput{
			Title:       event.Title,
			Description: event.Description,
			Date:        storedNewsDate(event),
			Type:        event.Type,
			Region:      event.Region,
			Status:      event.Status,
		}
		item := r.news.Add(ctx, projectionFields(in, in.Date))
		log.Printf("Синхронизация: событие добавлено в новости: id=%s, title=%s", item.ID, item.Title)
	}

	newsRemoved := r.news.ClearDuplicates(ctx)

	log.Printf("Синхронизация завершена: событий %d, удалено дубликатов событий %d, новостей %d",
		len(unique), eventsRemoved, newsRemoved)

	return SyncReport{
		EventDuplicatesRemoved: eventsRemoved,
		NewsDuplicatesRemoved:  newsRemoved,
	}
}

// ClearAll безвозвратно очищает оба реестра и их ключи в хранилище.
// Подтверждение действия - забота вызывающего
func (r *Reconciler) ClearAll(ctx context.Context) {
	r.dedupe.Stop()
	r.events.Reset(ctx)
	r.news.Reset(ctx)
	log.Println("Все события и новости удалены, хранилище очищено")
}
