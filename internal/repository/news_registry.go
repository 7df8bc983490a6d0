package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"ecotourism/internal/models"
	"ecotourism/internal/storage"

	"github.com/google/uuid"
)

// newID генерирует непрозрачный идентификатор записи:
// префикс, отметка времени и случайный суффикс
func newID(prefix string) string {
	return fmt.Sprintf("%s_%d_%s", prefix, time.Now().UnixMilli(), uuid.New().String()[:8])
}

type newsRegistry struct {
	mu    sync.Mutex
	items []models.NewsItem
	kv    KVStore
	store storage.Storage
}

// NewNewsRegistry загружает список новостей из хранилища.
// Отсутствующий ключ или битый JSON не являются ошибкой: реестр
// откатывается на начальный набор данных и сразу сохраняет его.
func NewNewsRegistry(ctx context.Context, kv KVStore, store storage.Storage) NewsRegistry {
	r := &newsRegistry{kv: kv, store: store}
	r.load(ctx)
	return r
}

func (r *newsRegistry) load(ctx context.Context) {
	raw, err := r.kv.Get(ctx, KeyNews)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("Ошибка при загрузке новостей из хранилища: %v", err)
		}
		r.items = SeedNews()
		r.persist(ctx)
		return
	}

	var items []models.NewsItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("Ошибка при разборе сохранённых новостей: %v", err)
		r.items = SeedNews()
		r.persist(ctx)
		return
	}

	r.items = r.restoreImageURLs(ctx, items)
}

// restoreImageURLs восстанавливает временные ссылки на изображения.
// Сохранённая ImageURL не считается источником истины: если у записи
// есть объект изображения, ссылка выводится из него заново.
func (r *newsRegistry) restoreImageURLs(ctx context.Context, items []models.NewsItem) []models.NewsItem {
	for i := range items {
		if items[i].Image == "" {
			continue
		}
		url, err := r.store.GetImageURL(ctx, items[i].Image)
		if err != nil {
			log.Printf("Не удалось восстановить ссылку на изображение %s: %v", items[i].Image, err)
			continue
		}
		items[i].ImageURL = url
	}
	return items
}

// persist сохраняет весь список под ключом news. Сохранение best-effort:
// ошибка хранилища логируется и не передаётся вызывающему
func (r *newsRegistry) persist(ctx context.Context) {
	data, err := json.Marshal(r.items)
	if err != nil {
		log.Printf("Ошибка при сериализации новостей: %v", err)
		return
	}

	if err := r.kv.Set(ctx, KeyNews, string(data)); err != nil {
		log.Printf("Ошибка при сохранении новостей: %v", err)
	}
}

func (r *newsRegistry) Add(ctx context.Context, item models.NewsItem) models.NewsItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	item.ID = newID("news")

	if item.Image != "" && item.ImageURL == "" {
		url, err := r.store.GetImageURL(ctx, item.Image)
		if err != nil {
			log.Printf("Не удалось получить ссылку на изображение %s: %v", item.Image, err)
		} else {
			item.ImageURL = url
		}
	}

	r.items = append(r.items, item)
	r.persist(ctx)

	return item
}

func (r *newsRegistry) Update(ctx context.Context, id string, patch NewsItemPatch) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID != id {
			continue
		}
		applyPatch(&r.items[i], patch)
		// смена изображения делает старую ссылку недействительной
		if patch.Image != nil && *patch.Image != "" {
			url, err := r.store.GetImageURL(ctx, *patch.Image)
			if err != nil {
				log.Printf("Не удалось получить ссылку на изображение %s: %v", *patch.Image, err)
				r.items[i].ImageURL = ""
			} else {
				r.items[i].ImageURL = url
			}
		}
		r.persist(ctx)
		return true
	}

	// запись не найдена - не ошибка, просто ничего не меняем
	return false
}

func applyPatch(item *models.NewsItem, patch NewsItemPatch) {
	if patch.Type != nil {
		item.Type = *patch.Type
	}
	if patch.Title != nil {
		item.Title = *patch.Title
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Date != nil {
		item.Date = *patch.Date
	}
	if patch.Region != nil {
		item.Region = *patch.Region
	}
	if patch.Status != nil {
		item.Status = *patch.Status
	}
	if patch.Image != nil {
		item.Image = *patch.Image
		if *patch.Image == "" {
			item.ImageURL = ""
		}
	}
	if patch.Discount != nil {
		item.Discount = *patch.Discount
	}
	if patch.ValidUntil != nil {
		item.ValidUntil = *patch.ValidUntil
	}
}

func (r *newsRegistry) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			r.persist(ctx)
			return true
		}
	}

	return false
}

// DeleteByTitle удаляет ВСЕ записи с точно совпадающим названием,
// включая уже существующие дубликаты. Возвращает количество удалённых
func (r *newsRegistry) DeleteByTitle(ctx context.Context, title string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	removed := 0
	for _, item := range r.items {
		if item.Title == title {
			removed++
			continue
		}
		kept = append(kept, item)
	}

	if removed > 0 {
		r.items = kept
		r.persist(ctx)
	}

	return removed
}

func (r *newsRegistry) GetByID(id string) (models.NewsItem, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, item := range r.items {
		if item.ID == id {
			return item, true
		}
	}

	return models.NewsItem{}, false
}

func (r *newsRegistry) FindByTitle(title string) []models.NewsItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	var found []models.NewsItem
	for _, item := range r.items {
		if item.Title == title {
			found = append(found, item)
		}
	}

	return found
}

func (r *newsRegistry) List() []models.NewsItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.NewsItem, len(r.items))
	copy(out, r.items)
	return out
}

func (r *newsRegistry) ListActive() []models.NewsItem {
	r.mu.Lock()
	defer r.mu.Unlock()

	var active []models.NewsItem
	for _, item := range r.items {
		if item.Status == models.StatusActive {
			active = append(active, item)
		}
	}

	return active
}

func (r *newsRegistry) ReplaceAll(ctx context.Context, items []models.NewsItem) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = items
	r.persist(ctx)
}

// ClearDuplicates оставляет первую запись для каждого названия и удаляет
// все последующие с тем же названием. Если две разные по смыслу записи
// делят одно название, вторая будет потеряна - поведение сохранено
// намеренно. Возвращает количество удалённых дубликатов
func (r *newsRegistry) ClearDuplicates(ctx context.Context) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[string]bool)
	unique := r.items[:0]
	removed := 0

	for _, item := range r.items {
		if seen[item.Title] {
			log.Printf("Удаляем дубликат новости: id=%s, title=%s", item.ID, item.Title)
			removed++
			continue
		}
		seen[item.Title] = true
		unique = append(unique, item)
	}

	if removed > 0 {
		r.items = unique
		r.persist(ctx)
	}

	return removed
}

// Reset безвозвратно очищает реестр и удаляет сохранённый ключ
func (r *newsRegistry) Reset(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = nil
	if err := r.kv.Delete(ctx, KeyNews); err != nil {
		log.Printf("Ошибка при удалении ключа новостей: %v", err)
	}
}
