package repository

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"ecotourism/internal/models"
)

type courseRegistry struct {
	mu      sync.Mutex
	courses []models.Course
	kv      KVStore
}

// NewCourseRegistry загружает курсы для гидов из хранилища,
// при отсутствии данных подставляет начальный набор курсов
func NewCourseRegistry(ctx context.Context, kv KVStore) CourseRegistry {
	r := &courseRegistry{kv: kv}
	r.load(ctx)
	return r
}

func (r *courseRegistry) load(ctx context.Context) {
	raw, err := r.kv.Get(ctx, KeyCourses)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) {
			log.Printf("Ошибка при загрузке курсов из хранилища: %v", err)
		}
		r.courses = SeedCourses()
		r.persist(ctx)
		return
	}

	var courses []models.Course
	if err := json.Unmarshal([]byte(raw), &courses); err != nil {
		log.Printf("Ошибка при разборе сохранённых курсов: %v", err)
		r.courses = SeedCourses()
		r.persist(ctx)
		return
	}

	r.courses = courses
}

func (r *courseRegistry) persist(ctx context.Context) {
	data, err := json.Marshal(r.courses)
	if err != nil {
		log.Printf("Ошибка при сериализации курсов: %v", err)
		return
	}

	if err := r.kv.Set(ctx, KeyCourses, string(data)); err != nil {
		log.Printf("Ошибка при сохранении курсов: %v", err)
	}
}

func (r *courseRegistry) Add(ctx context.Context, course models.Course) models.Course {
	r.mu.Lock()
	defer r.mu.Unlock()

	course.ID = newID("course")
	r.courses = append(r.courses, course)
	r.persist(ctx)

	return course
}

func (r *courseRegistry) Update(ctx context.Context, id string, course models.Course) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].ID != id {
			continue
		}
		course.ID = id
		r.courses[i] = course
		r.persist(ctx)
		return true
	}

	return false
}

func (r *courseRegistry) Delete(ctx context.Context, id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.courses {
		if r.courses[i].ID == id {
			r.courses = append(r.courses[:i], r.courses[i+1:]...)
			r.persist(ctx)
			return true
		}
	}

	return false
}

func (r *courseRegistry) List() []models.Course {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]models.Course, len(r.courses))
	copy(out, r.courses)
	return out
}
