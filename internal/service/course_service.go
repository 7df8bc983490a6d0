package service

import (
	"context"
	"fmt"

	"ecotourism/internal/models"
	"ecotourism/internal/repository"
)

type CourseInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Level       string `json:"level"`
	Instructor  string `json:"instructor"`
	Status      string `json:"status" validate:"required,oneof=active inactive"`
}

type CourseService interface {
	CreateCourse(ctx context.Context, in CourseInput) models.Course
	UpdateCourse(ctx context.Context, id string, in CourseInput) error
	DeleteCourse(ctx context.Context, id string) error
	ListCourses() []models.Course
}

type courseService struct {
	courses repository.CourseRegistry
}

func NewCourseService(courses repository.CourseRegistry) CourseService {
	return &courseService{courses: courses}
}

func (s *courseService) CreateCourse(ctx context.Context, in CourseInput) models.Course {
	return s.courses.Add(ctx, models.Course{
		Title:       in.Title,
		Description: in.Description,
		Duration:    in.Duration,
		Level:       in.Level,
		Instructor:  in.Instructor,
		Status:      in.Status,
	})
}

func (s *courseService) UpdateCourse(ctx context.Context, id string, in CourseInput) error {
	course := models.Course{
		Title:       in.Title,
		Description: in.Description,
		Duration:    in.Duration,
		Level:       in.Level,
		Instructor:  in.Instructor,
		Status:      in.Status,
	}

	if !s.courses.Update(ctx, id, course) {
		return fmt.Errorf("курс с ID %s не найден", id)
	}

	return nil
}

func (s *courseService) DeleteCourse(ctx context.Context, id string) error {
	if !s.courses.Delete(ctx, id) {
		return fmt.Errorf("курс с ID %s не найден", id)
	}

	return nil
}

func (s *courseService) ListCourses() []models.Course {
	return s.courses.List()
}
