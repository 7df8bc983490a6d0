package test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"ecotourism/internal/models"
	"ecotourism/internal/service"
)

func TestGetCoursesHandler(t *testing.T) {
	th := newTestHandlers()

	th.CourseService.On("ListCourses").Return([]models.Course{
		{ID: "course_1", Title: "Основы экотуризма", Status: models.StatusActive},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	rr := httptest.NewRecorder()

	th.Handler.GetCourses(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var response map[string][]models.Course
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Len(t, response["courses"], 1)

	th.CourseService.AssertExpectations(t)
}

func TestCreateCourseHandler(t *testing.T) {
	th := newTestHandlers()

	th.CourseService.On("CreateCourse", mock.Anything, service.CourseInput{
		Title:  "Гид по Алтаю",
		Status: "active",
	}).Return(models.Course{
		ID:     "course_123",
		Title:  "Гид по Алтаю",
		Status: "active",
	})

	body := `{"title":"Гид по Алтаю","status":"active"}`
	req := httptest.NewRequest(http.MethodPost, "/api/courses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()

	th.Handler.CreateCourse(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	th.CourseService.AssertExpectations(t)
}

func TestUpdateCourseHandler_NotFound(t *testing.T) {
	th := newTestHandlers()

	th.CourseService.On("UpdateCourse", mock.Anything, "course_missing", mock.Anything).
		Return(errors.New("курс с ID course_missing не найден"))

	body := `{"title":"X","status":"active"}`
	req := httptest.NewRequest(http.MethodPut, "/api/courses/course_missing", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req = mux.SetURLVars(req, map[string]string{"id": "course_missing"})
	rr := httptest.NewRecorder()

	th.Handler.UpdateCourse(rr, req)

	assertJSONError(t, rr, http.StatusNotFound, "Курс не найден")
}

func TestDeleteCourseHandler_Success(t *testing.T) {
	th := newTestHandlers()

	th.CourseService.On("DeleteCourse", mock.Anything, "course_1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/courses/course_1", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "course_1"})
	rr := httptest.NewRecorder()

	th.Handler.DeleteCourse(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	th.CourseService.AssertExpectations(t)
}
