package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"ecotourism/internal/service"
)

func (h *Handlers) GetCourses(w http.ResponseWriter, r *http.Request) {
	courses := h.CourseService.ListCourses()

	WriteSuccess(w, map[string]interface{}{"courses": courses}, http.StatusOK)
}

func (h *Handlers) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req service.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	course := h.CourseService.CreateCourse(r.Context(), req)

	WriteSuccess(w, course, http.StatusCreated)
}

func (h *Handlers) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req service.CourseInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.CourseService.UpdateCourse(r.Context(), id, req); err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Курс не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Курс успешно обновлен"}, http.StatusOK)
}

func (h *Handlers) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.CourseService.DeleteCourse(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "не найден") {
			WriteError(w, "Курс не найден", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Курс успешно удален"}, http.StatusOK)
}
