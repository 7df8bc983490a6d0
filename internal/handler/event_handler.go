package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"ecotourism/internal/service"
)

func (h *Handlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	events := h.Events.List()

	WriteSuccess(w, map[string]interface{}{"events": events}, http.StatusOK)
}

// CreateEvent создаёт событие календаря. Если тип события новостной
// (news, promotion, eco-event), событие сразу проецируется в реестр
// новостей
func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req service.EventInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// для эко-события обязателен диапазон дат
	if req.Type == "eco-event" && (req.DateFrom == "" || req.DateTo == "") {
		WriteError(w, "Для эко-события укажите даты начала и окончания", http.StatusBadRequest)
		return
	}

	event, err := h.EventService.CreateEvent(r.Context(), req)
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, event, http.StatusCreated)
}

func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req service.EventInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	event, err := h.EventService.UpdateEvent(r.Context(), id, req)
	if err != nil {
		if strings.Contains(err.Error(), "не найдено") {
			WriteError(w, "Событие не найдено", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, event, http.StatusOK)
}

// DeleteEvent удаляет событие вместе с его проекцией в новостях.
// Подтверждение удаления - на стороне клиента
func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.EventService.DeleteEvent(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "не найдено") {
			WriteError(w, "Событие не найдено", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Событие успешно удалено"}, http.StatusOK)
}
