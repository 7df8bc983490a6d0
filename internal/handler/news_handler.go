package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"ecotourism/internal/service"
)

// GetNews возвращает активные новости - то, что видит турист
func (h *Handlers) GetNews(w http.ResponseWriter, r *http.Request) {
	items := h.News.ListActive()

	WriteSuccess(w, map[string]interface{}{"news": items}, http.StatusOK)
}

// GetAllNews возвращает весь реестр, включая неактивные записи (админ-панель)
func (h *Handlers) GetAllNews(w http.ResponseWriter, r *http.Request) {
	items := h.News.List()

	WriteSuccess(w, map[string]interface{}{"news": items}, http.StatusOK)
}

func (h *Handlers) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req service.NewsInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	item := h.NewsService.CreateNews(r.Context(), req)

	WriteSuccess(w, item, http.StatusCreated)
}

func (h *Handlers) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req service.NewsInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.NewsService.UpdateNews(r.Context(), id, req); err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Новость не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Новость успешно обновлена"}, http.StatusOK)
}

func (h *Handlers) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.NewsService.DeleteNews(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Новость не найдена", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Новость успешно удалена"}, http.StatusOK)
}

// UploadNewsImage принимает multipart-форму с полем image и привязывает
// изображение к новости
func (h *Handlers) UploadNewsImage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		if err.Error() == "http: request body too large" {
			WriteError(w, "Файл слишком большой", http.StatusBadRequest)
		} else {
			WriteError(w, "Ошибка при обработке файла", http.StatusBadRequest)
		}
		return
	}

	file, handler, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	contentType := handler.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	item, err := h.NewsService.AttachImage(r.Context(), id, handler.Filename, file, handler.Size)
	if err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Новость не найдена", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка загрузки изображения", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, item, http.StatusCreated)
}

func (h *Handlers) DeleteNewsImage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.NewsService.RemoveImage(r.Context(), id); err != nil {
		if strings.Contains(err.Error(), "не найдена") {
			WriteError(w, "Новость не найдена", http.StatusNotFound)
		} else if strings.Contains(err.Error(), "нет изображения") {
			WriteError(w, "У новости нет изображения", http.StatusNotFound)
		} else {
			WriteError(w, "Ошибка удаления изображения", http.StatusInternalServerError)
		}
		return
	}

	WriteSuccess(w, MessageResponse{Message: "Изображение успешно удалено"}, http.StatusOK)
}
