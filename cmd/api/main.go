package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"ecotourism/cmd/app"
	"ecotourism/internal/config"
	handlers "ecotourism/internal/handler"
	"ecotourism/internal/middleware"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, repo, registries, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, registries.News, registries.Events, cfg)

	router := mux.NewRouter()

	// setting up routes
	router.HandleFunc("/", handlers.HomeHandler).Methods(http.MethodGet)
	router.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)

	router.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	// новости: чтение открыто, мутации только для админа
	router.HandleFunc("/api/news", handler.GetNews).Methods(http.MethodGet)
	adminOnly := middleware.RoleMiddleware("Admin")
	router.Handle("/api/news/all", adminOnly(http.HandlerFunc(handler.GetAllNews))).Methods(http.MethodGet)
	router.Handle("/api/news", adminOnly(http.HandlerFunc(handler.CreateNews))).Methods(http.MethodPost)
	router.Handle("/api/news/{id}", adminOnly(http.HandlerFunc(handler.UpdateNews))).Methods(http.MethodPut)
	router.Handle("/api/news/{id}", adminOnly(http.HandlerFunc(handler.DeleteNews))).Methods(http.MethodDelete)
	router.Handle("/api/news/{id}/image", adminOnly(http.HandlerFunc(handler.UploadNewsImage))).Methods(http.MethodPost)
	router.Handle("/api/news/{id}/image", adminOnly(http.HandlerFunc(handler.DeleteNewsImage))).Methods(http.MethodDelete)

	// события календаря: каждая мутация синхронно проецируется в новости
	router.HandleFunc("/api/events", handler.GetEvents).Methods(http.MethodGet)
	router.Handle("/api/events", adminOnly(http.HandlerFunc(handler.CreateEvent))).Methods(http.MethodPost)
	router.Handle("/api/events/{id}", adminOnly(http.HandlerFunc(handler.UpdateEvent))).Methods(http.MethodPut)
	router.Handle("/api/events/{id}", adminOnly(http.HandlerFunc(handler.DeleteEvent))).Methods(http.MethodDelete)

	router.HandleFunc("/api/courses", handler.GetCourses).Methods(http.MethodGet)
	router.Handle("/api/courses", adminOnly(http.HandlerFunc(handler.CreateCourse))).Methods(http.MethodPost)
	router.Handle("/api/courses/{id}", adminOnly(http.HandlerFunc(handler.UpdateCourse))).Methods(http.MethodPut)
	router.Handle("/api/courses/{id}", adminOnly(http.HandlerFunc(handler.DeleteCourse))).Methods(http.MethodDelete)

	router.Handle("/api/admin/sync", adminOnly(http.HandlerFunc(handler.SyncAll))).Methods(http.MethodPost)
	router.Handle("/api/admin/reset", adminOnly(http.HandlerFunc(handler.ResetAll))).Methods(http.MethodPost)
	router.Handle("/api/admin/dashboard",
		middleware.RoleMiddleware("Admin", "Analyst")(http.HandlerFunc(handler.GetDashboard))).Methods(http.MethodGet)

	handlerChain := middleware.Chain(
		router,
		middleware.AuthMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	// Starting the server
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	fmt.Printf("Сервер запущен на %s\n", addr)
	fmt.Printf("База данных: %s\n", cfg.DB.DbNAME)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("Ошибка запуска сервера: %v", err)
	}
}
