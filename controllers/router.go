package controllers

import (
	"net/http"

	"note_map_go/data"
	"note_map_go/middleware"

	"github.com/gorilla/mux"
)

// NewRouter собирает маршрутизатор gorilla/mux поверх репозитория.
func NewRouter(repo data.Repository) *mux.Router {
	router := mux.NewRouter()

	// Маршруты аутентификации (открытые)
	authController := &AuthController{Repo: repo}
	authRouter := router.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/register", authController.RegisterHandler).Methods(http.MethodPost)
	authRouter.HandleFunc("/login", authController.LoginHandler).Methods(http.MethodPost)

	// Маршруты API. Аутентификация не обязательна: без токена подставляется
	// пользователь по умолчанию, предъявленный токен проверяется.
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(middleware.OptionalJWTMiddleware)

	noteController := &NoteController{Repo: repo}
	apiRouter.HandleFunc("/notes", noteController.GetNotesHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/notes", noteController.CreateNoteHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/notes/{id:[0-9]+}", noteController.GetNoteHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/notes/{id:[0-9]+}", noteController.UpdateNoteHandler).Methods(http.MethodPut)
	apiRouter.HandleFunc("/notes/{id:[0-9]+}", noteController.DeleteNoteHandler).Methods(http.MethodDelete)

	tagController := &TagController{Repo: repo}
	apiRouter.HandleFunc("/tags", tagController.GetTagsHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/tags", tagController.CreateTagHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/tags/{id:[0-9]+}", tagController.GetTagHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/tags/{id:[0-9]+}", tagController.UpdateTagHandler).Methods(http.MethodPut)
	apiRouter.HandleFunc("/tags/{id:[0-9]+}", tagController.DeleteTagHandler).Methods(http.MethodDelete)

	connectionController := &ConnectionController{Repo: repo}
	apiRouter.HandleFunc("/connections", connectionController.GetConnectionsHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/connections", connectionController.CreateConnectionHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/connections/{id:[0-9]+}", connectionController.GetConnectionHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/connections/{id:[0-9]+}", connectionController.DeleteConnectionHandler).Methods(http.MethodDelete)

	// Вложенные маршруты привязок меток заметки
	noteTagController := &NoteTagController{Repo: repo}
	apiRouter.HandleFunc("/notes/{noteId:[0-9]+}/tags", noteTagController.GetNoteTagsHandler).Methods(http.MethodGet)
	apiRouter.HandleFunc("/notes/{noteId:[0-9]+}/tags", noteTagController.AddNoteTagHandler).Methods(http.MethodPost)
	apiRouter.HandleFunc("/notes/{noteId:[0-9]+}/tags/{tagId:[0-9]+}", noteTagController.RemoveNoteTagHandler).Methods(http.MethodDelete)

	// Маршрут для проверки состояния сервера (открытый)
	router.HandleFunc("/api/health", HealthCheck).Methods(http.MethodGet)

	return router
}
