package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"note_map_go/auth"
	"note_map_go/data"
	"note_map_go/models"
)

// AuthController обрабатывает регистрацию и вход пользователей.
type AuthController struct {
	Repo data.Repository
}

// RegisterHandler обрабатывает запросы на регистрацию новых пользователей.
// Ожидает POST-запрос с JSON-телом, содержащим username и password.
// POST /api/auth/register
func (c *AuthController) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
		return
	}
	defer r.Body.Close()

	// Валидация входных данных
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		respondError(w, http.StatusBadRequest, "Имя пользователя и пароль не могут быть пустыми.")
		return
	}

	// Проверка, существует ли пользователь с таким именем
	existingUser, err := c.Repo.GetUserByUsername(req.Username)
	if err != nil {
		log.Printf("Ошибка при проверке имени %s: %v", req.Username, err)
		respondError(w, http.StatusInternalServerError, "Ошибка сервера при проверке имени пользователя.")
		return
	}
	if existingUser != nil {
		respondError(w, http.StatusConflict, "Пользователь с таким именем уже существует.")
		return
	}

	user, err := c.Repo.CreateUser(&models.InsertUser{Username: req.Username, Password: req.Password})
	if err != nil {
		log.Printf("Ошибка при создании пользователя %s: %v", req.Username, err)
		respondError(w, http.StatusInternalServerError, "Не удалось создать пользователя.")
		return
	}

	tokenString, _, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		log.Printf("Ошибка при генерации токена для пользователя %s: %v", user.Username, err)
		respondError(w, http.StatusInternalServerError, "Пользователь создан, но не удалось сгенерировать токен доступа.")
		return
	}

	respondJSON(w, http.StatusCreated, models.AuthResponse{
		Token: tokenString,
		User:  models.UserPublicInfo{ID: user.ID, Username: user.Username},
	})
}

// LoginHandler обрабатывает запросы на вход пользователей.
// POST /api/auth/login
func (c *AuthController) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Неверный формат запроса: "+err.Error())
		return
	}
	defer r.Body.Close()

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		respondError(w, http.StatusBadRequest, "Имя пользователя и пароль не могут быть пустыми.")
		return
	}

	user, err := c.Repo.GetUserByUsername(req.Username)
	if err != nil {
		log.Printf("Ошибка при поиске пользователя %s: %v", req.Username, err)
		respondError(w, http.StatusInternalServerError, "Ошибка сервера при поиске пользователя.")
		return
	}
	if user == nil {
		respondError(w, http.StatusUnauthorized, "Неверное имя пользователя или пароль.")
		return
	}

	if !data.CheckPasswordHash(req.Password, user.PasswordHash) {
		respondError(w, http.StatusUnauthorized, "Неверное имя пользователя или пароль.")
		return
	}

	tokenString, _, err := auth.GenerateToken(user.ID, user.Username)
	if err != nil {
		log.Printf("Ошибка при генерации токена для пользователя %s: %v", user.Username, err)
		respondError(w, http.StatusInternalServerError, "Не удалось сгенерировать токен доступа.")
		return
	}

	respondJSON(w, http.StatusOK, models.AuthResponse{
		Token: tokenString,
		User:  models.UserPublicInfo{ID: user.ID, Username: user.Username},
	})
}
