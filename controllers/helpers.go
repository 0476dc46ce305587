package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"note_map_go/data"
	"note_map_go/middleware"
)

// respondJSON сериализует payload в JSON и пишет его с указанным статусом.
func respondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			// Не отправляем http.Error здесь, так как заголовки уже отправлены
			log.Printf("Error encoding JSON response: %v", err)
		}
	}
}

// respondError пишет JSON-тело вида {"message": ...} с указанным статусом.
// Сообщение общее, внутренности ошибок наружу не утекают.
func respondError(w http.ResponseWriter, statusCode int, message string) {
	log.Printf("HTTP Error %d: %s", statusCode, message)
	respondJSON(w, statusCode, map[string]string{"message": message})
}

// resolveUserID определяет пользователя запроса: сначала JWT (если предъявлен),
// затем query-параметр userId, иначе пользователь по умолчанию (ID 1).
// Нечисловое значение userId трактуется как отсутствующее и тоже подставляет
// пользователя по умолчанию. Аутентификация на маршрутах заметок не обязательна.
func resolveUserID(r *http.Request) int64 {
	if id, ok := middleware.UserIDFromContext(r.Context()); ok {
		return id
	}
	if raw := r.URL.Query().Get("userId"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return id
		}
	}
	return data.DefaultUserID
}

// parsePathID извлекает целочисленный ID из переменной пути.
func parsePathID(vars map[string]string, name string) (int64, bool) {
	raw, ok := vars[name]
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
