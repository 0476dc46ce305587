package controllers

import (
	"net/http"
)

// HealthCheck возвращает статус "OK", если сервер работает.
// GET /api/health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
