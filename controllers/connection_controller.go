package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"note_map_go/data"
	"note_map_go/models"

	"github.com/gorilla/mux"
)

// ConnectionController обрабатывает запросы к связям между заметками.
type ConnectionController struct {
	Repo data.Repository
}

// GetConnectionsHandler возвращает все связи пользователя.
// GET /api/connections?userId=X
func (c *ConnectionController) GetConnectionsHandler(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	conns, err := c.Repo.GetConnectionsByUserID(userID)
	if err != nil {
		log.Printf("Ошибка при получении связей пользователя %d: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch connections")
		return
	}
	respondJSON(w, http.StatusOK, conns)
}

// GetConnectionHandler возвращает связь по ID.
// GET /api/connections/{id}
func (c *ConnectionController) GetConnectionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(mux.Vars(r), "id")
	if !ok {
		respondError(w, http.StatusNotFound, "Connection not found")
		return
	}

	conn, err := c.Repo.GetConnectionByID(id)
	if err != nil {
		log.Printf("Ошибка при получении связи %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch connection")
		return
	}
	if conn == nil {
		respondError(w, http.StatusNotFound, "Connection not found")
		return
	}
	respondJSON(w, http.StatusOK, conn)
}

// CreateConnectionHandler создает связь между заметками.
// Петли и дубликаты упорядоченной пары репозиторий молча игнорирует;
// транспортный слой отображает такой no-op в 400, так как новая связь не создана.
// POST /api/connections
func (c *ConnectionController) CreateConnectionHandler(w http.ResponseWriter, r *http.Request) {
	var ins models.InsertConnection
	if err := json.NewDecoder(r.Body).Decode(&ins); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid connection data")
		return
	}
	defer r.Body.Close()

	if err := ins.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid connection data")
		return
	}

	if ins.UserID == nil {
		userID := resolveUserID(r)
		ins.UserID = &userID
	}

	conn, err := c.Repo.CreateConnection(&ins)
	if err != nil {
		log.Printf("Ошибка при создании связи: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid connection data")
		return
	}
	if conn == nil {
		respondError(w, http.StatusBadRequest, "Invalid connection data")
		return
	}
	respondJSON(w, http.StatusCreated, conn)
}

// DeleteConnectionHandler удаляет связь по ID.
// DELETE /api/connections/{id}
func (c *ConnectionController) DeleteConnectionHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(mux.Vars(r), "id")
	if !ok {
		respondError(w, http.StatusNotFound, "Connection not found")
		return
	}

	existed, err := c.Repo.DeleteConnection(id)
	if err != nil {
		log.Printf("Ошибка при удалении связи %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete connection")
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, "Connection not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
