package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"note_map_go/data"
	"note_map_go/models"

	"github.com/gorilla/mux"
)

// TagController обрабатывает CRUD-запросы к меткам.
type TagController struct {
	Repo data.Repository
}

// GetTagsHandler возвращает все метки пользователя.
// GET /api/tags?userId=X
func (c *TagController) GetTagsHandler(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	tags, err := c.Repo.GetTagsByUserID(userID)
	if err != nil {
		log.Printf("Ошибка при получении меток пользователя %d: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch tags")
		return
	}
	respondJSON(w, http.StatusOK, tags)
}

// GetTagHandler возвращает метку по ID.
// GET /api/tags/{id}
func (c *TagController) GetTagHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(mux.Vars(r), "id")
	if !ok {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}

	tag, err := c.Repo.GetTagByID(id)
	if err != nil {
		log.Printf("Ошибка при получении метки %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch tag")
		return
	}
	if tag == nil {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}
	respondJSON(w, http.StatusOK, tag)
}

// CreateTagHandler создает новую метку.
// POST /api/tags
func (c *TagController) CreateTagHandler(w http.ResponseWriter, r *http.Request) {
	var ins models.InsertTag
	if err := json.NewDecoder(r.Body).Decode(&ins); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid tag data")
		return
	}
	defer r.Body.Close()

	if err := ins.Validate(); err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			respondError(w, http.StatusBadRequest, "Invalid tag data")
			return
		}
		respondError(w, http.StatusInternalServerError, "Failed to create tag")
		return
	}

	if ins.UserID == nil {
		userID := resolveUserID(r)
		ins.UserID = &userID
	}

	tag, err := c.Repo.CreateTag(&ins)
	if err != nil {
		log.Printf("Ошибка при создании метки: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid tag data")
		return
	}
	respondJSON(w, http.StatusCreated, tag)
}

// UpdateTagHandler накладывает частичный патч на метку.
// PUT /api/tags/{id}
func (c *TagController) UpdateTagHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(mux.Vars(r), "id")
	if !ok {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}

	var patch models.TagPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid tag data")
		return
	}
	defer r.Body.Close()

	tag, err := c.Repo.UpdateTag(id, &patch)
	if err != nil {
		log.Printf("Ошибка при обновлении метки %d: %v", id, err)
		respondError(w, http.StatusBadRequest, "Invalid tag data")
		return
	}
	if tag == nil {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}
	respondJSON(w, http.StatusOK, tag)
}

// DeleteTagHandler удаляет метку вместе с ее привязками к заметкам.
// DELETE /api/tags/{id}
func (c *TagController) DeleteTagHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(mux.Vars(r), "id")
	if !ok {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}

	existed, err := c.Repo.DeleteTag(id)
	if err != nil {
		log.Printf("Ошибка при удалении метки %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete tag")
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
