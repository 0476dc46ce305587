package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"note_map_go/data"
	"note_map_go/models"

	"github.com/gorilla/mux"
)

// NoteController обрабатывает CRUD-запросы к заметкам.
type NoteController struct {
	Repo data.Repository
}

// GetNotesHandler возвращает все заметки пользователя.
// GET /api/notes?userId=X
func (c *NoteController) GetNotesHandler(w http.ResponseWriter, r *http.Request) {
	userID := resolveUserID(r)
	notes, err := c.Repo.GetNotesByUserID(userID)
	if err != nil {
		log.Printf("Ошибка при получении заметок пользователя %d: %v", userID, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch notes")
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

// GetNoteHandler возвращает заметку по ID.
// GET /api/notes/{id}
func (c *NoteController) GetNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(mux.Vars(r), "id")
	if !ok {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}

	note, err := c.Repo.GetNoteByID(id)
	if err != nil {
		log.Printf("Ошибка при получении заметки %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch note")
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// CreateNoteHandler создает новую заметку.
// POST /api/notes
func (c *NoteController) CreateNoteHandler(w http.ResponseWriter, r *http.Request) {
	var ins models.InsertNote
	if err := json.NewDecoder(r.Body).Decode(&ins); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note data")
		return
	}
	defer r.Body.Close()

	if err := ins.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note data")
		return
	}

	if ins.UserID == nil {
		userID := resolveUserID(r)
		ins.UserID = &userID
	}

	note, err := c.Repo.CreateNote(&ins)
	if err != nil {
		log.Printf("Ошибка при создании заметки: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid note data")
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

// UpdateNoteHandler накладывает частичный патч на заметку.
// PUT /api/notes/{id}
func (c *NoteController) UpdateNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(mux.Vars(r), "id")
	if !ok {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}

	var patch models.NotePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note data")
		return
	}
	defer r.Body.Close()

	note, err := c.Repo.UpdateNote(id, &patch)
	if err != nil {
		log.Printf("Ошибка при обновлении заметки %d: %v", id, err)
		respondError(w, http.StatusBadRequest, "Invalid note data")
		return
	}
	if note == nil {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	respondJSON(w, http.StatusOK, note)
}

// DeleteNoteHandler удаляет заметку вместе со связями и привязками меток.
// DELETE /api/notes/{id}
func (c *NoteController) DeleteNoteHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := parsePathID(mux.Vars(r), "id")
	if !ok {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}

	existed, err := c.Repo.DeleteNote(id)
	if err != nil {
		log.Printf("Ошибка при удалении заметки %d: %v", id, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete note")
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, "Note not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
