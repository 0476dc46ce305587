package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"note_map_go/data"
	"note_map_go/models"

	"github.com/gorilla/mux"
)

// NoteTagController обрабатывает запросы к привязкам меток заметки.
// Это серверное, реляционное представление отношения заметка-метка;
// наружу отдаются сами метки, а не строки соединительной таблицы.
type NoteTagController struct {
	Repo data.Repository
}

// GetNoteTagsHandler возвращает метки, привязанные к заметке.
// GET /api/notes/{noteId}/tags
func (c *NoteTagController) GetNoteTagsHandler(w http.ResponseWriter, r *http.Request) {
	noteID, ok := parsePathID(mux.Vars(r), "noteId")
	if !ok {
		respondError(w, http.StatusInternalServerError, "Failed to fetch note tags")
		return
	}

	noteTags, err := c.Repo.GetNoteTagsByNoteID(noteID)
	if err != nil {
		log.Printf("Ошибка при получении привязок заметки %d: %v", noteID, err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch note tags")
		return
	}

	// Разворачиваем строки соединительной таблицы в сами метки.
	// Привязки к уже удаленным меткам пропускаются.
	tags := []models.Tag{}
	for _, nt := range noteTags {
		tag, err := c.Repo.GetTagByID(nt.TagID)
		if err != nil {
			log.Printf("Ошибка при получении метки %d: %v", nt.TagID, err)
			respondError(w, http.StatusInternalServerError, "Failed to fetch note tags")
			return
		}
		if tag != nil {
			tags = append(tags, *tag)
		}
	}
	respondJSON(w, http.StatusOK, tags)
}

// AddNoteTagHandler привязывает метку к заметке. Тело запроса: {"tagId": N}.
// POST /api/notes/{noteId}/tags
func (c *NoteTagController) AddNoteTagHandler(w http.ResponseWriter, r *http.Request) {
	noteID, ok := parsePathID(mux.Vars(r), "noteId")
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid note tag data")
		return
	}

	var req struct {
		TagID int64 `json:"tagId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note tag data")
		return
	}
	defer r.Body.Close()

	ins := models.InsertNoteTag{NoteID: noteID, TagID: req.TagID}
	if err := ins.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid note tag data")
		return
	}

	nt, err := c.Repo.CreateNoteTag(&ins)
	if err != nil {
		log.Printf("Ошибка при привязке метки %d к заметке %d: %v", req.TagID, noteID, err)
		respondError(w, http.StatusBadRequest, "Invalid note tag data")
		return
	}

	tag, err := c.Repo.GetTagByID(nt.TagID)
	if err != nil {
		log.Printf("Ошибка при получении метки %d: %v", nt.TagID, err)
		respondError(w, http.StatusBadRequest, "Invalid note tag data")
		return
	}
	if tag == nil {
		respondError(w, http.StatusNotFound, "Tag not found")
		return
	}
	respondJSON(w, http.StatusCreated, tag)
}

// RemoveNoteTagHandler отвязывает метку от заметки.
// DELETE /api/notes/{noteId}/tags/{tagId}
func (c *NoteTagController) RemoveNoteTagHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	noteID, okNote := parsePathID(vars, "noteId")
	tagID, okTag := parsePathID(vars, "tagId")
	if !okNote || !okTag {
		respondError(w, http.StatusNotFound, "Note tag not found")
		return
	}

	existed, err := c.Repo.DeleteNoteTagByNoteAndTag(noteID, tagID)
	if err != nil {
		log.Printf("Ошибка при удалении привязки (%d, %d): %v", noteID, tagID, err)
		respondError(w, http.StatusInternalServerError, "Failed to delete note tag")
		return
	}
	if !existed {
		respondError(w, http.StatusNotFound, "Note tag not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
