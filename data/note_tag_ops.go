package data

import (
	"fmt"
	"log"

	"note_map_go/models"
)

// CreateNoteTag привязывает метку к заметке строкой соединительной таблицы.
func (r *SQLiteRepository) CreateNoteTag(ins *models.InsertNoteTag) (*models.NoteTag, error) {
	nt := &models.NoteTag{NoteID: ins.NoteID, TagID: ins.TagID}
	query := `INSERT INTO NoteTags (NoteId, TagId) VALUES (:NoteId, :TagId)`
	result, err := r.db.NamedExec(query, nt)
	if err != nil {
		return nil, fmt.Errorf("CreateNoteTag: ошибка вставки: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("CreateNoteTag: ошибка получения LastInsertId: %w", err)
	}
	nt.ID = id
	log.Printf("Метка %d привязана к заметке %d (NoteTag ID: %d)", nt.TagID, nt.NoteID, id)
	return nt, nil
}

// GetNoteTagsByNoteID извлекает строки NoteTags для заметки в порядке вставки.
func (r *SQLiteRepository) GetNoteTagsByNoteID(noteID int64) ([]models.NoteTag, error) {
	rows := []models.NoteTag{}
	query := `SELECT Id, NoteId, TagId FROM NoteTags WHERE NoteId = ? ORDER BY Id ASC`
	err := r.db.Select(&rows, query, noteID)
	if err != nil {
		return nil, fmt.Errorf("GetNoteTagsByNoteID: ошибка получения для заметки %d: %w", noteID, err)
	}
	return rows, nil
}

// GetNoteTagsByTagID извлекает строки NoteTags для метки в порядке вставки.
func (r *SQLiteRepository) GetNoteTagsByTagID(tagID int64) ([]models.NoteTag, error) {
	rows := []models.NoteTag{}
	query := `SELECT Id, NoteId, TagId FROM NoteTags WHERE TagId = ? ORDER BY Id ASC`
	err := r.db.Select(&rows, query, tagID)
	if err != nil {
		return nil, fmt.Errorf("GetNoteTagsByTagID: ошибка получения для метки %d: %w", tagID, err)
	}
	return rows, nil
}

// DeleteNoteTagByNoteAndTag удаляет первую привязку по паре (noteID, tagID).
// Возвращает, существовала ли она.
func (r *SQLiteRepository) DeleteNoteTagByNoteAndTag(noteID, tagID int64) (bool, error) {
	query := `DELETE FROM NoteTags WHERE Id IN
	            (SELECT Id FROM NoteTags WHERE NoteId = ? AND TagId = ? ORDER BY Id ASC LIMIT 1)`
	result, err := r.db.Exec(query, noteID, tagID)
	if err != nil {
		return false, fmt.Errorf("DeleteNoteTagByNoteAndTag: ошибка удаления привязки (%d, %d): %w", noteID, tagID, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return false, nil
	}
	log.Printf("Метка %d отвязана от заметки %d", tagID, noteID)
	return true, nil
}

// DeleteNoteTag удаляет строку NoteTags по ID. Возвращает, существовала ли она.
func (r *SQLiteRepository) DeleteNoteTag(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM NoteTags WHERE Id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("DeleteNoteTag: ошибка удаления ID %d: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return false, nil
	}
	return true, nil
}
