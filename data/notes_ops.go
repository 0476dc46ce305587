package data

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"note_map_go/models"
)

// CreateNote создает новую заметку. Возвращает сохраненную заметку с назначенным ID.
func (r *SQLiteRepository) CreateNote(ins *models.InsertNote) (*models.Note, error) {
	now := time.Now()
	note := &models.Note{
		UserID:    ins.UserID,
		Title:     ins.Title,
		Content:   ins.Content,
		Position:  ins.Position,
		Color:     ins.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	note.SyncPositionColumns()

	query := `INSERT INTO Notes (UserId, Title, Content, PositionX, PositionY, Color, CreatedAt, UpdatedAt)
	          VALUES (:UserId, :Title, :Content, :PositionX, :PositionY, :Color, :CreatedAt, :UpdatedAt)`
	result, err := r.db.NamedExec(query, note)
	if err != nil {
		return nil, fmt.Errorf("CreateNote: ошибка вставки заметки: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("CreateNote: ошибка получения LastInsertId: %w", err)
	}
	note.ID = id
	log.Printf("Создана заметка с ID: %d", id)
	return note, nil
}

// GetNoteByID извлекает заметку по ее ID. Возвращает (nil, nil), если заметки нет.
func (r *SQLiteRepository) GetNoteByID(id int64) (*models.Note, error) {
	note := &models.Note{}
	query := `SELECT Id, UserId, Title, Content, PositionX, PositionY, Color, CreatedAt, UpdatedAt
	          FROM Notes WHERE Id = ?`
	err := r.db.Get(note, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Не найдено
		}
		return nil, fmt.Errorf("GetNoteByID: ошибка получения заметки ID %d: %w", id, err)
	}
	note.LoadPosition()
	return note, nil
}

// GetNotesByUserID извлекает все заметки пользователя в порядке вставки.
func (r *SQLiteRepository) GetNotesByUserID(userID int64) ([]models.Note, error) {
	notes := []models.Note{}
	query := `SELECT Id, UserId, Title, Content, PositionX, PositionY, Color, CreatedAt, UpdatedAt
	          FROM Notes WHERE UserId = ? ORDER BY Id ASC`
	err := r.db.Select(&notes, query, userID)
	if err != nil {
		return nil, fmt.Errorf("GetNotesByUserID: ошибка получения заметок пользователя %d: %w", userID, err)
	}
	for i := range notes {
		notes[i].LoadPosition()
	}
	return notes, nil
}

// UpdateNote накладывает частичный патч на существующую заметку и обновляет UpdatedAt.
// Возвращает (nil, nil), если заметки нет - это не upsert.
func (r *SQLiteRepository) UpdateNote(id int64, patch *models.NotePatch) (*models.Note, error) {
	note, err := r.GetNoteByID(id)
	if err != nil {
		return nil, err
	}
	if note == nil {
		return nil, nil
	}

	patch.Apply(note)
	note.UpdatedAt = time.Now()
	note.SyncPositionColumns()

	query := `UPDATE Notes SET
	            UserId = :UserId, Title = :Title, Content = :Content,
	            PositionX = :PositionX, PositionY = :PositionY, Color = :Color, UpdatedAt = :UpdatedAt
	          WHERE Id = :Id`
	result, err := r.db.NamedExec(query, note)
	if err != nil {
		return nil, fmt.Errorf("UpdateNote: ошибка обновления заметки ID %d: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return nil, nil // Не найдено для обновления
	}
	log.Printf("Обновлена заметка с ID: %d", id)
	return note, nil
}

// DeleteNote удаляет заметку по ее ID. Возвращает, существовала ли она.
// Связи и строки NoteTags, ссылающиеся на заметку, каскадно удаляет база.
func (r *SQLiteRepository) DeleteNote(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM Notes WHERE Id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("DeleteNote: ошибка удаления заметки ID %d: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return false, nil
	}
	log.Printf("Удалена заметка с ID: %d", id)
	return true, nil
}
