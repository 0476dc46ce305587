package data

import (
	"database/sql"
	"fmt"
	"log"

	"note_map_go/models"
)

// CreateTag создает новую метку. Уникальность имени на этом уровне не проверяется.
func (r *SQLiteRepository) CreateTag(ins *models.InsertTag) (*models.Tag, error) {
	tag := &models.Tag{UserID: ins.UserID, Name: ins.Name, Color: ins.Color}

	query := `INSERT INTO Tags (UserId, Name, Color) VALUES (:UserId, :Name, :Color)`
	result, err := r.db.NamedExec(query, tag)
	if err != nil {
		return nil, fmt.Errorf("CreateTag: ошибка вставки метки: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("CreateTag: ошибка получения LastInsertId: %w", err)
	}
	tag.ID = id
	log.Printf("Создана метка с ID: %d", id)
	return tag, nil
}

// GetTagByID извлекает метку по ее ID. Возвращает (nil, nil), если метки нет.
func (r *SQLiteRepository) GetTagByID(id int64) (*models.Tag, error) {
	tag := &models.Tag{}
	query := `SELECT Id, UserId, Name, Color FROM Tags WHERE Id = ?`
	err := r.db.Get(tag, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Не найдено
		}
		return nil, fmt.Errorf("GetTagByID: ошибка получения метки ID %d: %w", id, err)
	}
	return tag, nil
}

// GetTagsByUserID извлекает все метки пользователя в порядке вставки.
func (r *SQLiteRepository) GetTagsByUserID(userID int64) ([]models.Tag, error) {
	tags := []models.Tag{}
	query := `SELECT Id, UserId, Name, Color FROM Tags WHERE UserId = ? ORDER BY Id ASC`
	err := r.db.Select(&tags, query, userID)
	if err != nil {
		return nil, fmt.Errorf("GetTagsByUserID: ошибка получения меток пользователя %d: %w", userID, err)
	}
	return tags, nil
}

// UpdateTag накладывает частичный патч на существующую метку.
// Возвращает (nil, nil), если метки нет.
func (r *SQLiteRepository) UpdateTag(id int64, patch *models.TagPatch) (*models.Tag, error) {
	tag, err := r.GetTagByID(id)
	if err != nil {
		return nil, err
	}
	if tag == nil {
		return nil, nil
	}

	patch.Apply(tag)
	query := `UPDATE Tags SET UserId = :UserId, Name = :Name, Color = :Color WHERE Id = :Id`
	result, err := r.db.NamedExec(query, tag)
	if err != nil {
		return nil, fmt.Errorf("UpdateTag: ошибка обновления метки ID %d: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return nil, nil // Не найдено для обновления
	}
	log.Printf("Обновлена метка с ID: %d", id)
	return tag, nil
}

// DeleteTag удаляет метку по ее ID. Возвращает, существовала ли она.
// Строки NoteTags, ссылающиеся на метку, каскадно удаляет база.
func (r *SQLiteRepository) DeleteTag(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM Tags WHERE Id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("DeleteTag: ошибка удаления метки ID %d: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return false, nil
	}
	log.Printf("Удалена метка с ID: %d", id)
	return true, nil
}
