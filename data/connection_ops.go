package data

import (
	"database/sql"
	"fmt"
	"log"

	"note_map_go/models"
)

// CreateConnection создает новую связь между заметками.
// Петля (source == target) и дубликат упорядоченной пары (source, target) -
// no-op: возвращается (nil, nil) без ошибки. Встречная связь между той же
// парой заметок дубликатом не считается.
func (r *SQLiteRepository) CreateConnection(ins *models.InsertConnection) (*models.Connection, error) {
	if ins.SourceID == ins.TargetID {
		return nil, nil
	}

	var count int
	err := r.db.Get(&count, `SELECT COUNT(*) FROM Connections WHERE SourceId = ? AND TargetId = ?`,
		ins.SourceID, ins.TargetID)
	if err != nil {
		return nil, fmt.Errorf("CreateConnection: ошибка проверки дубликата: %w", err)
	}
	if count > 0 {
		return nil, nil
	}

	conn := &models.Connection{SourceID: ins.SourceID, TargetID: ins.TargetID, UserID: ins.UserID}
	query := `INSERT INTO Connections (SourceId, TargetId, UserId) VALUES (:SourceId, :TargetId, :UserId)`
	result, err := r.db.NamedExec(query, conn)
	if err != nil {
		return nil, fmt.Errorf("CreateConnection: ошибка вставки: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("CreateConnection: ошибка получения LastInsertId: %w", err)
	}
	conn.ID = id
	log.Printf("Создана связь с ID: %d (%d -> %d)", id, conn.SourceID, conn.TargetID)
	return conn, nil
}

// GetConnectionByID извлекает связь по ее ID. Возвращает (nil, nil), если связи нет.
func (r *SQLiteRepository) GetConnectionByID(id int64) (*models.Connection, error) {
	conn := &models.Connection{}
	query := `SELECT Id, SourceId, TargetId, UserId FROM Connections WHERE Id = ?`
	err := r.db.Get(conn, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Не найдено
		}
		return nil, fmt.Errorf("GetConnectionByID: ошибка получения связи ID %d: %w", id, err)
	}
	return conn, nil
}

// GetConnectionsByUserID извлекает все связи пользователя в порядке вставки.
func (r *SQLiteRepository) GetConnectionsByUserID(userID int64) ([]models.Connection, error) {
	conns := []models.Connection{}
	query := `SELECT Id, SourceId, TargetId, UserId FROM Connections WHERE UserId = ? ORDER BY Id ASC`
	err := r.db.Select(&conns, query, userID)
	if err != nil {
		return nil, fmt.Errorf("GetConnectionsByUserID: ошибка получения связей пользователя %d: %w", userID, err)
	}
	return conns, nil
}

// DeleteConnection удаляет связь по ее ID. Возвращает, существовала ли она.
func (r *SQLiteRepository) DeleteConnection(id int64) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM Connections WHERE Id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("DeleteConnection: ошибка удаления связи ID %d: %w", id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return false, nil
	}
	log.Printf("Удалена связь с ID: %d", id)
	return true, nil
}
