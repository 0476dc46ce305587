package data

import (
	"database/sql"
	"fmt"

	"note_map_go/models"
)

// CreateUser создает нового пользователя. Пароль хешируется bcrypt перед записью.
func (r *SQLiteRepository) CreateUser(ins *models.InsertUser) (*models.User, error) {
	hashedPassword, err := HashPassword(ins.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	query := `INSERT INTO Users (Username, PasswordHash) VALUES (?, ?)`
	result, err := r.db.Exec(query, ins.Username, hashedPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get LastInsertId: %w", err)
	}
	return &models.User{ID: id, Username: ins.Username, PasswordHash: hashedPassword}, nil
}

// GetUser извлекает пользователя по ID. Возвращает (nil, nil), если его нет.
func (r *SQLiteRepository) GetUser(id int64) (*models.User, error) {
	user := &models.User{}
	query := `SELECT Id, Username, PasswordHash FROM Users WHERE Id = ?`
	err := r.db.Get(user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Не найдено
		}
		return nil, fmt.Errorf("GetUser: ошибка получения пользователя ID %d: %w", id, err)
	}
	return user, nil
}

// GetUserByUsername извлекает пользователя по имени. Возвращает (nil, nil), если его нет.
func (r *SQLiteRepository) GetUserByUsername(username string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT Id, Username, PasswordHash FROM Users WHERE Username = ?`
	err := r.db.Get(user, query, username)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Не найдено
		}
		return nil, fmt.Errorf("GetUserByUsername: ошибка получения пользователя %q: %w", username, err)
	}
	return user, nil
}
