package data

import (
	"github.com/jmoiron/sqlx"
)

// SQLiteRepository - долговременный движок хранения поверх SQLite.
// Реализует тот же контракт Repository, что и MemoryRepository; каскады
// удаления выполняет сама база через внешние ключи (см. schema.go).
type SQLiteRepository struct {
	db *sqlx.DB
}

// NewSQLiteRepository оборачивает открытое подключение в репозиторий.
func NewSQLiteRepository(db *sqlx.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Close закрывает подключение к базе данных.
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
