package data

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // Драйвер SQLite, импортируется для побочных эффектов (регистрации драйвера)
)

// OpenDB открывает подключение к базе данных SQLite и применяет схему.
// Поддержка внешних ключей включается строкой подключения, без нее не работают
// каскадные удаления связей и строк NoteTags.
func OpenDB(dataSourceName string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", dataSourceName+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// База :memory: живет внутри одного соединения: второе соединение пула
	// увидело бы пустую базу без схемы.
	if dataSourceName == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Printf("Successfully connected to the database (%s).", dataSourceName)

	if _, err = db.Exec(GetSchema()); err != nil {
		return nil, fmt.Errorf("failed to execute schema: %w", err)
	}
	log.Println("Database schema applied successfully.")
	return db, nil
}
