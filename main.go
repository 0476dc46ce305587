package main

import (
	"fmt"
	"log"
	"net/http"

	"note_map_go/auth"
	"note_map_go/config"
	"note_map_go/controllers"
	"note_map_go/data"
)

// newRepository выбирает движок хранения по конфигурации.
func newRepository(cfg *config.Config) (data.Repository, error) {
	switch cfg.Engine {
	case "sqlite":
		db, err := data.OpenDB(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return data.NewSQLiteRepository(db), nil
	case "memory":
		return data.NewMemoryRepository(), nil
	default:
		return nil, fmt.Errorf("unknown storage engine: %q", cfg.Engine)
	}
}

func main() {
	cfg := config.LoadConfig()
	auth.Configure(cfg.JWTSecret, cfg.TokenTTL)

	repo, err := newRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer repo.Close()

	// Пользователь по умолчанию нужен, когда клиент не передал userId.
	if err := data.EnsureDefaultUser(repo); err != nil {
		log.Fatalf("Failed to ensure default user: %v", err)
	}

	router := controllers.NewRouter(repo)

	log.Printf("Запуск сервера на %s (движок хранения: %s)", cfg.Addr, cfg.Engine)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal(err)
	}
}
