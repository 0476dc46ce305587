package config

import (
	"flag"
	"os"
	"time"
)

// Config - настройки времени выполнения сервера.
type Config struct {
	// Addr - адрес, на котором слушает HTTP-сервер.
	Addr string
	// Engine - движок хранения: "memory" или "sqlite".
	Engine string
	// DBPath - путь к файлу базы данных SQLite (для движка "sqlite").
	DBPath string
	// JWTSecret - секрет подписи токенов (HS256).
	JWTSecret string
	// TokenTTL - время жизни токена доступа.
	TokenTTL time.Duration
}

// LoadDefaults заполняет конфигурацию значениями по умолчанию для разработки.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.Engine = "memory"
	c.DBPath = "NoteMap.db"
	c.JWTSecret = ""
	c.TokenTTL = 24 * time.Hour
}

// LoadConfig собирает конфигурацию: значения по умолчанию, затем переменные
// окружения, затем флаги командной строки (флаги имеют приоритет).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	if v := os.Getenv("NOTE_MAP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("NOTE_MAP_ENGINE"); v != "" {
		cfg.Engine = v
	}
	if v := os.Getenv("NOTE_MAP_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("NOTE_MAP_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("NOTE_MAP_TOKEN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.TokenTTL = d
		}
	}
}

func parseFlags(cfg *Config) {
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "адрес HTTP-сервера")
	flag.StringVar(&cfg.Engine, "engine", cfg.Engine, "движок хранения: memory или sqlite")
	flag.StringVar(&cfg.DBPath, "db", cfg.DBPath, "путь к файлу базы данных SQLite")
	flag.StringVar(&cfg.JWTSecret, "jwt-secret", cfg.JWTSecret, "секрет подписи JWT")
	flag.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "время жизни токена доступа")
	flag.Parse()
}
