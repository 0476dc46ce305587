package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"note_map_go/models"
)

// StorageKey - ключ локального хранилища, под которым лежит сохраняемое состояние.
const StorageKey = "happy-note-map-storage"

// PersistedState - сохраняемое подмножество состояния стора.
// Вьюпорт холста и транзиентные указатели (выбор, редактирование, поиск)
// сюда намеренно не входят.
type PersistedState struct {
	Notes       []models.NoteData       `json:"notes"`
	Connections []models.ConnectionData `json:"connections"`
	Tags        []models.TagData        `json:"tags"`
	Theme       string                  `json:"theme"`
}

// Persister - способность сохранять и загружать состояние стора.
// Load возвращает (nil, nil), если сохраненного состояния еще нет.
type Persister interface {
	Load() (*PersistedState, error)
	Save(state *PersistedState) error
}

// FilePersister сохраняет состояние в JSON-файл "<dir>/happy-note-map-storage.json".
type FilePersister struct {
	path string
}

// NewFilePersister создает персистер, пишущий в указанную директорию.
func NewFilePersister(dir string) *FilePersister {
	return &FilePersister{path: filepath.Join(dir, StorageKey+".json")}
}

// Load читает сохраненное состояние. Отсутствие файла - не ошибка.
func (p *FilePersister) Load() (*PersistedState, error) {
	raw, err := os.ReadFile(p.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}
	state := &PersistedState{}
	if err := json.Unmarshal(raw, state); err != nil {
		return nil, fmt.Errorf("failed to decode state file: %w", err)
	}
	return state, nil
}

// Save записывает состояние целиком, перезаписывая предыдущее.
func (p *FilePersister) Save(state *PersistedState) error {
	raw, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}
	if err := os.WriteFile(p.path, raw, 0644); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}
