package store

import (
	"github.com/google/uuid"
)

// IDGenerator выдает непрозрачные строковые идентификаторы для сущностей стора.
// Интерфейс введен, чтобы тесты могли подставить детерминированный генератор.
type IDGenerator interface {
	NoteID() string
	TagID() string
	ConnectionID() string
}

// UUIDGenerator - генератор по умолчанию: случайный токен UUID с префиксом типа
// сущности ("note-", "tag-", "conn-").
type UUIDGenerator struct{}

func (UUIDGenerator) NoteID() string       { return "note-" + uuid.NewString() }
func (UUIDGenerator) TagID() string        { return "tag-" + uuid.NewString() }
func (UUIDGenerator) ConnectionID() string { return "conn-" + uuid.NewString() }
