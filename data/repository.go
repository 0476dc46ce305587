package data

import (
	"note_map_go/models"
)

// Repository - контракт CRUD и запросов над графом заметок.
// Две реализации: MemoryRepository (энергозависимая, map-backed) и
// SQLiteRepository (долговременная, sqlx + sqlite). Обе соблюдают одни и те же
// инварианты: списки в порядке вставки, get отсутствующего ID возвращает (nil, nil),
// update - не upsert, delete каскадирует связи и строки NoteTags.
type Repository interface {
	// Пользователи.
	GetUser(id int64) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(ins *models.InsertUser) (*models.User, error)

	// Заметки.
	GetNotesByUserID(userID int64) ([]models.Note, error)
	GetNoteByID(id int64) (*models.Note, error)
	CreateNote(ins *models.InsertNote) (*models.Note, error)
	UpdateNote(id int64, patch *models.NotePatch) (*models.Note, error)
	DeleteNote(id int64) (bool, error)

	// Метки.
	GetTagsByUserID(userID int64) ([]models.Tag, error)
	GetTagByID(id int64) (*models.Tag, error)
	CreateTag(ins *models.InsertTag) (*models.Tag, error)
	UpdateTag(id int64, patch *models.TagPatch) (*models.Tag, error)
	DeleteTag(id int64) (bool, error)

	// Связи. CreateConnection возвращает (nil, nil) для петли или дубликата
	// упорядоченной пары (source, target) - это no-op, а не ошибка.
	GetConnectionsByUserID(userID int64) ([]models.Connection, error)
	GetConnectionByID(id int64) (*models.Connection, error)
	CreateConnection(ins *models.InsertConnection) (*models.Connection, error)
	DeleteConnection(id int64) (bool, error)

	// Соединительная таблица заметка-метка.
	GetNoteTagsByNoteID(noteID int64) ([]models.NoteTag, error)
	GetNoteTagsByTagID(tagID int64) ([]models.NoteTag, error)
	CreateNoteTag(ins *models.InsertNoteTag) (*models.NoteTag, error)
	DeleteNoteTag(id int64) (bool, error)
	DeleteNoteTagByNoteAndTag(noteID, tagID int64) (bool, error)

	Close() error
}

// DefaultUserID - подставляемый ID пользователя, когда клиент его не передал.
const DefaultUserID int64 = 1

// EnsureDefaultUser создает пользователя по умолчанию (ID 1), если его еще нет.
// Вызывается при старте сервера, чтобы внешние ключи на UserId были валидны.
func EnsureDefaultUser(repo Repository) error {
	existing, err := repo.GetUser(DefaultUserID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	_, err = repo.CreateUser(&models.InsertUser{Username: "default", Password: "default"})
	return err
}
