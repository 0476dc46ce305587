package models

import (
	"time"
)

// Position представляет координату заметки в пространстве холста.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Note представляет собой заметку в системе (серверный вариант, целочисленные ID).
type Note struct {
	ID        int64     `json:"id" db:"Id"`
	UserID    *int64    `json:"userId,omitempty" db:"UserId"`
	Title     string    `json:"title" db:"Title"`
	Content   string    `json:"content" db:"Content"`
	PositionX float64   `json:"-" db:"PositionX"`
	PositionY float64   `json:"-" db:"PositionY"`
	Color     *string   `json:"color,omitempty" db:"Color"`
	CreatedAt time.Time `json:"createdAt" db:"CreatedAt"`
	UpdatedAt time.Time `json:"updatedAt" db:"UpdatedAt"`

	Position Position `json:"position" db:"-"`
}

// SyncPositionColumns переносит Position в колонки PositionX/PositionY перед записью в БД.
func (n *Note) SyncPositionColumns() {
	n.PositionX = n.Position.X
	n.PositionY = n.Position.Y
}

// LoadPosition восстанавливает Position из колонок PositionX/PositionY после чтения из БД.
func (n *Note) LoadPosition() {
	n.Position = Position{X: n.PositionX, Y: n.PositionY}
}

// InsertNote - данные для создания новой заметки. ID и таймстампы назначает репозиторий.
type InsertNote struct {
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Position Position `json:"position"`
	Color    *string  `json:"color,omitempty"`
	UserID   *int64   `json:"userId,omitempty"`
}

// Validate проверяет обязательные поля заметки.
func (n *InsertNote) Validate() error {
	if n.Title == "" {
		return &ValidationError{Field: "title", Reason: "заголовок заметки не может быть пустым"}
	}
	if n.Content == "" {
		return &ValidationError{Field: "content", Reason: "содержимое заметки не может быть пустым"}
	}
	return nil
}

// NotePatch - частичное обновление заметки. Поля-указатели: nil означает "не трогать".
type NotePatch struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Position *Position `json:"position,omitempty"`
	Color    *string   `json:"color,omitempty"`
	UserID   *int64    `json:"userId,omitempty"`
}

// Apply накладывает патч на заметку (неглубокое слияние). UpdatedAt обновляет репозиторий.
func (p *NotePatch) Apply(n *Note) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Position != nil {
		n.Position = *p.Position
	}
	if p.Color != nil {
		n.Color = p.Color
	}
	if p.UserID != nil {
		n.UserID = p.UserID
	}
}

// NoteData представляет заметку клиентского стора (строковые ID, встроенный набор тегов).
// Эта форма сериализуется в локальное хранилище и отдается слою отрисовки.
type NoteData struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Position  Position  `json:"position"`
	Tags      []string  `json:"tags"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// NoteDataPatch - частичное обновление клиентской заметки.
type NoteDataPatch struct {
	Title    *string   `json:"title,omitempty"`
	Content  *string   `json:"content,omitempty"`
	Position *Position `json:"position,omitempty"`
	Tags     *[]string `json:"tags,omitempty"`
	Color    *string   `json:"color,omitempty"`
}

// Apply накладывает патч на клиентскую заметку, не трогая отсутствующие поля.
func (p *NoteDataPatch) Apply(n *NoteData) {
	if p.Title != nil {
		n.Title = *p.Title
	}
	if p.Content != nil {
		n.Content = *p.Content
	}
	if p.Position != nil {
		n.Position = *p.Position
	}
	if p.Tags != nil {
		n.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Color != nil {
		n.Color = *p.Color
	}
}
