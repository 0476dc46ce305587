package models

// Tag представляет именованную цветную метку (серверный вариант).
type Tag struct {
	ID     int64  `json:"id" db:"Id"`
	UserID *int64 `json:"userId,omitempty" db:"UserId"`
	Name   string `json:"name" db:"Name"`
	Color  string `json:"color" db:"Color"` // hex-строка, например "#EC4899"
}

// InsertTag - данные для создания новой метки.
type InsertTag struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	UserID *int64 `json:"userId,omitempty"`
}

// Validate проверяет обязательные поля метки.
// Уникальность имени на уровне репозитория НЕ проверяется.
func (t *InsertTag) Validate() error {
	if t.Name == "" {
		return &ValidationError{Field: "name", Reason: "имя метки не может быть пустым"}
	}
	if t.Color == "" {
		return &ValidationError{Field: "color", Reason: "цвет метки не может быть пустым"}
	}
	return nil
}

// TagPatch - частичное обновление метки.
type TagPatch struct {
	Name   *string `json:"name,omitempty"`
	Color  *string `json:"color,omitempty"`
	UserID *int64  `json:"userId,omitempty"`
}

// Apply накладывает патч на метку, не трогая отсутствующие поля.
func (p *TagPatch) Apply(t *Tag) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Color != nil {
		t.Color = *p.Color
	}
	if p.UserID != nil {
		t.UserID = p.UserID
	}
}

// TagData представляет метку клиентского стора (строковые ID).
type TagData struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}
