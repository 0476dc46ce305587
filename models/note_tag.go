package models

// NoteTag - строка соединительной таблицы многие-ко-многим между заметками и метками.
// Серверный вариант хранит отношение реляционно, в отличие от встроенного
// набора тегов клиентской NoteData.
type NoteTag struct {
	ID     int64 `json:"id" db:"Id"`
	NoteID int64 `json:"noteId" db:"NoteId"`
	TagID  int64 `json:"tagId" db:"TagId"`
}

// InsertNoteTag - данные для привязки метки к заметке.
type InsertNoteTag struct {
	NoteID int64 `json:"noteId"`
	TagID  int64 `json:"tagId"`
}

// Validate проверяет, что обе стороны связи указаны.
func (nt *InsertNoteTag) Validate() error {
	if nt.NoteID <= 0 {
		return &ValidationError{Field: "noteId", Reason: "не указана заметка"}
	}
	if nt.TagID <= 0 {
		return &ValidationError{Field: "tagId", Reason: "не указана метка"}
	}
	return nil
}
