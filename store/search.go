package store

import (
	"strings"

	"note_map_go/models"
)

// FilterNotes возвращает подмножество заметок, у которых заголовок или
// содержимое содержит query как подстроку без учета регистра. Пустой запрос
// пропускает все заметки; порядок исходной последовательности сохраняется.
// Это чистое производное представление: стор не мутируется.
func FilterNotes(notes []models.NoteData, query string) []models.NoteData {
	if query == "" {
		return notes
	}
	q := strings.ToLower(query)
	matched := []models.NoteData{}
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), q) || strings.Contains(strings.ToLower(n.Content), q) {
			matched = append(matched, n)
		}
	}
	return matched
}

// FilteredNotes возвращает заметки стора, отфильтрованные по текущей строке поиска.
// Пересчитывается при каждом вызове.
func (s *GraphStore) FilteredNotes() []models.NoteData {
	s.mu.Lock()
	query := s.searchQuery
	notes := copyNotes(s.notes)
	s.mu.Unlock()
	return FilterNotes(notes, query)
}
