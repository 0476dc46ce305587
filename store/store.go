package store

import (
	"log"
	"sync"
	"time"

	"note_map_go/models"
)

// toastDuration - время, через которое тост скрывается сам.
const toastDuration = 3 * time.Second

// Toast - транзиентное уведомление стора.
type Toast struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// GraphStore - клиентский стор графа заметок: заметки, связи, метки,
// транзиентное UI-состояние (выбор, редактирование, поиск, тост) и состояние
// холста. Владеет своим состоянием монопольно: наружу уходят только копии.
//
// Подмножество {notes, connections, tags, theme} сохраняется через Persister
// после каждой мутации; ошибки сохранения логируются и наружу не выходят.
// Стор конструируется явно, с внедренными персистером и генератором ID,
// поэтому изолированных экземпляров может быть сколько угодно.
type GraphStore struct {
	mu sync.Mutex

	notes       []models.NoteData
	connections []models.ConnectionData
	tags        []models.TagData

	selectedNote string // "" - ничего не выбрано
	editingNote  string // "" - ничего не редактируется
	canvasState  models.CanvasState
	searchQuery  string
	theme        string
	toast        *Toast

	persister Persister
	ids       IDGenerator
}

// NewGraphStore создает стор, загружая сохраненное состояние через персистер.
// Если сохраненного состояния нет, применяются данные по умолчанию.
// persister может быть nil - тогда стор живет только в памяти.
func NewGraphStore(persister Persister, ids IDGenerator) (*GraphStore, error) {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	s := &GraphStore{
		canvasState: models.CanvasState{Scale: 1},
		theme:       "light",
		persister:   persister,
		ids:         ids,
	}

	var loaded *PersistedState
	if persister != nil {
		var err error
		loaded, err = persister.Load()
		if err != nil {
			return nil, err
		}
	}
	if loaded != nil {
		s.notes = loaded.Notes
		s.connections = loaded.Connections
		s.tags = loaded.Tags
		if loaded.Theme != "" {
			s.theme = loaded.Theme
		}
	} else {
		s.notes, s.connections, s.tags = seedState()
	}
	return s, nil
}

// persistLocked сохраняет текущее подмножество состояния. Вызывается под мьютексом.
func (s *GraphStore) persistLocked() {
	if s.persister == nil {
		return
	}
	// Снимку нужны собственные срезы тегов: DeleteTag вычищает их на месте.
	state := &PersistedState{
		Notes:       copyNotes(s.notes),
		Connections: append([]models.ConnectionData(nil), s.connections...),
		Tags:        append([]models.TagData(nil), s.tags...),
		Theme:       s.theme,
	}
	if err := s.persister.Save(state); err != nil {
		log.Printf("GraphStore: ошибка сохранения состояния: %v", err)
	}
}

// --- Заметки ---

// AddNote создает заметку с новым ID и таймстампами. Переданный ID игнорируется,
// отсутствующий набор тегов заменяется пустым.
func (s *GraphStore) AddNote(note models.NoteData) models.NoteData {
	s.mu.Lock()
	defer s.mu.Unlock()

	note.ID = s.ids.NoteID()
	if note.Tags == nil {
		note.Tags = []string{}
	}
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	s.notes = append(s.notes, note)
	s.persistLocked()
	return note
}

// UpdateNote накладывает частичный патч на заметку и обновляет UpdatedAt.
// Отсутствующий ID - молчаливый no-op: мутации стора наблюдаемо не падают.
func (s *GraphStore) UpdateNote(id string, patch models.NoteDataPatch) (models.NoteData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			patch.Apply(&s.notes[i])
			s.notes[i].UpdatedAt = time.Now()
			s.persistLocked()
			return s.notes[i], true
		}
	}
	return models.NoteData{}, false
}

// DeleteNote удаляет заметку, все связи, где она источник или цель, и сбрасывает
// указатели выбора и редактирования, если они указывали на нее.
func (s *GraphStore) DeleteNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notes := s.notes[:0]
	for _, n := range s.notes {
		if n.ID != id {
			notes = append(notes, n)
		}
	}
	s.notes = notes

	conns := s.connections[:0]
	for _, c := range s.connections {
		if c.Source != id && c.Target != id {
			conns = append(conns, c)
		}
	}
	s.connections = conns

	if s.selectedNote == id {
		s.selectedNote = ""
	}
	if s.editingNote == id {
		s.editingNote = ""
	}
	s.persistLocked()
}

// Notes возвращает копию списка заметок в порядке вставки.
func (s *GraphStore) Notes() []models.NoteData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyNotes(s.notes)
}

// --- Выбор и редактирование ---

// SelectNote выставляет указатель выбранной заметки. Пустая строка снимает выбор.
func (s *GraphStore) SelectNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedNote = id
}

// SelectedNote возвращает ID выбранной заметки ("" - ничего не выбрано).
func (s *GraphStore) SelectedNote() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedNote
}

// SetEditingNote выставляет указатель редактируемой заметки.
func (s *GraphStore) SetEditingNote(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingNote = id
}

// EditingNote возвращает ID редактируемой заметки ("" - ничего не редактируется).
func (s *GraphStore) EditingNote() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingNote
}

// --- Связи ---

// AddConnection создает связь между заметками. Петли и дубликаты упорядоченной
// пары - молчаливый no-op. При успехе показывается тост.
func (s *GraphStore) AddConnection(source, target string) (models.ConnectionData, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if source == target {
		return models.ConnectionData{}, false
	}
	for _, c := range s.connections {
		if c.Source == source && c.Target == target {
			return models.ConnectionData{}, false
		}
	}

	conn := models.ConnectionData{ID: s.ids.ConnectionID(), Source: source, Target: target}
	s.connections = append(s.connections, conn)
	s.persistLocked()
	s.showToastLocked("Connection created!", "Your notes are now connected.")
	return conn, true
}

// DeleteConnection удаляет связь по ее ID.
func (s *GraphStore) DeleteConnection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	conns := s.connections[:0]
	for _, c := range s.connections {
		if c.ID != id {
			conns = append(conns, c)
		}
	}
	s.connections = conns
	s.persistLocked()
}

// Connections возвращает копию списка связей в порядке вставки.
func (s *GraphStore) Connections() []models.ConnectionData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.ConnectionData(nil), s.connections...)
}

// --- Метки ---

// AddTag создает метку с новым ID. Уникальность имени здесь не проверяется.
func (s *GraphStore) AddTag(tag models.TagData) models.TagData {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag.ID = s.ids.TagID()
	s.tags = append(s.tags, tag)
	s.persistLocked()
	return tag
}

// DeleteTag удаляет метку и вычищает ее ID из набора тегов каждой заметки.
func (s *GraphStore) DeleteTag(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := s.tags[:0]
	for _, t := range s.tags {
		if t.ID != id {
			tags = append(tags, t)
		}
	}
	s.tags = tags

	for i := range s.notes {
		kept := s.notes[i].Tags[:0]
		for _, tagID := range s.notes[i].Tags {
			if tagID != id {
				kept = append(kept, tagID)
			}
		}
		s.notes[i].Tags = kept
	}
	s.persistLocked()
}

// Tags возвращает копию списка меток в порядке вставки.
func (s *GraphStore) Tags() []models.TagData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TagData(nil), s.tags...)
}

// --- Холст ---

// UpdateCanvasState накладывает частичный патч на состояние вьюпорта.
// Состояние холста не сохраняется в локальное хранилище.
func (s *GraphStore) UpdateCanvasState(patch models.CanvasStatePatch) models.CanvasState {
	s.mu.Lock()
	defer s.mu.Unlock()
	patch.Apply(&s.canvasState)
	return s.canvasState
}

// CanvasState возвращает текущее состояние вьюпорта.
func (s *GraphStore) CanvasState() models.CanvasState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canvasState
}

// --- Поиск ---

// SetSearchQuery выставляет текущую строку поиска.
func (s *GraphStore) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searchQuery = query
}

// SearchQuery возвращает текущую строку поиска.
func (s *GraphStore) SearchQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searchQuery
}

// --- Тема ---

// SetTheme выставляет тему оформления. Тема сохраняется в локальное хранилище.
func (s *GraphStore) SetTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	s.persistLocked()
}

// Theme возвращает текущую тему оформления.
func (s *GraphStore) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// --- Тост ---

// ShowToast показывает уведомление и прячет его через toastDuration.
func (s *GraphStore) ShowToast(title, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.showToastLocked(title, message)
}

func (s *GraphStore) showToastLocked(title, message string) {
	s.toast = &Toast{Title: title, Message: message}
	time.AfterFunc(toastDuration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// Прячем только если за это время не показали другой тост.
		if s.toast != nil && s.toast.Title == title {
			s.toast = nil
		}
	})
}

// ClearToast прячет уведомление немедленно.
func (s *GraphStore) ClearToast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toast = nil
}

// CurrentToast возвращает показанное уведомление или nil.
func (s *GraphStore) CurrentToast() *Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.toast == nil {
		return nil
	}
	t := *s.toast
	return &t
}

// copyNotes делает глубокую копию заметок (включая срезы тегов).
func copyNotes(notes []models.NoteData) []models.NoteData {
	out := make([]models.NoteData, len(notes))
	for i, n := range notes {
		n.Tags = append([]string(nil), n.Tags...)
		out[i] = n
	}
	return out
}
