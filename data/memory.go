package data

import (
	"fmt"
	"sync"
	"time"

	"note_map_go/models"
)

// MemoryRepository - энергозависимый движок хранения: map на тип сущности плюс
// срез ID для порядка вставки. Счетчики ID начинаются с 1 и не переиспользуются,
// пока жив экземпляр. Состояние целиком теряется при перезапуске процесса.
//
// HTTP-сервер обслуживает запросы из нескольких горутин, поэтому все операции
// проходят под одним RWMutex.
type MemoryRepository struct {
	mu sync.RWMutex

	users       map[int64]models.User
	notes       map[int64]models.Note
	tags        map[int64]models.Tag
	connections map[int64]models.Connection
	noteTags    map[int64]models.NoteTag

	userOrder       []int64
	noteOrder       []int64
	tagOrder        []int64
	connectionOrder []int64
	noteTagOrder    []int64

	currentUserID       int64
	currentNoteID       int64
	currentTagID        int64
	currentConnectionID int64
	currentNoteTagID    int64
}

// NewMemoryRepository создает пустой движок с счетчиками, выставленными в 1.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users:               make(map[int64]models.User),
		notes:               make(map[int64]models.Note),
		tags:                make(map[int64]models.Tag),
		connections:         make(map[int64]models.Connection),
		noteTags:            make(map[int64]models.NoteTag),
		currentUserID:       1,
		currentNoteID:       1,
		currentTagID:        1,
		currentConnectionID: 1,
		currentNoteTagID:    1,
	}
}

// Close освобождает ресурсы движка. Для памяти это no-op.
func (r *MemoryRepository) Close() error {
	return nil
}

// --- Пользователи ---

// GetUser возвращает пользователя по ID или (nil, nil), если его нет.
func (r *MemoryRepository) GetUser(id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if u, ok := r.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

// GetUserByUsername возвращает пользователя по имени или (nil, nil), если его нет.
func (r *MemoryRepository) GetUserByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.userOrder {
		if u := r.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

// CreateUser регистрирует нового пользователя. Пароль хешируется bcrypt.
func (r *MemoryRepository) CreateUser(ins *models.InsertUser) (*models.User, error) {
	hash, err := HashPassword(ins.Password)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: ошибка хеширования пароля: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.userOrder {
		if r.users[id].Username == ins.Username {
			return nil, fmt.Errorf("CreateUser: пользователь %q уже существует", ins.Username)
		}
	}
	id := r.currentUserID
	r.currentUserID++
	user := models.User{ID: id, Username: ins.Username, PasswordHash: hash}
	r.users[id] = user
	r.userOrder = append(r.userOrder, id)
	return &user, nil
}

// --- Заметки ---

// GetNotesByUserID возвращает все заметки пользователя в порядке вставки.
func (r *MemoryRepository) GetNotesByUserID(userID int64) ([]models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	notes := []models.Note{}
	for _, id := range r.noteOrder {
		n := r.notes[id]
		if n.UserID != nil && *n.UserID == userID {
			notes = append(notes, n)
		}
	}
	return notes, nil
}

// GetNoteByID возвращает заметку по ID или (nil, nil), если ее нет.
func (r *MemoryRepository) GetNoteByID(id int64) (*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n, ok := r.notes[id]; ok {
		return &n, nil
	}
	return nil, nil
}

// CreateNote создает заметку, назначая ID и таймстампы.
func (r *MemoryRepository) CreateNote(ins *models.InsertNote) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.currentNoteID
	r.currentNoteID++
	now := time.Now()
	note := models.Note{
		ID:        id,
		UserID:    ins.UserID,
		Title:     ins.Title,
		Content:   ins.Content,
		Position:  ins.Position,
		Color:     ins.Color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.notes[id] = note
	r.noteOrder = append(r.noteOrder, id)
	return &note, nil
}

// UpdateNote накладывает патч на заметку и обновляет UpdatedAt.
// Возвращает (nil, nil), если заметки нет - это не upsert.
func (r *MemoryRepository) UpdateNote(id int64, patch *models.NotePatch) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	note, ok := r.notes[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&note)
	note.UpdatedAt = time.Now()
	r.notes[id] = note
	return &note, nil
}

// DeleteNote удаляет заметку вместе со всеми связями, где она источник или цель,
// и всеми строками NoteTags, ссылающимися на нее.
func (r *MemoryRepository) DeleteNote(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.notes[id]; !ok {
		return false, nil
	}
	delete(r.notes, id)
	r.noteOrder = removeID(r.noteOrder, id)

	for _, cid := range append([]int64(nil), r.connectionOrder...) {
		c := r.connections[cid]
		if c.SourceID == id || c.TargetID == id {
			delete(r.connections, cid)
			r.connectionOrder = removeID(r.connectionOrder, cid)
		}
	}
	for _, ntid := range append([]int64(nil), r.noteTagOrder...) {
		if r.noteTags[ntid].NoteID == id {
			delete(r.noteTags, ntid)
			r.noteTagOrder = removeID(r.noteTagOrder, ntid)
		}
	}
	return true, nil
}

// --- Метки ---

// GetTagsByUserID возвращает все метки пользователя в порядке вставки.
func (r *MemoryRepository) GetTagsByUserID(userID int64) ([]models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := []models.Tag{}
	for _, id := range r.tagOrder {
		t := r.tags[id]
		if t.UserID != nil && *t.UserID == userID {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

// GetTagByID возвращает метку по ID или (nil, nil), если ее нет.
func (r *MemoryRepository) GetTagByID(id int64) (*models.Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if t, ok := r.tags[id]; ok {
		return &t, nil
	}
	return nil, nil
}

// CreateTag создает метку. Уникальность имени не проверяется.
func (r *MemoryRepository) CreateTag(ins *models.InsertTag) (*models.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.currentTagID
	r.currentTagID++
	tag := models.Tag{ID: id, UserID: ins.UserID, Name: ins.Name, Color: ins.Color}
	r.tags[id] = tag
	r.tagOrder = append(r.tagOrder, id)
	return &tag, nil
}

// UpdateTag накладывает патч на метку. Возвращает (nil, nil), если метки нет.
func (r *MemoryRepository) UpdateTag(id int64, patch *models.TagPatch) (*models.Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	tag, ok := r.tags[id]
	if !ok {
		return nil, nil
	}
	patch.Apply(&tag)
	r.tags[id] = tag
	return &tag, nil
}

// DeleteTag удаляет метку и все строки NoteTags, ссылающиеся на нее.
func (r *MemoryRepository) DeleteTag(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tags[id]; !ok {
		return false, nil
	}
	delete(r.tags, id)
	r.tagOrder = removeID(r.tagOrder, id)

	for _, ntid := range append([]int64(nil), r.noteTagOrder...) {
		if r.noteTags[ntid].TagID == id {
			delete(r.noteTags, ntid)
			r.noteTagOrder = removeID(r.noteTagOrder, ntid)
		}
	}
	return true, nil
}

// --- Связи ---

// GetConnectionsByUserID возвращает все связи пользователя в порядке вставки.
func (r *MemoryRepository) GetConnectionsByUserID(userID int64) ([]models.Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	conns := []models.Connection{}
	for _, id := range r.connectionOrder {
		c := r.connections[id]
		if c.UserID != nil && *c.UserID == userID {
			conns = append(conns, c)
		}
	}
	return conns, nil
}

// GetConnectionByID возвращает связь по ID или (nil, nil), если ее нет.
func (r *MemoryRepository) GetConnectionByID(id int64) (*models.Connection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.connections[id]; ok {
		return &c, nil
	}
	return nil, nil
}

// CreateConnection создает связь между заметками. Петли и дубликаты
// упорядоченной пары (source, target) - no-op: возвращается (nil, nil) без
// ошибки. Встречные связи между той же парой разрешены.
func (r *MemoryRepository) CreateConnection(ins *models.InsertConnection) (*models.Connection, error) {
	if ins.SourceID == ins.TargetID {
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Дубликаты ищем линейным сканом.
	for _, id := range r.connectionOrder {
		c := r.connections[id]
		if c.SourceID == ins.SourceID && c.TargetID == ins.TargetID {
			return nil, nil
		}
	}
	id := r.currentConnectionID
	r.currentConnectionID++
	conn := models.Connection{ID: id, SourceID: ins.SourceID, TargetID: ins.TargetID, UserID: ins.UserID}
	r.connections[id] = conn
	r.connectionOrder = append(r.connectionOrder, id)
	return &conn, nil
}

// DeleteConnection удаляет связь по ID. Возвращает, существовала ли она.
func (r *MemoryRepository) DeleteConnection(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.connections[id]; !ok {
		return false, nil
	}
	delete(r.connections, id)
	r.connectionOrder = removeID(r.connectionOrder, id)
	return true, nil
}

// --- Соединительная таблица заметка-метка ---

// GetNoteTagsByNoteID возвращает строки NoteTags для заметки в порядке вставки.
func (r *MemoryRepository) GetNoteTagsByNoteID(noteID int64) ([]models.NoteTag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := []models.NoteTag{}
	for _, id := range r.noteTagOrder {
		if nt := r.noteTags[id]; nt.NoteID == noteID {
			rows = append(rows, nt)
		}
	}
	return rows, nil
}

// GetNoteTagsByTagID возвращает строки NoteTags для метки в порядке вставки.
func (r *MemoryRepository) GetNoteTagsByTagID(tagID int64) ([]models.NoteTag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rows := []models.NoteTag{}
	for _, id := range r.noteTagOrder {
		if nt := r.noteTags[id]; nt.TagID == tagID {
			rows = append(rows, nt)
		}
	}
	return rows, nil
}

// CreateNoteTag привязывает метку к заметке.
func (r *MemoryRepository) CreateNoteTag(ins *models.InsertNoteTag) (*models.NoteTag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.currentNoteTagID
	r.currentNoteTagID++
	nt := models.NoteTag{ID: id, NoteID: ins.NoteID, TagID: ins.TagID}
	r.noteTags[id] = nt
	r.noteTagOrder = append(r.noteTagOrder, id)
	return &nt, nil
}

// DeleteNoteTag удаляет строку NoteTags по ID. Возвращает, существовала ли она.
func (r *MemoryRepository) DeleteNoteTag(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.noteTags[id]; !ok {
		return false, nil
	}
	delete(r.noteTags, id)
	r.noteTagOrder = removeID(r.noteTagOrder, id)
	return true, nil
}

// DeleteNoteTagByNoteAndTag удаляет первую привязку по паре (noteID, tagID).
// Возвращает, существовала ли она.
func (r *MemoryRepository) DeleteNoteTagByNoteAndTag(noteID, tagID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.noteTagOrder {
		nt := r.noteTags[id]
		if nt.NoteID == noteID && nt.TagID == tagID {
			delete(r.noteTags, id)
			r.noteTagOrder = removeID(r.noteTagOrder, id)
			return true, nil
		}
	}
	return false, nil
}

// removeID удаляет первое вхождение id из среза порядка вставки.
func removeID(order []int64, id int64) []int64 {
	for i, v := range order {
		if v == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
