package data

// Схема основной базы данных. Порядок таблиц важен для внешних ключей:
// сначала Users, затем Notes, затем ссылающиеся на них таблицы.
// Каскады удаления объявлены прямо в схеме: удаление заметки сносит ее связи
// и строки NoteTags, удаление метки - ее строки NoteTags.

// GetSchema возвращает SQL-схему для базы данных в порядке, корректном для FK.
func GetSchema() string {
	return UsersTable() + NotesTable() + TagsTable() + ConnectionsTable() + NoteTagsTable()
}

func UsersTable() string {
	return `
CREATE TABLE IF NOT EXISTS Users (
    Id INTEGER PRIMARY KEY AUTOINCREMENT,
    Username TEXT NOT NULL UNIQUE,
    PasswordHash TEXT NOT NULL
);
`
}

func NotesTable() string {
	return `
CREATE TABLE IF NOT EXISTS Notes (
    Id INTEGER PRIMARY KEY AUTOINCREMENT,
    UserId INTEGER,
    Title TEXT NOT NULL,
    Content TEXT NOT NULL,
    PositionX REAL NOT NULL,
    PositionY REAL NOT NULL,
    Color TEXT,
    CreatedAt DATETIME NOT NULL,
    UpdatedAt DATETIME NOT NULL,
    FOREIGN KEY (UserId) REFERENCES Users(Id) ON DELETE SET NULL
);
`
}

func TagsTable() string {
	return `
CREATE TABLE IF NOT EXISTS Tags (
    Id INTEGER PRIMARY KEY AUTOINCREMENT,
    UserId INTEGER,
    Name TEXT NOT NULL,
    Color TEXT NOT NULL,
    FOREIGN KEY (UserId) REFERENCES Users(Id) ON DELETE SET NULL
);
`
}

func ConnectionsTable() string {
	return `
CREATE TABLE IF NOT EXISTS Connections (
    Id INTEGER PRIMARY KEY AUTOINCREMENT,
    SourceId INTEGER NOT NULL,
    TargetId INTEGER NOT NULL,
    UserId INTEGER,
    FOREIGN KEY (SourceId) REFERENCES Notes(Id) ON DELETE CASCADE,
    FOREIGN KEY (TargetId) REFERENCES Notes(Id) ON DELETE CASCADE,
    FOREIGN KEY (UserId) REFERENCES Users(Id) ON DELETE SET NULL
);
`
}

func NoteTagsTable() string {
	return `
CREATE TABLE IF NOT EXISTS NoteTags (
    Id INTEGER PRIMARY KEY AUTOINCREMENT,
    NoteId INTEGER NOT NULL,
    TagId INTEGER NOT NULL,
    FOREIGN KEY (NoteId) REFERENCES Notes(Id) ON DELETE CASCADE,
    FOREIGN KEY (TagId) REFERENCES Tags(Id) ON DELETE CASCADE
);
`
}
