package models

// User представляет пользователя системы. Пароль хранится только в виде bcrypt-хеша.
type User struct {
	ID           int64  `json:"id" db:"Id"`
	Username     string `json:"username" db:"Username"`
	PasswordHash string `json:"-" db:"PasswordHash"`
}

// InsertUser - данные для регистрации нового пользователя.
// Поле Password содержит исходный пароль; хеширование выполняет слой данных.
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate проверяет обязательные поля регистрации.
func (u *InsertUser) Validate() error {
	if u.Username == "" {
		return &ValidationError{Field: "username", Reason: "имя пользователя не может быть пустым"}
	}
	if u.Password == "" {
		return &ValidationError{Field: "password", Reason: "пароль не может быть пустым"}
	}
	return nil
}
