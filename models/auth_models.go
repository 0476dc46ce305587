package models

// RegisterRequest - тело запроса на регистрацию.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest - тело запроса на вход.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserPublicInfo - публичная часть данных пользователя, отдаваемая клиенту.
type UserPublicInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// AuthResponse - ответ на успешную регистрацию или вход.
type AuthResponse struct {
	Token string         `json:"token"`
	User  UserPublicInfo `json:"user"`
}
