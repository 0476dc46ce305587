package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"note_map_go/auth"
)

// contextKey - собственный тип ключа контекста, чтобы не конфликтовать с чужими значениями.
type contextKey string

// UserIDKey - ключ для хранения ID пользователя в контексте запроса.
const UserIDKey contextKey = "userID"

// UsernameKey - ключ для хранения имени пользователя в контексте запроса.
const UsernameKey contextKey = "username"

// OptionalJWTMiddleware проверяет JWT в заголовке Authorization, если он есть.
// Аутентификация на маршрутах заметок не обязательна: отсутствие заголовка
// пропускает запрос дальше без ID пользователя в контексте, и обработчики
// подставляют пользователя по умолчанию. Присланный, но невалидный токен -
// это ошибка клиента, и она отклоняется с 401.
func OptionalJWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Printf("OptionalJWTMiddleware: неверный формат заголовка Authorization для %s %s", r.Method, r.URL.Path)
			http.Error(w, "Неверный формат заголовка Authorization (ожидается Bearer {token})", http.StatusUnauthorized)
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			log.Printf("OptionalJWTMiddleware: невалидный токен для %s %s: %v", r.Method, r.URL.Path, err)
			http.Error(w, "Невалидный токен: "+err.Error(), http.StatusUnauthorized)
			return
		}

		// Добавляем информацию из токена в контекст запроса
		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, UsernameKey, claims.Username)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID пользователя из контекста, если токен был предъявлен.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}
