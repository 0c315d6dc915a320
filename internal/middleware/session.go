package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"BookShelf/internal/session"
)

// cookieName — имя сессионной cookie.
const cookieName = "session_token"

type contextKey string

const sessionContextKey contextKey = "session"

// GetSessionFromContext достаёт сессию запроса из контекста.
func GetSessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(*session.Session)
	return s, ok
}

// SetSessionCookie подписывает идентификатор сессии и ставит cookie.
// Сам идентификатор — непрозрачный ключ серверного хранилища; подпись нужна
// только чтобы cookie нельзя было подделать.
func SetSessionCookie(w http.ResponseWriter, sessionID, secret string) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: sessionID,
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    signed,
		Path:     "/",
		HttpOnly: true,
	})
	return nil
}

// ClearSessionCookie гасит сессионную cookie (логаут).
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// sessionIDFromRequest проверяет подпись cookie и возвращает идентификатор
// сессии. Любая проблема (нет cookie, битая подпись, чужой секрет) — ok=false.
func sessionIDFromRequest(r *http.Request, secret string) (string, bool) {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return "", false
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(c.Value, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", false
	}
	return claims.Subject, true
}

// WithSession гарантирует каждому запросу живую сессию в контексте.
// Валидная cookie — поднимаем сессию из хранилища; иначе заводим анонимную
// и ставим cookie заново (в т.ч. после рестарта процесса, когда хранилище
// пустое, а cookie у клиента осталась).
func WithSession(store session.Store, secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session

			if id, ok := sessionIDFromRequest(r, secret); ok {
				sess, _ = store.Get(id)
			}
			if sess == nil {
				sess = store.Create()
				if err := SetSessionCookie(w, sess.ID, secret); err != nil {
					sugar.Errorw("failed to set session cookie", "error", err)
				}
			}

			ctx := context.WithValue(r.Context(), sessionContextKey, sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth — авторизационный гейт для защищённых страниц: аноним получает
// одноразовое уведомление и редирект на /login, никаких других эффектов.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := GetSessionFromContext(r.Context())
		if ok && sess.User() != nil {
			next.ServeHTTP(w, r)
			return
		}
		if ok {
			sess.AddFlash("error", "Please log in first!")
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	})
}
