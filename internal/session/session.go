// Package session хранит серверное состояние аутентификации.
// Клиент держит только непрозрачный идентификатор сессии в cookie;
// сами данные живут в Store и не переживают рестарт процесса.
package session

import "sync"

// User — срез данных пользователя, который кладётся в сессию после логина.
// Хеш пароля сюда не попадает: хендлерам он не нужен, а светить его в
// сессионном состоянии незачем.
type User struct {
	ID    int64
	Name  string
	Email string
}

// Flash — одноразовое сообщение: показывается на следующей странице и
// удаляется.
type Flash struct {
	Kind string // "success" | "error"
	Text string
}

// Session — состояние одной клиентской сессии. Безопасна для конкурентного
// использования: несколько запросов одного браузера могут прийти параллельно.
type Session struct {
	ID string

	mu      sync.Mutex
	user    *User
	flashes []Flash
}

// User возвращает аутентифицированного пользователя или nil для анонима.
func (s *Session) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// SetUser привязывает пользователя к сессии (успешный логин).
func (s *Session) SetUser(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u == nil {
		s.user = nil
		return
	}
	cp := *u
	s.user = &cp
}

// AddFlash ставит одноразовое сообщение в очередь.
func (s *Session) AddFlash(kind, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes = append(s.flashes, Flash{Kind: kind, Text: text})
}

// PopFlashes забирает все накопленные сообщения и очищает очередь.
func (s *Session) PopFlashes() []Flash {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.flashes
	s.flashes = nil
	return out
}
