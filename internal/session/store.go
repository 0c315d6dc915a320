package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store — контракт хранилища сессий: создание, поиск и уничтожение по
// непрозрачному ключу. Отдельный интерфейс, чтобы in-memory реализацию можно
// было заменить внешним бекендом, не трогая хендлеры.
type Store interface {
	// Create заводит новую анонимную сессию с уникальным ключом.
	Create() *Session

	// Get возвращает сессию по ключу; ok=false — ключ неизвестен.
	Get(id string) (*Session, bool)

	// Destroy удаляет сессию целиком. Неизвестный ключ — не ошибка.
	Destroy(id string)
}

// MemoryStore — процессное хранилище сессий на map под RWMutex.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore создаёт пустое in-memory хранилище.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

func (m *MemoryStore) Create() *Session {
	s := &Session{ID: uuid.NewString()}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	return s
}

func (m *MemoryStore) Get(id string) (*Session, bool) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	return s, ok
}

func (m *MemoryStore) Destroy(id string) {
	m.mu.Lock()
	delete(m.sessions, id)
	m.mu.Unlock()
}

var _ Store = (*MemoryStore)(nil)
