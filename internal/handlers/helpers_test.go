package handlers_test

import (
	"BookShelf/internal/config"
	"BookShelf/internal/handlers"
	"BookShelf/internal/middleware"
	"BookShelf/internal/model"
	"BookShelf/internal/repo"
	"BookShelf/internal/service"
	"BookShelf/internal/session"
	"BookShelf/internal/storage"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// mustHash возвращает bcrypt-хеш пароля для моков хранилища
func mustHash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(h)
}

// Minimal mocks
type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) Create(ctx context.Context, item *model.Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockItemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockItemRepo) Search(ctx context.Context, query string) ([]model.Item, error) {
	args := m.Called(ctx, query)
	if v, ok := args.Get(0).([]model.Item); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.ItemRepository = (*mockItemRepo)(nil)

// --- Helpers ---

// testEnv — полный роутер на моках репозиториев, с настоящими сессиями и
// настоящим дисковым хранилищем во временном каталоге.
type testEnv struct {
	router   http.Handler
	sessions *session.MemoryStore
	cfg      *config.Config
	ur       *mockUserRepo
	ir       *mockItemRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := &config.Config{
		AuthSecret:  "test-secret",
		UploadDir:   t.TempDir(),
		MaxUploadMB: 1,
		BaseURL:     "localhost:5000",
	}
	logger := zap.NewNop().Sugar()

	ur := &mockUserRepo{}
	ir := &mockItemRepo{}

	fs, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		t.Fatalf("failed to create disk store: %v", err)
	}

	userSvc := service.NewUserService(ur)
	itemSvc := service.NewItemService(ir, fs, logger)
	sessions := session.NewMemoryStore()

	h := handlers.NewHandler(userSvc, itemSvc, sessions, logger, cfg)
	return &testEnv{router: h.Router, sessions: sessions, cfg: cfg, ur: ur, ir: ir}
}

// addAuthCookie заводит аутентифицированную сессию и вешает её cookie на запрос.
func (e *testEnv) addAuthCookie(t *testing.T, req *http.Request) *session.Session {
	t.Helper()
	sess := e.sessions.Create()
	sess.SetUser(&session.User{ID: 1, Name: "John", Email: "john@example.com"})

	rr := httptest.NewRecorder()
	if err := middleware.SetSessionCookie(rr, sess.ID, e.cfg.AuthSecret); err != nil {
		t.Fatalf("failed to sign session cookie: %v", err)
	}
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
	return sess
}
