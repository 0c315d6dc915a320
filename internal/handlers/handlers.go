package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"BookShelf/internal/config"
	"BookShelf/internal/middleware"
	"BookShelf/internal/service"
	"BookShelf/internal/session"
	"BookShelf/internal/storage"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	itemService *service.ItemService,
	sessions session.Store,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithSession(sessions, config.AuthSecret))

	renderer := NewRenderer(logger)

	// Handlers
	userHandler := NewUserHandler(userService, sessions, renderer, logger, config)
	itemHandler := NewItemHandler(itemService, renderer, logger, config)

	// Public routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/home", http.StatusFound)
	})
	r.Get("/home", itemHandler.Home)
	r.Get("/search", itemHandler.Search)
	r.Get("/signup", userHandler.SignupForm)
	r.Post("/signup", userHandler.Signup)
	r.Get("/login", userHandler.LoginForm)
	r.Post("/login", userHandler.Login)
	r.Get("/logout", userHandler.Logout)

	// Protected routes
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.RequireAuth)
		pr.Get("/item/{id}", itemHandler.Detail)
		pr.Get("/upload", itemHandler.UploadForm)
		pr.Post("/upload", itemHandler.Upload)
	})

	// Статика загруженных файлов: URL-префикс совпадает с путями в Item.PDF
	uploads := http.StripPrefix(storage.URLPrefix+"/", http.FileServer(http.Dir(config.UploadDir)))
	r.Get(storage.URLPrefix+"/*", uploads.ServeHTTP)

	return &Handler{Router: r}
}
