package handlers

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"BookShelf/internal/config"
	"BookShelf/internal/middleware"
	"BookShelf/internal/service"
	"BookShelf/internal/session"
)

// UserHandler обрабатывает регистрацию, вход и выход.
type UserHandler struct {
	UserService *service.UserService
	Sessions    session.Store
	Renderer    *Renderer
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewUserHandler создаёт хендлер пользователей.
func NewUserHandler(
	userService *service.UserService,
	sessions session.Store,
	renderer *Renderer,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *UserHandler {
	return &UserHandler{
		UserService: userService,
		Sessions:    sessions,
		Renderer:    renderer,
		Logger:      logger,
		Config:      cfg,
	}
}

// SignupForm отдаёт форму регистрации.
func (h *UserHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, r, "signup.html", pageData{})
}

// Signup регистрирует пользователя.
// Валидация — только на присутствие полей; при ошибке форма рендерится
// повторно с введёнными name/email.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Warnw("Signup: invalid form", "error", err)
		http.Redirect(w, r, "/signup", http.StatusFound)
		return
	}

	name := r.FormValue("name")
	email := r.FormValue("email")
	password := r.FormValue("password")

	if name == "" || email == "" || password == "" {
		h.Renderer.Render(w, r, "signup.html", pageData{
			Errors: []string{"Please fill in all fields"},
			Name:   name,
			Email:  email,
		})
		return
	}

	_, err := h.UserService.Register(r.Context(), name, email, password)
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		addFlash(r, "error", "Email is already registered")
		http.Redirect(w, r, "/signup", http.StatusFound)
	case err != nil:
		h.Logger.Errorw("Signup: failed to register user", "email", email, "error", err)
		http.Redirect(w, r, "/signup", http.StatusFound)
	default:
		addFlash(r, "success", "You are registered! Please log in.")
		http.Redirect(w, r, "/login", http.StatusFound)
	}
}

// LoginForm отдаёт форму входа.
func (h *UserHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, r, "login.html", pageData{})
}

// Login проверяет учётные данные и привязывает пользователя к сессии.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.Logger.Warnw("Login: invalid form", "error", err)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")

	user, err := h.UserService.Authenticate(r.Context(), email, password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		// одинаковое сообщение для неизвестного email и неверного пароля
		addFlash(r, "error", "Invalid email or password")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	case err != nil:
		h.Logger.Errorw("Login: failed to authenticate", "email", email, "error", err)
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		h.Logger.Errorw("Login: no session in context")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	sess.SetUser(&session.User{ID: user.ID, Name: user.Name, Email: user.Email})

	http.Redirect(w, r, "/home", http.StatusFound)
}

// Logout уничтожает сессию целиком и гасит cookie.
// Идемпотентен: без активной сессии просто редиректит на /login.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		h.Sessions.Destroy(sess.ID)
	}
	middleware.ClearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}
