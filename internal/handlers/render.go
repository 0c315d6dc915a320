package handlers

import (
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"BookShelf/internal/middleware"
	"BookShelf/internal/model"
	"BookShelf/internal/session"
	"BookShelf/internal/web"
)

// pageData — общий контекст рендера всех страниц. Страница берёт из него
// только свои поля.
type pageData struct {
	User       *session.User
	SuccessMsg []string
	ErrorMsg   []string

	// signup: валидационные ошибки и значения для повторного заполнения формы
	Errors []string
	Name   string
	Email  string

	// search / home
	Query   string
	Results []model.Item

	// item detail
	Item *model.Item
}

// Renderer рендерит вшитые в бинарь HTML-шаблоны.
type Renderer struct {
	tpl    *template.Template
	logger *zap.SugaredLogger
}

func NewRenderer(logger *zap.SugaredLogger) *Renderer {
	return &Renderer{
		tpl:    template.Must(template.ParseFS(web.Templates, "templates/*.html")),
		logger: logger,
	}
}

// Render выполняет шаблон name, предварительно подмешав в данные текущего
// пользователя и накопленные flash-сообщения (они одноразовые: после рендера
// очередь пуста).
func (re *Renderer) Render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		data.User = sess.User()
		for _, f := range sess.PopFlashes() {
			if f.Kind == "success" {
				data.SuccessMsg = append(data.SuccessMsg, f.Text)
			} else {
				data.ErrorMsg = append(data.ErrorMsg, f.Text)
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := re.tpl.ExecuteTemplate(w, name, data); err != nil {
		re.logger.Errorw("failed to render template", "template", name, "error", err)
	}
}

// addFlash ставит одноразовое сообщение в сессию текущего запроса.
func addFlash(r *http.Request, kind, text string) {
	if sess, ok := middleware.GetSessionFromContext(r.Context()); ok {
		sess.AddFlash(kind, text)
	}
}
