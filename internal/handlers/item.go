package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"BookShelf/internal/config"
	"BookShelf/internal/service"
)

// ItemHandler обрабатывает страницы каталога: главную, поиск, карточку и
// загрузку файлов.
type ItemHandler struct {
	ItemService *service.ItemService
	Renderer    *Renderer
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер каталога.
func NewItemHandler(
	itemService *service.ItemService,
	renderer *Renderer,
	logger *zap.SugaredLogger,
	cfg *config.Config,
) *ItemHandler {
	return &ItemHandler{
		ItemService: itemService,
		Renderer:    renderer,
		Logger:      logger,
		Config:      cfg,
	}
}

// Home отдаёт главную страницу с пустой поисковой выдачей.
func (h *ItemHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, r, "index.html", pageData{})
}

// Search выполняет поиск по каталогу и рендерит выдачу вместе с исходным
// запросом.
func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results, err := h.ItemService.Search(r.Context(), query)
	if err != nil {
		h.Logger.Errorw("Search: service error", "query", query, "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	h.Renderer.Render(w, r, "search.html", pageData{Query: query, Results: results})
}

// Detail отдаёт карточку записи. Неизвестный id — плоский 404.
func (h *ItemHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	item, err := h.ItemService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrItemNotFound) {
			http.Error(w, "Item not found", http.StatusNotFound)
			return
		}
		h.Logger.Errorw("Detail: service error", "id", id, "error", err)
		http.Error(w, "Server Error", http.StatusInternalServerError)
		return
	}

	h.Renderer.Render(w, r, "item.html", pageData{Item: item})
}

// UploadForm отдаёт форму загрузки.
func (h *ItemHandler) UploadForm(w http.ResponseWriter, r *http.Request) {
	h.Renderer.Render(w, r, "upload.html", pageData{})
}

// Upload принимает multipart-форму: один файл в поле pdf плюс name и
// descriptions. После успеха возвращает на форму — удобно грузить подряд.
func (h *ItemHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// лимит общего тела запроса
	maxBody := int64(h.Config.MaxUploadMB)*1024*1024 + 1*1024*1024
	r.Body = http.MaxBytesReader(w, r.Body, maxBody)

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.Logger.Warnw("Upload: invalid multipart form", "error", err)
		addFlash(r, "error", "No file uploaded. Please try again.")
		http.Redirect(w, r, "/upload", http.StatusFound)
		return
	}

	name := r.FormValue("name")
	descriptions := r.FormValue("descriptions")

	file, header, err := r.FormFile("pdf")
	if err != nil {
		addFlash(r, "error", "No file uploaded. Please try again.")
		http.Redirect(w, r, "/upload", http.StatusFound)
		return
	}
	defer file.Close()

	// ошибки сохранения не уходят клиенту как есть: лог + общее уведомление
	if _, err := h.ItemService.CreateFromUpload(r.Context(), name, descriptions, header.Filename, file); err != nil {
		addFlash(r, "error", "Error uploading file. Please try again.")
		http.Redirect(w, r, "/upload", http.StatusFound)
		return
	}

	addFlash(r, "success", "File uploaded successfully!")
	http.Redirect(w, r, "/upload", http.StatusFound)
}
