package service

import (
	"BookShelf/internal/model"
	"BookShelf/internal/repo"
	"BookShelf/internal/storage"
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrItemNotFound — записи с таким id нет.
var ErrItemNotFound = errors.New("item not found")

// ItemService инкапсулирует операции каталога: поиск, карточку и приём
// загрузок.
type ItemService struct {
	repo   repo.ItemRepository
	files  storage.FileStore
	logger *zap.SugaredLogger
}

func NewItemService(r repo.ItemRepository, fs storage.FileStore, logger *zap.SugaredLogger) *ItemService {
	return &ItemService{repo: r, files: fs, logger: logger}
}

// Search возвращает записи с query как подстрокой (без учёта регистра) в name
// или descriptions. Пустой запрос — пустой результат, а не весь каталог.
func (s *ItemService) Search(ctx context.Context, query string) ([]model.Item, error) {
	if query == "" {
		return []model.Item{}, nil
	}
	return s.repo.Search(ctx, query)
}

// Get возвращает запись по id.
func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

// CreateFromUpload сохраняет файл в хранилище и заводит запись каталога со
// ссылкой на него.
func (s *ItemService) CreateFromUpload(ctx context.Context, name, descriptions, fileName string, file io.Reader) (*model.Item, error) {
	pdfPath, err := s.files.Save(fileName, file)
	if err != nil {
		s.logger.Errorw("failed to store uploaded file", "file", fileName, "error", err)
		return nil, err
	}

	item := &model.Item{
		ID:           uuid.NewString(),
		Name:         name,
		Descriptions: descriptions,
		PDF:          pdfPath,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		s.logger.Errorw("failed to persist item", "name", name, "error", err)
		return nil, err
	}
	return item, nil
}
