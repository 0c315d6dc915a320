package repo

import (
	"BookShelf/internal/model"
	"context"
	"strings"

	"gorm.io/gorm"
)

// ItemRepository определяет контракт доступа к Item для слоя сервиса.
type ItemRepository interface {
	// Create сохраняет новую запись каталога.
	Create(ctx context.Context, item *model.Item) error

	// GetByID возвращает запись по id. Если не найдена — gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Item, error)

	// Search возвращает записи, у которых name или descriptions содержит
	// query как подстроку без учёта регистра. Порядок определяет БД.
	Search(ctx context.Context, query string) ([]model.Item, error)
}

type itemRepo struct {
	db *gorm.DB
}

// NewItemRepository создаёт реализацию репозитория для Item.
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepo{db: db}
}

func (r *itemRepo) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var it model.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

// escapeLike экранирует метасимволы LIKE, чтобы поиск оставался
// буквальным поиском подстроки.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *itemRepo) Search(ctx context.Context, query string) ([]model.Item, error) {
	// LOWER + LIKE работает одинаково в SQLite и Postgres (ILIKE — нет)
	pattern := "%" + strings.ToLower(escapeLike(query)) + "%"

	var items []model.Item
	tx := r.db.WithContext(ctx).
		Where(`LOWER(name) LIKE ? ESCAPE '\' OR LOWER(descriptions) LIKE ? ESCAPE '\'`, pattern, pattern).
		Find(&items)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return items, nil
}
