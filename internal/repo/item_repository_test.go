package repo

import (
	"BookShelf/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// хелпер для создания базовой записи каталога
func mkItem(id, name, descriptions string) model.Item {
	return model.Item{
		ID:           id,
		Name:         name,
		Descriptions: descriptions,
		PDF:          "/uploads/1-" + id + ".pdf",
	}
}

func TestItemRepository_Create_GetByID(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	it := mkItem("i1", "Intro to Algorithms", "CS textbook")
	assert.NoError(t, r.Create(ctx, &it))

	got, err := r.GetByID(ctx, "i1")
	assert.NoError(t, err)
	assert.Equal(t, "Intro to Algorithms", got.Name)
	assert.Equal(t, "/uploads/1-i1.pdf", got.PDF)

	// неизвестный id — gorm.ErrRecordNotFound
	got, err = r.GetByID(ctx, "missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestItemRepository_Search(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	seed := []model.Item{
		mkItem("a", "Intro to Algorithms", "CS textbook"),
		mkItem("b", "Cooking for Two", "recipes and ALGORITHM-free fun"),
		mkItem("c", "Gardening", "plants"),
	}
	for i := range seed {
		it := seed[i]
		assert.NoError(t, r.Create(ctx, &it))
	}

	// совпадение без учёта регистра и по name, и по descriptions
	got, err := r.Search(ctx, "algo")
	assert.NoError(t, err)
	ids := make([]string, 0, len(got))
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	assert.ElementsMatch(t, []string{"a", "b"}, ids)

	// запрос в верхнем регистре находит то же самое
	got, err = r.Search(ctx, "ALGO")
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	// нет совпадений — пустой список
	got, err = r.Search(ctx, "zzz")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

// метасимволы LIKE ищутся буквально, а не как шаблон
func TestItemRepository_Search_LikeMetacharsLiteral(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	withPercent := mkItem("p", "100% cotton", "fabric")
	plain := mkItem("q", "100 cotton", "fabric")
	assert.NoError(t, r.Create(ctx, &withPercent))
	assert.NoError(t, r.Create(ctx, &plain))

	got, err := r.Search(ctx, "100%")
	assert.NoError(t, err)
	if assert.Len(t, got, 1) {
		assert.Equal(t, "p", got[0].ID)
	}

	// "_" не должен работать как одиночный wildcard
	got, err = r.Search(ctx, "10_")
	assert.NoError(t, err)
	assert.Empty(t, got)
}
