package repo

import (
	"BookShelf/internal/model"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// InitDB открывает соединение с БД и прогоняет миграции моделей.
// postgres:// DSN — боевой вариант; любое другое значение трактуем как путь
// к файлу SQLite (cgo-free драйвер modernc).
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		dial = postgres.Open(dsn)
	} else {
		dial = gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
	}

	// TranslateError — чтобы нарушение уникального индекса приходило как
	// gorm.ErrDuplicatedKey, а не как сырая ошибка драйвера
	db, err := gorm.Open(dial, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&model.User{}, &model.Item{}); err != nil {
		return nil, err
	}

	return db, nil
}
