package model

import "time"

// Item — запись каталога: метаданные плюс ссылка на загруженный файл.
// После создания запись не изменяется.
type Item struct {
	ID string `gorm:"primaryKey;type:uuid"`

	Name         string `gorm:"not null"`
	Descriptions string

	// PDF — относительный путь вида /uploads/<имя>, по которому файл
	// раздаётся статикой.
	PDF string `gorm:"column:pdf"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
