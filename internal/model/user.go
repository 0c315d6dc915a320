package model

import "time"

// User — учётная запись пользователя каталога.
// Создаётся при регистрации и дальше не изменяется.
type User struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"not null"`

	// Email уникален на уровне индекса: проверка "занят ли email" в сервисе
	// не транзакционна, гонку параллельных регистраций решает БД.
	Email    string `gorm:"not null;uniqueIndex"`
	Password string `gorm:"not null"` // bcrypt-хеш, никогда не plaintext

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
