// Package storage отвечает за сохранение загруженных файлов на диск.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"
)

// URLPrefix — URL-префикс, под которым каталог загрузок раздаётся статикой.
// Он же попадает в Item.PDF как часть относительного пути.
const URLPrefix = "/uploads"

// FileStore — контракт сохранения одного загруженного файла.
type FileStore interface {
	// Save кладёт содержимое r в хранилище под именем, производным от
	// originalName, и возвращает относительный путь вида /uploads/<имя>.
	Save(originalName string, r io.Reader) (string, error)
}

// DiskStore пишет файлы в фиксированный локальный каталог.
type DiskStore struct {
	dir string
}

// NewDiskStore создаёт каталог загрузок, если его ещё нет.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save сохраняет файл под именем <unix-ms>-<исходное имя>.
// Коллизии имён принимаем как есть: миллисекундная метка плюс исходное имя
// в пределах одного процесса практически не повторяются.
func (d *DiskStore) Save(originalName string, r io.Reader) (string, error) {
	// отрезаем возможные компоненты пути из имени, присланного клиентом
	base := filepath.Base(filepath.Clean(originalName))
	if base == "." || base == string(filepath.Separator) {
		base = "file"
	}

	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), base)

	f, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return path.Join(URLPrefix, name), nil
}

// Dir возвращает каталог, в который пишутся файлы (для статической раздачи).
func (d *DiskStore) Dir() string {
	return d.dir
}

var _ FileStore = (*DiskStore)(nil)
