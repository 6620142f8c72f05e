package source

import (
	"context"
	"fmt"

	"github.com/karrick/godirwalk"

	"fwhr-bot/internal/domain/port"
)

// List обходит каталог и возвращает обычные файлы в лексикографическом порядке.
func (l *Loader) List(root string) ([]string, error) {
	var files []string
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(osPathname string, de *godirwalk.Dirent) error {
			if de.IsRegular() {
				files = append(files, osPathname)
			}
			return nil
		},
		Unsorted: false,
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return files, nil
}

// Read загружает фото и отдаёт только содержимое
func (l *Loader) Read(ctx context.Context, location string) ([]byte, error) {
	img, err := l.Load(ctx, location)
	if err != nil {
		return nil, err
	}
	return img.Data, nil
}

var _ port.ImageSource = (*Loader)(nil)
