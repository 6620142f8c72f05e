package port

import "context"

// ImageSource интерфейс источника фото для пакетной обработки
type ImageSource interface {
	// List возвращает пути всех файлов внутри root
	List(root string) ([]string, error)

	// Read загружает фото; не JPEG/PNG это entity.ErrUnsupportedImage
	Read(ctx context.Context, location string) ([]byte, error)
}
