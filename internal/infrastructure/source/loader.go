// Package source загружает фото с диска или по ссылке.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/h2non/filetype"

	"fwhr-bot/internal/domain/entity"
)

// MaxImageSize ограничение на размер загружаемого фото
const MaxImageSize = 20 << 20

// Image загруженное фото
type Image struct {
	Name string
	MIME string
	Data []byte
}

// Loader читает фото из файла или скачивает по HTTP(S).
type Loader struct {
	client *http.Client
}

// NewLoader создаёт загрузчик; nil client заменяется клиентом с таймаутом 30 секунд
func NewLoader(client *http.Client) *Loader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Loader{client: client}
}

// IsURL сообщает, что location это ссылка, а не путь
func IsURL(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

// Load загружает фото по пути или ссылке и проверяет, что это JPEG или PNG.
func (l *Loader) Load(ctx context.Context, location string) (*Image, error) {
	var (
		data []byte
		err  error
	)
	if IsURL(location) {
		data, err = l.Fetch(ctx, location)
	} else {
		data, err = readFile(location)
	}
	if err != nil {
		return nil, err
	}

	mime, err := Sniff(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}

	return &Image{
		Name: filepath.Base(location),
		MIME: mime,
		Data: data,
	}, nil
}

// Fetch скачивает тело ответа по ссылке
func (l *Loader) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if len(data) > MaxImageSize {
		return nil, fmt.Errorf("download file: larger than %d bytes", MaxImageSize)
	}

	return data, nil
}

// Sniff определяет тип по содержимому; допускаются только JPEG и PNG.
func Sniff(data []byte) (string, error) {
	kind, err := filetype.Match(data)
	if err != nil {
		return "", fmt.Errorf("detect type: %w", err)
	}

	switch kind.MIME.Value {
	case "image/jpeg", "image/png":
		return kind.MIME.Value, nil
	default:
		return "", entity.ErrUnsupportedImage
	}
}

// IsImage быстрая проверка для обхода каталогов
func IsImage(data []byte) bool {
	_, err := Sniff(data)
	return err == nil
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	if info.Size() > MaxImageSize {
		return nil, fmt.Errorf("open image: %s larger than %d bytes", path, MaxImageSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	return data, nil
}
