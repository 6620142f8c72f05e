//go:build dlib
// +build dlib

package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"sync"

	face "github.com/Kagami/go-face"
	"github.com/h2non/filetype"

	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/domain/port"
)

// DlibLandmarks ищет лица и 68 точек через dlib.
// В каталоге моделей предиктор формы должен быть 68-точечным.
type DlibLandmarks struct {
	mu  sync.Mutex
	rec *face.Recognizer
}

// NewDlibLandmarks загружает модели из каталога modelsDir
func NewDlibLandmarks(modelsDir string) (*DlibLandmarks, error) {
	rec, err := face.NewRecognizer(modelsDir)
	if err != nil {
		return nil, fmt.Errorf("init dlib recognizer: %w", err)
	}
	return &DlibLandmarks{rec: rec}, nil
}

// Landmarks возвращает точки всех найденных лиц.
func (d *DlibLandmarks) Landmarks(ctx context.Context, imageData []byte) ([]entity.LandmarkSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := asJPEG(imageData)
	if err != nil {
		return nil, err
	}

	// Recognizer не потокобезопасен
	d.mu.Lock()
	faces, err := d.rec.Recognize(data)
	d.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("recognize faces: %w", err)
	}

	sets := make([]entity.LandmarkSet, 0, len(faces))
	for i, f := range faces {
		set, err := entity.LandmarkSetFromImagePoints(f.Shapes)
		if err != nil {
			return nil, fmt.Errorf("face %d: 68-point shape predictor required: %w", i, err)
		}
		sets = append(sets, set)
	}

	return sets, nil
}

// Close освобождает модели dlib
func (d *DlibLandmarks) Close() error {
	d.rec.Close()
	return nil
}

// asJPEG dlib читает только JPEG, PNG перекодируем.
func asJPEG(imageData []byte) ([]byte, error) {
	if filetype.Is(imageData, "jpg") {
		return imageData, nil
	}
	if !filetype.Is(imageData, "png") {
		return nil, entity.ErrUnsupportedImage
	}

	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("decode png: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

var _ port.LandmarkProvider = (*DlibLandmarks)(nil)
