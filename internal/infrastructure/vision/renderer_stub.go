//go:build !gocv
// +build !gocv

package vision

import (
	"image/color"

	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/domain/port"
)

type GoCVRenderer struct {
	Color   color.RGBA
	Quality int
}

// NewGoCVRenderer создаёт рендерер-заглушку (без OpenCV).
func NewGoCVRenderer() *GoCVRenderer {
	return &GoCVRenderer{
		Color:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Quality: 90,
	}
}

// DrawBox возвращает ошибку, если сборка без тега gocv.
func (r *GoCVRenderer) DrawBox(imageData []byte, corners entity.CornerSet) ([]byte, error) {
	_ = imageData
	_ = corners
	return nil, ErrRendererDisabled
}

var _ port.BoxRenderer = (*GoCVRenderer)(nil)
