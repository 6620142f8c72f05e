//go:build gocv
// +build gocv

package vision

import (
	"bytes"
	"errors"
	"image/color"
	"image/jpeg"

	"gocv.io/x/gocv"

	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/domain/port"
)

// GoCVRenderer рисует прямоугольник FWHR средствами OpenCV.
type GoCVRenderer struct {
	Color   color.RGBA
	Quality int
}

// NewGoCVRenderer создаёт рендерер с белыми линиями
func NewGoCVRenderer() *GoCVRenderer {
	return &GoCVRenderer{
		Color:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Quality: 90,
	}
}

// DrawBox рисует четыре стороны прямоугольника, толщина зависит от высоты картинки.
func (r *GoCVRenderer) DrawBox(imageData []byte, corners entity.CornerSet) ([]byte, error) {
	mat, err := decodeToMat(imageData)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	thickness := LineThickness(mat.Rows())
	if thickness < 1 {
		thickness = 1
	}
	for _, seg := range boxSegments(corners) {
		gocv.Line(&mat, seg[0], seg[1], r.Color, thickness)
	}

	img, err := mat.ToImage()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: r.Quality}); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// decodeToMat превращает байты изображения в gocv.Mat.
func decodeToMat(imageData []byte) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return mat, nil
	}
	if !mat.Empty() {
		mat.Close()
	}
	return gocv.NewMat(), errors.New("failed to decode image")
}

var _ port.BoxRenderer = (*GoCVRenderer)(nil)
