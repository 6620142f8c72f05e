package vision

import (
	"errors"
	"image"
	"math"

	"fwhr-bot/internal/domain/entity"
)

var (
	// ErrRendererDisabled сборка без OpenCV, рисовать нечем
	ErrRendererDisabled = errors.New("gocv build tag is not enabled")
	// ErrLandmarksDisabled сборка без dlib, искать точки нечем
	ErrLandmarksDisabled = errors.New("dlib build tag is not enabled")
)

// LineThickness толщина линии в зависимости от высоты картинки
func LineThickness(imageHeight int) int {
	return int(math.Ceil(float64(imageHeight) / 100))
}

// boxSegments четыре стороны прямоугольника в порядке отрисовки
func boxSegments(c entity.CornerSet) [4][2]image.Point {
	bl, tl := toImagePoint(c.BottomLeft), toImagePoint(c.TopLeft)
	br, tr := toImagePoint(c.BottomRight), toImagePoint(c.TopRight)
	return [4][2]image.Point{
		{bl, tl},
		{bl, br},
		{tl, tr},
		{tr, br},
	}
}

func toImagePoint(p entity.Point) image.Point {
	return image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
}
