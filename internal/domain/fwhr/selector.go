// Package fwhr считает коэффициент ширины к высоте лица (FWHR) по 68 точкам.
package fwhr

import (
	"fmt"
	"math"

	"fwhr-bot/internal/domain/entity"
)

// eyelidShift поднимает линию с века к верхнему краю глазницы
const eyelidShift = 4

// SelectCorners строит прямоугольник FWHR по точкам лица.
//
// Ширина всегда берётся по краям лица (0 и 16), нижняя линия по верхней губе (50 и 52).
// Верхняя линия по бровям (18 и 25) или векам (37 и 43). При method left/right обе
// стороны прямоугольника получают высоты одной стороны лица, наклон не учитывается.
func SelectCorners(landmarks entity.LandmarkSet, method entity.Method, top entity.Top) (entity.CornerSet, error) {
	leftX := landmarks.At(entity.LeftFaceEdge).X
	rightX := landmarks.At(entity.RightFaceEdge).X

	var topLeft, topRight entity.Point
	switch top {
	case entity.TopEyebrow:
		topLeft = landmarks.At(entity.LeftEyebrowTop)
		topRight = landmarks.At(entity.RightEyebrowTop)
	case entity.TopEyelid:
		topLeft = landmarks.At(entity.LeftUpperEyelid)
		topRight = landmarks.At(entity.RightUpperEyelid)
	default:
		return entity.CornerSet{}, fmt.Errorf("%w: top %q, use either %q or %q",
			entity.ErrInvalidArgument, top, entity.TopEyebrow, entity.TopEyelid)
	}

	bottomLeft := landmarks.At(entity.UpperLipLeft)
	bottomRight := landmarks.At(entity.UpperLipRight)

	var topY, bottomY float64
	switch method {
	case entity.MethodLeft:
		topY, bottomY = topLeft.Y, bottomLeft.Y
	case entity.MethodRight:
		topY, bottomY = topRight.Y, bottomRight.Y
	default:
		topY = intAverage(topLeft.Y, topRight.Y)
		bottomY = intAverage(bottomLeft.Y, bottomRight.Y)
	}

	if top == entity.TopEyelid {
		topY -= eyelidShift
	}

	return entity.CornerSet{
		TopLeft:     entity.Point{X: leftX, Y: topY},
		TopRight:    entity.Point{X: rightX, Y: topY},
		BottomLeft:  entity.Point{X: leftX, Y: bottomY},
		BottomRight: entity.Point{X: rightX, Y: bottomY},
	}, nil
}

// intAverage среднее с отбрасыванием дробной части
func intAverage(a, b float64) float64 {
	return math.Trunc((a + b) / 2)
}
