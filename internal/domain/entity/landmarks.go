package entity

import (
	"fmt"
	"image"
)

// LandmarkCount количество точек в разметке iBUG 300-W
const LandmarkCount = 68

// LandmarkIndex позиция точки в наборе из 68 точек (схема iBUG 300-W)
type LandmarkIndex int

const (
	LeftFaceEdge  LandmarkIndex = 0  // левый край лица (контур челюсти)
	RightFaceEdge LandmarkIndex = 16 // правый край лица

	LeftEyebrowTop  LandmarkIndex = 18 // левая бровь
	RightEyebrowTop LandmarkIndex = 25 // правая бровь

	NoseBridgeTop LandmarkIndex = 27 // переносица
	NoseTip       LandmarkIndex = 30 // кончик носа

	LeftEyeOuter     LandmarkIndex = 36 // внешний угол левого глаза
	LeftUpperEyelid  LandmarkIndex = 37 // верхнее веко левого глаза
	LeftLowerEyelid  LandmarkIndex = 41 // нижнее веко левого глаза
	RightUpperEyelid LandmarkIndex = 43 // верхнее веко правого глаза (внутренняя точка)
	RightEyelidOuter LandmarkIndex = 44 // верхнее веко правого глаза (внешняя точка)
	RightEyeOuter    LandmarkIndex = 45 // внешний угол правого глаза
	RightLowerEyelid LandmarkIndex = 46 // нижнее веко правого глаза

	UpperLipLeft  LandmarkIndex = 50 // верхняя губа слева от середины
	UpperLipRight LandmarkIndex = 52 // верхняя губа справа от середины
)

// Point точка на изображении в пикселях
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt создаёт точку из целых координат
func Pt(x, y int) Point {
	return Point{X: float64(x), Y: float64(y)}
}

// LandmarkSet упорядоченный набор из 68 точек одного лица.
// Позиция точки имеет анатомический смысл, порядок менять нельзя.
type LandmarkSet [LandmarkCount]Point

// NewLandmarkSet собирает набор из среза точек ровно нужной длины.
func NewLandmarkSet(points []Point) (LandmarkSet, error) {
	var set LandmarkSet
	if len(points) != LandmarkCount {
		return set, fmt.Errorf("%w: got %d points, want %d", ErrInvalidLandmarkCount, len(points), LandmarkCount)
	}
	copy(set[:], points)
	return set, nil
}

// LandmarkSetFromImagePoints конвертирует точки детектора в LandmarkSet.
func LandmarkSetFromImagePoints(points []image.Point) (LandmarkSet, error) {
	converted := make([]Point, len(points))
	for i, p := range points {
		converted[i] = Pt(p.X, p.Y)
	}
	return NewLandmarkSet(converted)
}

// At возвращает точку по анатомическому индексу
func (l LandmarkSet) At(i LandmarkIndex) Point {
	return l[i]
}

// mirrorIndex пары симметричных точек схемы iBUG 300-W
var mirrorIndex = func() [LandmarkCount]int {
	var m [LandmarkCount]int
	for i := range m {
		m[i] = i
	}
	pairs := [][2]int{
		// челюсть
		{0, 16}, {1, 15}, {2, 14}, {3, 13}, {4, 12}, {5, 11}, {6, 10}, {7, 9},
		// брови
		{17, 26}, {18, 25}, {19, 24}, {20, 23}, {21, 22},
		// ноздри
		{31, 35}, {32, 34},
		// глаза
		{36, 45}, {37, 44}, {38, 43}, {39, 42}, {40, 47}, {41, 46},
		// внешний контур губ
		{48, 54}, {49, 53}, {50, 52}, {55, 59}, {56, 58},
		// внутренний контур губ
		{60, 64}, {61, 63}, {65, 67},
	}
	for _, p := range pairs {
		m[p[0]], m[p[1]] = p[1], p[0]
	}
	return m
}()

// Mirror отражает набор слева направо относительно середины лица.
// Нужен для селфи, которые камера сохраняет зеркально.
func (l LandmarkSet) Mirror() LandmarkSet {
	axis := l[LeftFaceEdge].X + l[RightFaceEdge].X
	var out LandmarkSet
	for i, p := range l {
		out[mirrorIndex[i]] = Point{X: axis - p.X, Y: p.Y}
	}
	return out
}
