package entity

import (
	"fmt"
	"strings"
)

// Method способ выбора верхней и нижней линии
type Method string

const (
	MethodLeft    Method = "left"    // только левая сторона лица
	MethodRight   Method = "right"   // только правая сторона лица
	MethodAverage Method = "average" // среднее двух сторон, гасит небольшой наклон
)

// ParseMethod разбирает способ; всё кроме left/right считается average.
func ParseMethod(s string) Method {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodLeft:
		return MethodLeft
	case MethodRight:
		return MethodRight
	default:
		return MethodAverage
	}
}

// Top опорная точка верхней линии
type Top string

const (
	TopEyebrow Top = "eyebrow" // нижний край бровей
	TopEyelid  Top = "eyelid"  // верхнее веко
)

// ParseTop разбирает опорную точку; неизвестное значение это ErrInvalidArgument.
func ParseTop(s string) (Top, error) {
	switch t := Top(strings.ToLower(strings.TrimSpace(s))); t {
	case TopEyebrow, TopEyelid:
		return t, nil
	default:
		return "", fmt.Errorf("%w: top %q, use either %q or %q", ErrInvalidArgument, s, TopEyebrow, TopEyelid)
	}
}

// Options параметры построения прямоугольника
type Options struct {
	Method Method `json:"method"`
	Top    Top    `json:"top"`
	Mirror bool   `json:"mirror,omitempty"` // отразить точки перед расчётом (зеркальное селфи)
}

// DefaultOptions average + eyebrow
func DefaultOptions() Options {
	return Options{
		Method: MethodAverage,
		Top:    TopEyebrow,
	}
}

// Thresholds пороги проверки позы. Подобраны эмпирически на неудачных фото.
type Thresholds struct {
	MaxEyeDif     float64
	MaxNoseDif    float64
	MaxSpaceRatio float64
}

// DefaultThresholds 5 / 3.5 / 3
func DefaultThresholds() Thresholds {
	return Thresholds{
		MaxEyeDif:     5,
		MaxNoseDif:    3.5,
		MaxSpaceRatio: 3,
	}
}
