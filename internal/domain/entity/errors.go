package entity

import "errors"

var (
	// ErrInvalidArgument неизвестное значение параметра (например, top)
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNoFaceDetected на изображении не найдено ни одного лица
	ErrNoFaceDetected = errors.New("no face detected")
	// ErrDivisionByZero вырожденная геометрия точек
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidLandmarkCount в наборе не 68 точек
	ErrInvalidLandmarkCount = errors.New("invalid landmark count")
	// ErrUnsupportedImage формат изображения не JPEG и не PNG
	ErrUnsupportedImage = errors.New("unsupported image type")
)
