package port

import (
	"context"

	"fwhr-bot/internal/domain/entity"
)

// LandmarkProvider интерфейс поиска точек лица на изображении
type LandmarkProvider interface {
	// Landmarks возвращает наборы из 68 точек для всех найденных лиц (может быть пусто)
	Landmarks(ctx context.Context, imageData []byte) ([]entity.LandmarkSet, error)
}
