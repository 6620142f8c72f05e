package port

import "fwhr-bot/internal/domain/entity"

// BoxRenderer интерфейс отрисовки прямоугольника FWHR
type BoxRenderer interface {
	// DrawBox рисует прямоугольник по углам и возвращает новую картинку в JPEG
	DrawBox(imageData []byte, corners entity.CornerSet) ([]byte, error)
}
