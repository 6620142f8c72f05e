package fwhr

import (
	"fmt"

	"fwhr-bot/internal/domain/entity"
)

// ComputeRatio возвращает ширину, делённую на высоту прямоугольника.
func ComputeRatio(c entity.CornerSet) (float64, error) {
	height := c.Height()
	if height == 0 {
		return 0, fmt.Errorf("ratio: box height is zero: %w", entity.ErrDivisionByZero)
	}
	return c.Width() / height, nil
}
