package fwhr

import (
	"fmt"

	"fwhr-bot/internal/domain/entity"
)

// QualityGate проверяет, что лицо смотрит прямо в камеру.
type QualityGate struct {
	Thresholds entity.Thresholds
}

// NewQualityGate создаёт проверку с заданными порогами
func NewQualityGate(t entity.Thresholds) *QualityGate {
	return &QualityGate{Thresholds: t}
}

// Check считает метрики позы и сравнивает их с порогами.
// Сравнения знаковые и включают границу.
func (g *QualityGate) Check(p entity.LandmarkSet) (entity.QualityVerdict, error) {
	// масштаб под размер лица: сотая часть ширины
	widthIm := (p.At(entity.RightFaceEdge).X - p.At(entity.LeftFaceEdge).X) / 100
	if widthIm == 0 {
		return entity.QualityVerdict{}, fmt.Errorf("quality gate: face width is zero: %w", entity.ErrDivisionByZero)
	}

	eyeLeftY := (p.At(entity.LeftUpperEyelid).Y + p.At(entity.LeftLowerEyelid).Y) / 2
	eyeRightY := (p.At(entity.RightEyelidOuter).Y + p.At(entity.RightLowerEyelid).Y) / 2
	eyeDif := (eyeRightY - eyeLeftY) / widthIm

	noseDif := (p.At(entity.NoseTip).X - p.At(entity.NoseBridgeTop).X) / widthIm

	leftSpace := p.At(entity.LeftEyeOuter).X - p.At(entity.LeftFaceEdge).X
	rightSpace := p.At(entity.RightFaceEdge).X - p.At(entity.RightEyeOuter).X
	if rightSpace == 0 {
		return entity.QualityVerdict{}, fmt.Errorf("quality gate: right eye margin is zero: %w", entity.ErrDivisionByZero)
	}
	spaceRatio := leftSpace / rightSpace

	return entity.QualityVerdict{
		Accepted: eyeDif <= g.Thresholds.MaxEyeDif &&
			noseDif <= g.Thresholds.MaxNoseDif &&
			spaceRatio <= g.Thresholds.MaxSpaceRatio,
		EyeDif:     eyeDif,
		NoseDif:    noseDif,
		SpaceRatio: spaceRatio,
	}, nil
}
