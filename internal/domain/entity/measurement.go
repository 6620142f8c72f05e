package entity

// CornerSet четыре угла прямоугольника FWHR
type CornerSet struct {
	TopLeft     Point `json:"top_left"`
	TopRight    Point `json:"top_right"`
	BottomLeft  Point `json:"bottom_left"`
	BottomRight Point `json:"bottom_right"`
}

// Width ширина прямоугольника по верхней стороне
func (c CornerSet) Width() float64 {
	return c.TopRight.X - c.TopLeft.X
}

// Height высота прямоугольника по левой стороне
func (c CornerSet) Height() float64 {
	return c.BottomLeft.Y - c.TopLeft.Y
}

// QualityVerdict решение проверки позы вместе с исходными метриками.
type QualityVerdict struct {
	Accepted   bool    `json:"accepted"`
	EyeDif     float64 `json:"eye_dif"`     // разница высоты глаз (наклон головы)
	NoseDif    float64 `json:"nose_dif"`    // смещение носа по горизонтали (поворот)
	SpaceRatio float64 `json:"space_ratio"` // отношение отступов от края лица до глаз
}

// ResultStatus итог расчёта
type ResultStatus string

const (
	StatusMeasured ResultStatus = "measured" // коэффициент посчитан
	StatusRejected ResultStatus = "rejected" // фото не подходит для измерения
)

// Result результат расчёта FWHR для одного лица.
// При StatusRejected Ratio и Corners не заполняются.
type Result struct {
	Status  ResultStatus   `json:"status"`
	Ratio   float64        `json:"ratio,omitempty"`
	Corners CornerSet      `json:"corners"`
	Verdict QualityVerdict `json:"verdict"`
}

// HasRatio сообщает, есть ли в результате коэффициент
func (r Result) HasRatio() bool {
	return r.Status == StatusMeasured
}
