package fwhr

import (
	"fwhr-bot/internal/domain/entity"
)

// Pipeline связывает проверку позы, выбор точек и расчёт коэффициента.
// Состояния между вызовами не хранит, безопасен для параллельного использования.
type Pipeline struct {
	gate *QualityGate
}

// NewPipeline создаёт конвейер с заданными порогами проверки
func NewPipeline(t entity.Thresholds) *Pipeline {
	return &Pipeline{gate: NewQualityGate(t)}
}

// Run считает FWHR для одного лица.
// Отбракованное фото это StatusRejected без ошибки.
func (p *Pipeline) Run(landmarks entity.LandmarkSet, opts entity.Options) (entity.Result, error) {
	if opts.Mirror {
		landmarks = landmarks.Mirror()
	}

	verdict, err := p.gate.Check(landmarks)
	if err != nil {
		return entity.Result{}, err
	}
	if !verdict.Accepted {
		return entity.Result{Status: entity.StatusRejected, Verdict: verdict}, nil
	}

	corners, err := SelectCorners(landmarks, opts.Method, opts.Top)
	if err != nil {
		return entity.Result{}, err
	}

	ratio, err := ComputeRatio(corners)
	if err != nil {
		return entity.Result{}, err
	}

	return entity.Result{
		Status:  entity.StatusMeasured,
		Ratio:   ratio,
		Corners: corners,
		Verdict: verdict,
	}, nil
}
