//go:build !dlib
// +build !dlib

package vision

import (
	"context"

	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/domain/port"
)

type DlibLandmarks struct{}

// NewDlibLandmarks создаёт заглушку (без dlib).
func NewDlibLandmarks(modelsDir string) (*DlibLandmarks, error) {
	_ = modelsDir
	return &DlibLandmarks{}, nil
}

// Landmarks возвращает ошибку, если сборка без тега dlib.
func (d *DlibLandmarks) Landmarks(ctx context.Context, imageData []byte) ([]entity.LandmarkSet, error) {
	_ = ctx
	_ = imageData
	return nil, ErrLandmarksDisabled
}

func (d *DlibLandmarks) Close() error {
	return nil
}

var _ port.LandmarkProvider = (*DlibLandmarks)(nil)
