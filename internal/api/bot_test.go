package telegram

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	app "fwhr-bot/internal/application"
	"fwhr-bot/internal/domain/entity"
)

func TestFormatResult(t *testing.T) {
	t.Run("measured", func(t *testing.T) {
		out := &app.MeasurementOutput{
			Faces:  1,
			Result: entity.Result{Status: entity.StatusMeasured, Ratio: 2.857142},
		}
		require.Equal(t, "📏 FWHR: 2.857", formatResult(out))
	})

	t.Run("several faces", func(t *testing.T) {
		out := &app.MeasurementOutput{
			Faces:  3,
			Result: entity.Result{Status: entity.StatusMeasured, Ratio: 2},
		}
		text := formatResult(out)
		require.Contains(t, text, "2.000")
		require.Contains(t, text, "Найдено лиц: 3")
	})

	t.Run("rejected", func(t *testing.T) {
		out := &app.MeasurementOutput{
			Faces: 1,
			Result: entity.Result{
				Status:  entity.StatusRejected,
				Verdict: entity.QualityVerdict{EyeDif: 1, NoseDif: 0, SpaceRatio: 10},
			},
		}
		text := formatResult(out)
		require.Contains(t, text, "🚫")
		require.Contains(t, text, "отступы: 10.00")
		require.NotContains(t, text, "FWHR:")
	})
}

func TestFormatSettings(t *testing.T) {
	text := formatSettings(entity.Options{Method: entity.MethodLeft, Top: entity.TopEyelid})
	require.Contains(t, text, "left")
	require.Contains(t, text, "eyelid")
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"no face", entity.ErrNoFaceDetected, msgNoFace},
		{"no face wrapped", fmt.Errorf("measure: %w", entity.ErrNoFaceDetected), msgNoFace},
		{"no photo", app.ErrNoPhoto, msgNoPhoto},
		{"invalid top", entity.ErrInvalidArgument, msgBadTop},
		{"degenerate geometry", entity.ErrDivisionByZero, msgProcessingError},
		{"other", errors.New("boom"), msgProcessingError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, errorMessage(tt.err))
		})
	}
}
