package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"fwhr-bot/internal/domain/entity"
)

func TestLineThickness(t *testing.T) {
	require.Equal(t, 0, LineThickness(0))
	require.Equal(t, 1, LineThickness(99))
	require.Equal(t, 1, LineThickness(100))
	require.Equal(t, 2, LineThickness(101))
	require.Equal(t, 11, LineThickness(1080))
}

func TestBoxSegments(t *testing.T) {
	segs := boxSegments(entity.CornerSet{
		TopLeft:     entity.Pt(100, 251),
		TopRight:    entity.Pt(300, 251),
		BottomLeft:  entity.Pt(100, 321),
		BottomRight: entity.Point{X: 299.6, Y: 321},
	})

	require.Equal(t, [2]image.Point{image.Pt(100, 321), image.Pt(100, 251)}, segs[0])
	require.Equal(t, [2]image.Point{image.Pt(100, 321), image.Pt(300, 321)}, segs[1])
	require.Equal(t, [2]image.Point{image.Pt(100, 251), image.Pt(300, 251)}, segs[2])
	require.Equal(t, [2]image.Point{image.Pt(300, 251), image.Pt(300, 321)}, segs[3])
}
