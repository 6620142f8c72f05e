//go:build !dlib
// +build !dlib

package vision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDlibLandmarks_Stub(t *testing.T) {
	p, err := NewDlibLandmarks("./models")
	require.NoError(t, err)
	defer p.Close()

	_, err = p.Landmarks(context.Background(), []byte("img"))
	require.True(t, errors.Is(err, ErrLandmarksDisabled))
}
