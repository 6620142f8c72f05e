package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUser_DefaultState(t *testing.T) {
	u := NewUser(1, 10, DefaultOptions())
	require.Equal(t, StateMainMenu, u.State)
	require.Equal(t, int64(1), u.ID)
	require.Equal(t, int64(10), u.ChatID)
	require.Equal(t, MethodAverage, u.Settings.Method)
	require.Equal(t, TopEyebrow, u.Settings.Top)
}

func TestUser_ChangeSettings(t *testing.T) {
	u := NewUser(1, 10, DefaultOptions())
	u.SetMethod(MethodRight)
	u.SetTop(TopEyelid)
	require.Equal(t, Options{Method: MethodRight, Top: TopEyelid}, u.Settings)
}
