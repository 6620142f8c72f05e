package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/domain/fwhr"
	"fwhr-bot/internal/domain/port"
	"fwhr-bot/internal/infrastructure/storage"
	"fwhr-bot/pkg/log"
)

func newMeasurementService(provider *fakeProvider, renderer *fakeRenderer) (*MeasurementService, *UserService) {
	var r port.BoxRenderer
	if renderer != nil {
		r = renderer
	}
	users := NewUserService(storage.NewMemoryUserRepository(entity.DefaultOptions()))
	svc := NewMeasurementService(users, provider, r, fwhr.NewPipeline(entity.DefaultThresholds()), time.Minute, log.Discard())
	return svc, users
}

func TestMeasurementService_Measure(t *testing.T) {
	provider := &fakeProvider{faces: map[string][]entity.LandmarkSet{
		"two": {frontalFace(), turnedFace()},
	}}
	renderer := &fakeRenderer{}
	svc, _ := newMeasurementService(provider, renderer)

	out, err := svc.Measure(context.Background(), []byte("two"), entity.DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, out.ID)
	require.Equal(t, 2, out.Faces)
	require.Equal(t, []entity.LandmarkSet{frontalFace(), turnedFace()}, out.Landmarks)
	require.EqualValues(t, 1, provider.calls.Load())
	require.True(t, out.Result.HasRatio())
	require.InDelta(t, 200.0/70.0, out.Result.Ratio, 1e-12)
	require.Equal(t, "two+box(251,321)", string(out.Highlighted))
}

func TestMeasurementService_Rejected(t *testing.T) {
	provider := &fakeProvider{faces: map[string][]entity.LandmarkSet{
		"turned": {turnedFace()},
	}}
	renderer := &fakeRenderer{}
	svc, _ := newMeasurementService(provider, renderer)

	out, err := svc.Measure(context.Background(), []byte("turned"), entity.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, entity.StatusRejected, out.Result.Status)
	require.Nil(t, out.Highlighted)
	require.Zero(t, renderer.calls)
}

func TestMeasurementService_NoFace(t *testing.T) {
	provider := &fakeProvider{faces: map[string][]entity.LandmarkSet{"empty": nil}}
	svc, _ := newMeasurementService(provider, &fakeRenderer{})

	_, err := svc.Measure(context.Background(), []byte("empty"), entity.DefaultOptions())
	require.True(t, errors.Is(err, entity.ErrNoFaceDetected))

	_, err = svc.Measure(context.Background(), []byte("broken"), entity.DefaultOptions())
	require.Error(t, err)
}

func TestMeasurementService_RendererFailureIsNotFatal(t *testing.T) {
	provider := &fakeProvider{faces: map[string][]entity.LandmarkSet{"one": {frontalFace()}}}
	svc, _ := newMeasurementService(provider, &fakeRenderer{err: errors.New("no opencv")})

	out, err := svc.Measure(context.Background(), []byte("one"), entity.DefaultOptions())
	require.NoError(t, err)
	require.True(t, out.Result.HasRatio())
	require.Nil(t, out.Highlighted)
}

func TestMeasurementService_WithoutProvider(t *testing.T) {
	users := NewUserService(storage.NewMemoryUserRepository(entity.DefaultOptions()))
	svc := NewMeasurementService(users, nil, nil, fwhr.NewPipeline(entity.DefaultThresholds()), time.Minute, log.Discard())

	_, err := svc.Measure(context.Background(), []byte("one"), entity.DefaultOptions())
	require.Error(t, err)

	out, err := svc.MeasureLandmarks(frontalFace(), entity.Options{Method: entity.MethodLeft, Top: entity.TopEyebrow})
	require.NoError(t, err)
	require.InDelta(t, 200.0/70.0, out.Result.Ratio, 1e-12)
}

func TestMeasurementService_AcceptPhotoAndRemeasure(t *testing.T) {
	provider := &fakeProvider{faces: map[string][]entity.LandmarkSet{"one": {frontalFace()}}}
	svc, users := newMeasurementService(provider, &fakeRenderer{})
	ctx := context.Background()

	_, err := svc.Remeasure(ctx, 1, 10)
	require.True(t, errors.Is(err, ErrNoPhoto))

	out, err := svc.AcceptPhoto(ctx, 1, 10, []byte("one"))
	require.NoError(t, err)
	require.InDelta(t, 200.0/70.0, out.Result.Ratio, 1e-12)

	user, err := users.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)

	_, err = users.SetTop(ctx, 1, 10, "eyelid")
	require.NoError(t, err)

	out, err = svc.Remeasure(ctx, 1, 10)
	require.NoError(t, err)
	require.InDelta(t, 200.0/60.0, out.Result.Ratio, 1e-12)
}

func TestMeasurementService_StateResetOnError(t *testing.T) {
	provider := &fakeProvider{faces: map[string][]entity.LandmarkSet{}}
	svc, users := newMeasurementService(provider, &fakeRenderer{})
	ctx := context.Background()

	_, err := svc.AcceptPhoto(ctx, 5, 50, []byte("unknown"))
	require.Error(t, err)

	user, err := users.Get(ctx, 5, 50)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
}
