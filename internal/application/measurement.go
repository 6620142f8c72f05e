package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/domain/fwhr"
	"fwhr-bot/internal/domain/port"
)

// ErrNoPhoto у пользователя нет недавнего фото для повторного расчёта
var ErrNoPhoto = errors.New("no recent photo")

type MeasurementService struct {
	users    *UserService
	provider port.LandmarkProvider
	renderer port.BoxRenderer
	pipeline *fwhr.Pipeline
	photos   *cache.Cache
	log      *logrus.Logger
}

// MeasurementOutput содержит результат расчёта и картинку с прямоугольником.
type MeasurementOutput struct {
	ID          string
	Faces       int                  // сколько лиц нашёл детектор, считается первое
	Landmarks   []entity.LandmarkSet // точки всех найденных лиц
	Result      entity.Result
	Highlighted []byte
}

// NewMeasurementService создаёт сервис расчёта FWHR.
// provider и renderer могут быть nil: тогда доступен только расчёт по готовым точкам.
func NewMeasurementService(
	users *UserService,
	provider port.LandmarkProvider,
	renderer port.BoxRenderer,
	pipeline *fwhr.Pipeline,
	photoTTL time.Duration,
	log *logrus.Logger,
) *MeasurementService {
	return &MeasurementService{
		users:    users,
		provider: provider,
		renderer: renderer,
		pipeline: pipeline,
		photos:   cache.New(photoTTL, 2*photoTTL),
		log:      log,
	}
}

// MeasureLandmarks считает FWHR по готовому набору точек.
func (s *MeasurementService) MeasureLandmarks(landmarks entity.LandmarkSet, opts entity.Options) (*MeasurementOutput, error) {
	out := &MeasurementOutput{ID: uuid.NewString(), Faces: 1, Landmarks: []entity.LandmarkSet{landmarks}}

	result, err := s.pipeline.Run(landmarks, opts)
	if err != nil {
		s.log.WithFields(logrus.Fields{"id": out.ID, "error": err}).Warn("fwhr: measurement failed")
		return nil, err
	}
	out.Result = result

	s.log.WithFields(logrus.Fields{
		"id":          out.ID,
		"status":      result.Status,
		"ratio":       result.Ratio,
		"method":      opts.Method,
		"top":         opts.Top,
		"eye_dif":     result.Verdict.EyeDif,
		"nose_dif":    result.Verdict.NoseDif,
		"space_ratio": result.Verdict.SpaceRatio,
	}).Debug("fwhr: measured")

	return out, nil
}

// Measure ищет лица на фото, считает FWHR по первому и рисует прямоугольник.
func (s *MeasurementService) Measure(ctx context.Context, photo []byte, opts entity.Options) (*MeasurementOutput, error) {
	if s.provider == nil {
		return nil, errors.New("landmark provider is not configured")
	}

	faces, err := s.provider.Landmarks(ctx, photo)
	if err != nil {
		return nil, fmt.Errorf("find landmarks: %w", err)
	}
	if len(faces) == 0 {
		return nil, entity.ErrNoFaceDetected
	}

	out, err := s.MeasureLandmarks(faces[0], opts)
	if err != nil {
		return nil, err
	}
	out.Faces = len(faces)
	out.Landmarks = faces

	if out.Result.HasRatio() && s.renderer != nil {
		highlighted, err := s.renderer.DrawBox(photo, out.Result.Corners)
		if err != nil {
			s.log.WithFields(logrus.Fields{"id": out.ID, "error": err}).Warn("fwhr: draw box skipped")
		} else {
			out.Highlighted = highlighted
		}
	}

	return out, nil
}

// AcceptPhoto запоминает фото пользователя и считает FWHR с его настройками.
func (s *MeasurementService) AcceptPhoto(ctx context.Context, userID, chatID int64, photo []byte) (*MeasurementOutput, error) {
	s.photos.Set(photoKey(userID), photo, cache.DefaultExpiration)
	s.log.WithFields(logrus.Fields{"user_id": userID, "size": humanize.Bytes(uint64(len(photo)))}).Info("fwhr: photo received")

	return s.measureFor(ctx, userID, chatID, photo)
}

// Remeasure повторяет расчёт по последнему фото, например после смены настроек.
func (s *MeasurementService) Remeasure(ctx context.Context, userID, chatID int64) (*MeasurementOutput, error) {
	cached, ok := s.photos.Get(photoKey(userID))
	if !ok {
		return nil, ErrNoPhoto
	}

	return s.measureFor(ctx, userID, chatID, cached.([]byte))
}

func (s *MeasurementService) measureFor(ctx context.Context, userID, chatID int64, photo []byte) (*MeasurementOutput, error) {
	user, err := s.users.SetState(ctx, userID, chatID, entity.StateProcessing)
	if err != nil {
		return nil, err
	}

	out, measureErr := s.Measure(ctx, photo, user.Settings)

	// В любом случае возвращаем пользователя в главное меню
	if _, err := s.users.SetState(ctx, userID, chatID, entity.StateMainMenu); err != nil {
		return nil, err
	}

	return out, measureErr
}

func photoKey(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
