package container

import (
	"time"

	"github.com/sirupsen/logrus"

	app "fwhr-bot/internal/application"
	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/domain/fwhr"
	"fwhr-bot/internal/domain/port"
)

type Container struct {
	UserService        *app.UserService
	MeasurementService *app.MeasurementService
	BatchService       *app.BatchService
}

// Deps внешние зависимости; provider, renderer и source могут быть nil
type Deps struct {
	Users      port.UserRepository
	Provider   port.LandmarkProvider
	Renderer   port.BoxRenderer
	Source     port.ImageSource
	Thresholds entity.Thresholds
	PhotoTTL   time.Duration
	Workers    int
	Logger     *logrus.Logger
}

func New(d Deps) *Container {
	userService := app.NewUserService(d.Users)
	measurementService := app.NewMeasurementService(
		userService,
		d.Provider,
		d.Renderer,
		fwhr.NewPipeline(d.Thresholds),
		d.PhotoTTL,
		d.Logger,
	)

	c := &Container{
		UserService:        userService,
		MeasurementService: measurementService,
	}
	if d.Source != nil {
		c.BatchService = app.NewBatchService(d.Source, measurementService, d.Workers, d.Logger)
	}

	return c
}
