package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli"

	"fwhr-bot/config"
	"fwhr-bot/internal/container"
	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/infrastructure/landmarks"
	"fwhr-bot/internal/infrastructure/source"
	"fwhr-bot/internal/infrastructure/storage"
	"fwhr-bot/internal/infrastructure/vision"
	"fwhr-bot/pkg/log"
)

// LandmarksCommand считает FWHR по точкам из JSON-файла.
var LandmarksCommand = cli.Command{
	Name:      "landmarks",
	Usage:     "Measure FWHR from a landmarks JSON file (- for stdin)",
	ArgsUsage: "<file.json>",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "print pose check metrics",
		},
	},
	Action: landmarksAction,
}

// ImageCommand находит точки на фото и считает FWHR.
var ImageCommand = cli.Command{
	Name:      "image",
	Usage:     "Measure FWHR on a photo from disk or URL",
	ArgsUsage: "<path|url>",
	Flags: []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "print pose check metrics",
		},
		cli.StringFlag{
			Name:  "out, o",
			Usage: "write the photo with the FWHR box to `FILE`",
		},
		cli.StringFlag{
			Name:  "dump",
			Usage: "write detected landmarks as JSON to `FILE`",
		},
	},
	Action: imageAction,
}

// BatchCommand считает FWHR для всех фото в каталоге.
var BatchCommand = cli.Command{
	Name:      "batch",
	Usage:     "Measure FWHR for every JPEG/PNG photo under a directory",
	ArgsUsage: "<dir>",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:   "workers, w",
			Usage:  "number of photos processed in parallel",
			EnvVar: "BATCH_WORKERS",
		},
	},
	Action: batchAction,
}

func landmarksAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("usage: fwhr landmarks <file.json>", 2)
	}

	opts, err := measureOptions(ctx)
	if err != nil {
		return err
	}

	sets, err := readLandmarks(ctx.Args().First())
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		return entity.ErrNoFaceDetected
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	c, err := newContainer(ctx, cfg, nil)
	if err != nil {
		return err
	}

	out, err := c.MeasurementService.MeasureLandmarks(sets[0], opts)
	if err != nil {
		return err
	}
	out.Faces = len(sets)

	printResult(ctx.App.Writer, ctx.Args().First(), out, ctx.Bool("debug"))
	return nil
}

func imageAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("usage: fwhr image <path|url>", 2)
	}

	opts, err := measureOptions(ctx)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	provider, err := vision.NewDlibLandmarks(cfg.ModelsDir)
	if err != nil {
		return err
	}
	defer provider.Close()

	c, err := newContainer(ctx, cfg, provider)
	if err != nil {
		return err
	}

	location := ctx.Args().First()
	runCtx, stop := interruptContext()
	defer stop()

	img, err := source.NewLoader(nil).Load(runCtx, location)
	if err != nil {
		return err
	}

	out, err := c.MeasurementService.Measure(runCtx, img.Data, opts)
	if err != nil {
		return err
	}

	if dump := ctx.String("dump"); dump != "" {
		if err := dumpLandmarks(out.Landmarks, dump); err != nil {
			return err
		}
	}

	printResult(ctx.App.Writer, img.Name, out, ctx.Bool("debug"))

	if path := ctx.String("out"); path != "" {
		if len(out.Highlighted) == 0 {
			return cli.NewExitError("no box drawn: photo rejected or renderer unavailable", 1)
		}
		if err := os.WriteFile(path, out.Highlighted, 0o644); err != nil {
			return err
		}
	}

	return nil
}

func batchAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return cli.NewExitError("usage: fwhr batch <dir>", 2)
	}

	opts, err := measureOptions(ctx)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	provider, err := vision.NewDlibLandmarks(cfg.ModelsDir)
	if err != nil {
		return err
	}
	defer provider.Close()

	c, err := newContainer(ctx, cfg, provider)
	if err != nil {
		return err
	}

	runCtx, stop := interruptContext()
	defer stop()

	items, summary, err := c.BatchService.Run(runCtx, ctx.Args().First(), opts)
	if err != nil {
		return err
	}

	printBatch(ctx.App.Writer, items, summary)
	return nil
}

// interruptContext отменяется по Ctrl-C или SIGTERM
func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// measureOptions собирает параметры расчёта из глобальных флагов
func measureOptions(ctx *cli.Context) (entity.Options, error) {
	top, err := entity.ParseTop(ctx.GlobalString("top"))
	if err != nil {
		return entity.Options{}, cli.NewExitError(err.Error(), 2)
	}

	return entity.Options{
		Method: entity.ParseMethod(ctx.GlobalString("method")),
		Top:    top,
		Mirror: ctx.GlobalBool("mirror"),
	}, nil
}

// newContainer собирает сервисы для одной команды CLI
func newContainer(ctx *cli.Context, cfg *config.Config, provider *vision.DlibLandmarks) (*container.Container, error) {
	logger, err := log.NewLogger(log.Options{Level: ctx.GlobalString("log-level"), File: cfg.LogFile})
	if err != nil {
		return nil, err
	}

	workers := cfg.BatchWorkers
	if ctx.IsSet("workers") {
		workers = ctx.Int("workers")
	}

	deps := container.Deps{
		Users:      storage.NewMemoryUserRepository(cfg.Options()),
		Renderer:   vision.NewGoCVRenderer(),
		Source:     source.NewLoader(nil),
		Thresholds: cfg.Thresholds(),
		PhotoTTL:   cfg.PhotoCacheTTL,
		Workers:    workers,
		Logger:     logger,
	}
	if provider != nil {
		deps.Provider = provider
	}

	return container.New(deps), nil
}

func readLandmarks(path string) ([]entity.LandmarkSet, error) {
	if path == "-" {
		return landmarks.Decode(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return landmarks.Decode(f)
}

func dumpLandmarks(sets []entity.LandmarkSet, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return landmarks.Encode(f, sets)
}
