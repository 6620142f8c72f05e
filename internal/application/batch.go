package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/montanaflynn/stats"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"fwhr-bot/internal/domain/entity"
	"fwhr-bot/internal/domain/port"
)

// BatchItem результат по одному файлу
type BatchItem struct {
	Path   string
	Output *MeasurementOutput
	Err    error
}

// BatchSummary сводка по каталогу
type BatchSummary struct {
	Files    int
	Measured int
	Rejected int
	Failed   int
	Mean     float64
	Median   float64
	StdDev   float64
	Min      float64
	Max      float64
}

// BatchService считает FWHR для всех фото в каталоге параллельно.
type BatchService struct {
	source   port.ImageSource
	measurer *MeasurementService
	workers  int
	log      *logrus.Logger
}

func NewBatchService(source port.ImageSource, measurer *MeasurementService, workers int, log *logrus.Logger) *BatchService {
	if workers < 1 {
		workers = 1
	}
	return &BatchService{
		source:   source,
		measurer: measurer,
		workers:  workers,
		log:      log,
	}
}

// Run обходит root, пропускает не-изображения и возвращает результаты в порядке путей.
// Ошибки отдельных файлов попадают в BatchItem.Err и не прерывают обработку.
func (s *BatchService) Run(ctx context.Context, root string, opts entity.Options) ([]BatchItem, BatchSummary, error) {
	paths, err := s.source.List(root)
	if err != nil {
		return nil, BatchSummary{}, err
	}

	items := make([]BatchItem, len(paths))
	skipped := make([]bool, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			items[i].Path = path
			data, err := s.source.Read(gctx, path)
			if errors.Is(err, entity.ErrUnsupportedImage) {
				skipped[i] = true
				return nil
			}
			if err != nil {
				items[i].Err = err
				return nil
			}

			items[i].Output, items[i].Err = s.measurer.Measure(gctx, data, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, BatchSummary{}, fmt.Errorf("batch %s: %w", root, err)
	}

	result := make([]BatchItem, 0, len(items))
	for i, item := range items {
		if !skipped[i] {
			result = append(result, item)
		}
	}

	summary := summarize(result)
	s.log.WithFields(logrus.Fields{
		"root":     root,
		"files":    summary.Files,
		"measured": summary.Measured,
		"rejected": summary.Rejected,
		"failed":   summary.Failed,
	}).Info("fwhr: batch done")

	return result, summary, nil
}

func summarize(items []BatchItem) BatchSummary {
	summary := BatchSummary{Files: len(items)}

	var ratios stats.Float64Data
	for _, item := range items {
		switch {
		case item.Err != nil:
			summary.Failed++
		case item.Output.Result.HasRatio():
			summary.Measured++
			ratios = append(ratios, item.Output.Result.Ratio)
		default:
			summary.Rejected++
		}
	}

	if len(ratios) == 0 {
		return summary
	}

	summary.Mean, _ = stats.Mean(ratios)
	summary.Median, _ = stats.Median(ratios)
	summary.StdDev, _ = stats.StandardDeviation(ratios)
	summary.Min, _ = stats.Min(ratios)
	summary.Max, _ = stats.Max(ratios)

	return summary
}
