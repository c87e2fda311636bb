package services

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"time"

	"github.com/adampresley/slowgallery/pkg/models"
	"github.com/alitto/pond/v2"
)

type LoadOutcome string

const (
	OutcomeOK       LoadOutcome = "ok"
	OutcomeNotAList LoadOutcome = "not_a_list"
	OutcomeError    LoadOutcome = "error"
)

/*
LoadResult is what the gallery is rendered from. Photos is never nil, and
Loading is false on every result Load returns.
*/
type LoadResult struct {
	Photos  []models.Photo
	Loading bool
	Outcome LoadOutcome
}

type GalleryLoader interface {
	Load(ctx context.Context) LoadResult
	Stop()
}

type GalleryLoaderConfig struct {
	BusyLoopIterations int
	Delay              time.Duration
	MaxWorkers         int
	Metrics            *LoaderMetrics
	PerPage            int
	PhotoService       PhotoServicer
	ShutdownCtx        context.Context
}

type GalleryLoaderService struct {
	busyLoopIterations int
	delay              time.Duration
	metrics            *LoaderMetrics
	perPage            int
	photoService       PhotoServicer
	pool               pond.Pool
}

func NewGalleryLoaderService(config GalleryLoaderConfig) GalleryLoaderService {
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = 1
	}

	if config.ShutdownCtx == nil {
		config.ShutdownCtx = context.Background()
	}

	return GalleryLoaderService{
		busyLoopIterations: config.BusyLoopIterations,
		delay:              config.Delay,
		metrics:            config.Metrics,
		perPage:            config.PerPage,
		photoService:       config.PhotoService,
		pool:               pond.NewPool(config.MaxWorkers, pond.WithContext(config.ShutdownCtx)),
	}
}

/*
Load runs the slow gallery sequence: the artificial delay, the busy loop,
then a single photo listing request. Any failure yields an empty list.
The sequence runs on the loader's worker pool, which caps how many busy
loops can run at once.
*/
func (l GalleryLoaderService) Load(ctx context.Context) LoadResult {
	var (
		result LoadResult
	)

	task := l.pool.Submit(func() {
		result = l.load(ctx)
	})

	select {
	case <-ctx.Done():
		slog.Warn("gallery load abandoned while waiting for a worker", "error", ctx.Err())
		return emptyLoadResult()

	case <-task.Done():
	}

	if err := task.Wait(); err != nil {
		slog.Error("gallery load task did not complete", "error", err)
		return emptyLoadResult()
	}

	return result
}

// Stop waits for running loads to finish and rejects new ones.
func (l GalleryLoaderService) Stop() {
	if err := l.pool.Stop().Wait(); err != nil {
		slog.Error("error stopping gallery load pool", "error", err)
	}
}

func emptyLoadResult() LoadResult {
	return LoadResult{
		Photos:  []models.Photo{},
		Loading: false,
		Outcome: OutcomeError,
	}
}

func (l GalleryLoaderService) load(ctx context.Context) (result LoadResult) {
	start := time.Now()

	result = LoadResult{
		Photos:  []models.Photo{},
		Loading: true,
		Outcome: OutcomeOK,
	}

	defer func() {
		result.Loading = false
		elapsed := time.Since(start)

		l.metrics.observe(result, elapsed.Seconds())
		slog.Info("gallery load finished", "outcome", result.Outcome, "numPhotos", len(result.Photos), "elapsed", elapsed)
	}()

	timer := time.NewTimer(l.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		slog.Warn("gallery load cancelled during delay", "error", ctx.Err())
		result.Outcome = OutcomeError
		return result

	case <-timer.C:
	}

	busyResult := BusyLoop(l.busyLoopIterations)
	slog.Info("busy loop finished", "iterations", l.busyLoopIterations, "result", busyResult)

	photos, err := l.photoService.ListPhotos(ctx, l.perPage)

	if errors.Is(err, ErrNotAList) {
		slog.Error("photo API did not return a list", "error", err)
		result.Outcome = OutcomeNotAList
		return result
	}

	if err != nil {
		slog.Error("error loading photos", "error", err)
		result.Outcome = OutcomeError
		return result
	}

	if photos != nil {
		result.Photos = photos
	}

	return result
}

/*
BusyLoop sums the square roots of 0 through iterations-1. It exists only to
keep the CPU busy and never yields.
*/
func BusyLoop(iterations int) float64 {
	var sum float64

	for i := 0; i < iterations; i++ {
		sum += math.Sqrt(float64(i))
	}

	return sum
}
