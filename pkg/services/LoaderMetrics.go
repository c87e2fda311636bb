package services

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type LoaderMetrics struct {
	Loads        *prometheus.CounterVec
	LoadDuration prometheus.Histogram
	Photos       prometheus.Gauge
}

/*
NewLoaderMetrics creates the gallery loader metrics and registers them with
the given registerer. Pass prometheus.DefaultRegisterer to expose them on
the default /metrics handler.
*/
func NewLoaderMetrics(registerer prometheus.Registerer) (*LoaderMetrics, error) {
	metrics := &LoaderMetrics{
		Loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "slowgallery_gallery_loads_total",
			Help: "Number of completed gallery loads partitioned by outcome.",
		}, []string{"outcome"}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "slowgallery_gallery_load_duration_seconds",
			Help:    "Time taken by a full gallery load, including the artificial delay.",
			Buckets: []float64{0.5, 1, 2, 3, 4, 5, 7.5, 10, 15, 30},
		}),
		Photos: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "slowgallery_gallery_photos",
			Help: "Number of photos returned by the most recent gallery load.",
		}),
	}

	collectors := []prometheus.Collector{metrics.Loads, metrics.LoadDuration, metrics.Photos}

	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			return nil, fmt.Errorf("error registering gallery loader metric: %w", err)
		}
	}

	return metrics, nil
}

func (m *LoaderMetrics) observe(result LoadResult, seconds float64) {
	if m == nil {
		return
	}

	m.Loads.WithLabelValues(string(result.Outcome)).Inc()
	m.LoadDuration.Observe(seconds)
	m.Photos.Set(float64(len(result.Photos)))
}
