// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// File operation labels
const (
	OpSave = "save"
	OpLoad = "load"

	ResultSuccess = "success"
	ResultError   = "error"
)

var (
	registerOnce sync.Once

	// Registry holds the library collectors. It is separate from the default
	// registry so a textfile dump contains only library metrics.
	Registry = prometheus.NewRegistry()

	booksAdded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "book_library",
		Name:      "books_added_total",
		Help:      "Total number of books added to the library",
	})
	booksRemoved = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "book_library",
		Name:      "books_removed_total",
		Help:      "Total number of books removed from the library",
	})
	removeMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "book_library",
		Name:      "remove_misses_total",
		Help:      "Total number of remove requests for books that were not in the library",
	})
	fileOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "book_library",
		Name:      "file_operations_total",
		Help:      "Total number of save and load operations by result",
	}, []string{"op", "result"})
	fileOperationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "book_library",
		Name:      "file_operation_duration_seconds",
		Help:      "Histogram of save and load durations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms up to ~1s
	}, []string{"op"})

	booksGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "book_library",
		Name:      "books",
		Help:      "Current number of books in the library",
	})
)

// Register adds the library collectors to Registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		Registry.MustRegister(booksAdded, booksRemoved, removeMisses, fileOperations, fileOperationDuration, booksGauge)
	})
}

// Collection helpers
func IncBooksAdded()   { booksAdded.Inc() }
func IncBooksRemoved() { booksRemoved.Inc() }
func IncRemoveMisses() { removeMisses.Inc() }
func SetBooks(n int)   { booksGauge.Set(float64(n)) }

// ObserveFileOperation records the outcome and duration of a save or load
func ObserveFileOperation(op string, d time.Duration, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	fileOperations.WithLabelValues(op, result).Inc()
	fileOperationDuration.WithLabelValues(op).Observe(d.Seconds())
}

// WriteTextfile writes every registered metric to path in the Prometheus text
// exposition format, suitable for the node exporter textfile collector.
func WriteTextfile(path string) error {
	Register()
	return prometheus.WriteToTextfile(path, Registry)
}
