// Package otel provides OpenTelemetry integration for bigram cache metrics.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel

import (
	"context"
	"errors"

	"github.com/agilira/bigram"
	"go.opentelemetry.io/otel/metric"
)

// Instrument names
const (
	MetricUpsertLatency = "bigram_upsert_latency_ns"
	MetricInserts       = "bigram_inserts_total"
	MetricUpdates       = "bigram_updates_total"
	MetricEvictions     = "bigram_evictions_total"
	MetricBestScore     = "bigram_best_score"
)

// OTelMetricsCollector implements bigram.MetricsCollector using OpenTelemetry.
//
// Thread-safety: the underlying OTEL instruments are safe for concurrent use.
type OTelMetricsCollector struct {
	upsertLatency metric.Int64Histogram
	inserts       metric.Int64Counter
	updates       metric.Int64Counter
	evictions     metric.Int64Counter
	bestScore     metric.Float64Histogram
}

// Options for configuring OTelMetricsCollector.
type Options struct {
	// MeterName is the name of the OpenTelemetry meter.
	// Default: "github.com/agilira/bigram"
	MeterName string
}

// Option is a functional option for configuring OTelMetricsCollector.
type Option func(*Options)

// WithMeterName sets a custom meter name, e.g. to tell several caches apart.
func WithMeterName(name string) Option {
	return func(o *Options) {
		o.MeterName = name
	}
}

// NewOTelMetricsCollector creates a collector whose instruments are created
// from provider. provider must not be nil.
//
// Instruments:
//   - bigram_upsert_latency_ns: Int64Histogram of Upsert latency
//   - bigram_inserts_total: Int64Counter of upserts that stored a new key
//   - bigram_updates_total: Int64Counter of upserts that replaced a value
//   - bigram_evictions_total: Int64Counter of FIFO evictions
//   - bigram_best_score: Float64Histogram of best match scores
func NewOTelMetricsCollector(provider metric.MeterProvider, opts ...Option) (*OTelMetricsCollector, error) {
	if provider == nil {
		return nil, errors.New("meter provider cannot be nil")
	}

	options := Options{
		MeterName: "github.com/agilira/bigram",
	}
	for _, opt := range opts {
		opt(&options)
	}

	meter := provider.Meter(options.MeterName)
	collector := &OTelMetricsCollector{}

	var err error
	collector.upsertLatency, err = meter.Int64Histogram(
		MetricUpsertLatency,
		metric.WithDescription("Latency of Upsert operations in nanoseconds"),
		metric.WithUnit("ns"),
	)
	if err != nil {
		return nil, err
	}

	collector.inserts, err = meter.Int64Counter(
		MetricInserts,
		metric.WithDescription("Total number of upserts that stored a new key"),
	)
	if err != nil {
		return nil, err
	}

	collector.updates, err = meter.Int64Counter(
		MetricUpdates,
		metric.WithDescription("Total number of upserts that replaced an existing value"),
	)
	if err != nil {
		return nil, err
	}

	collector.evictions, err = meter.Int64Counter(
		MetricEvictions,
		metric.WithDescription("Total number of FIFO evictions"),
	)
	if err != nil {
		return nil, err
	}

	collector.bestScore, err = meter.Float64Histogram(
		MetricBestScore,
		metric.WithDescription("Best match score of upserts that had candidates"),
		metric.WithExplicitBucketBoundaries(0, 0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1),
	)
	if err != nil {
		return nil, err
	}

	return collector, nil
}

// RecordUpsert records the latency of an upsert and counts it as an insert
// or an update.
func (c *OTelMetricsCollector) RecordUpsert(latencyNs int64, inserted bool) {
	ctx := context.Background()

	c.upsertLatency.Record(ctx, latencyNs)
	if inserted {
		c.inserts.Add(ctx, 1)
	} else {
		c.updates.Add(ctx, 1)
	}
}

// RecordEviction increments the evictions counter.
func (c *OTelMetricsCollector) RecordEviction() {
	c.evictions.Add(context.Background(), 1)
}

// RecordMatch records a best match score.
func (c *OTelMetricsCollector) RecordMatch(score float64) {
	c.bestScore.Record(context.Background(), score)
}

// Compile-time interface check
var _ bigram.MetricsCollector = (*OTelMetricsCollector)(nil)
