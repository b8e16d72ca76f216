// Package otel provides OpenTelemetry integration for bigram cache metrics.
//
// # Overview
//
// OTelMetricsCollector implements bigram.MetricsCollector. It lives in its own
// module so that the core library does not depend on the OTEL SDK.
//
// # Quick Start
//
//	import (
//	    "github.com/agilira/bigram"
//	    bigramotel "github.com/agilira/bigram/otel"
//	    "go.opentelemetry.io/otel/exporters/prometheus"
//	    "go.opentelemetry.io/otel/sdk/metric"
//	)
//
//	exporter, err := prometheus.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	provider := metric.NewMeterProvider(metric.WithReader(exporter))
//
//	collector, err := bigramotel.NewOTelMetricsCollector(provider)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sc, err := bigram.NewScoringCache(bigram.Config{
//	    Capacity:         10_000,
//	    MetricsCollector: collector,
//	})
//
// # Metrics
//
//   - bigram_upsert_latency_ns (histogram, ns): Upsert latency
//   - bigram_inserts_total (counter): upserts that stored a new key
//   - bigram_updates_total (counter): upserts that replaced a value
//   - bigram_evictions_total (counter): FIFO evictions
//   - bigram_best_score (histogram, 0.1 wide buckets): best match score per upsert
//
// Useful PromQL:
//
//	histogram_quantile(0.95, rate(bigram_upsert_latency_ns_bucket[5m]))
//	rate(bigram_updates_total[5m]) / (rate(bigram_inserts_total[5m]) + rate(bigram_updates_total[5m]))
//	histogram_quantile(0.5, rate(bigram_best_score_bucket[5m]))
//
// Latency values are measured with the monotonic clock, so sub-microsecond
// upserts are recorded with nanosecond resolution.
//
// Copyright (c) 2025 AGILira - A. Giordano
// Series: an AGILira library
// SPDX-License-Identifier: MPL-2.0
package otel
