// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	api "go.opentelemetry.io/otel/metric"
)

type FillMetrics struct {
	opts api.MeasurementOption

	RequestedFills   api.Int64Counter
	ExecutedFills    api.Int64Counter
	FailedFills      api.Int64Counter
	ExecutionLatency api.Float64Histogram
}

// NewFillMetrics creates an instance of metrics tracking the slow fill
// lifecycle
func NewFillMetrics(meter api.Meter, env string, chainId uint64) (*FillMetrics, error) {
	opts := api.WithAttributes(
		attribute.String("env", env),
		attribute.Int64("chainId", int64(chainId)),
	)

	requestedFills, err := meter.Int64Counter(
		"slowfill.RequestedFills",
		api.WithDescription("Number of slow fill requests accepted"),
	)
	if err != nil {
		return nil, err
	}
	executedFills, err := meter.Int64Counter(
		"slowfill.ExecutedFills",
		api.WithDescription("Number of slow fill leaves executed"),
	)
	if err != nil {
		return nil, err
	}
	failedFills, err := meter.Int64Counter(
		"slowfill.FailedFills",
		api.WithDescription("Number of slow fill invocations rejected"),
	)
	if err != nil {
		return nil, err
	}
	executionLatency, err := meter.Float64Histogram(
		"slowfill.ExecutionLatency",
		api.WithDescription("Duration of slow fill executions in seconds"),
	)
	if err != nil {
		return nil, err
	}

	return &FillMetrics{
		opts:             opts,
		RequestedFills:   requestedFills,
		ExecutedFills:    executedFills,
		FailedFills:      failedFills,
		ExecutionLatency: executionLatency,
	}, nil
}

func (m *FillMetrics) TrackRequest(ctx context.Context) {
	m.RequestedFills.Add(ctx, 1, m.opts)
}

func (m *FillMetrics) TrackExecution(ctx context.Context, duration time.Duration) {
	m.ExecutedFills.Add(ctx, 1, m.opts)
	m.ExecutionLatency.Record(ctx, duration.Seconds(), m.opts)
}

func (m *FillMetrics) TrackFailure(ctx context.Context, operation string) {
	m.FailedFills.Add(ctx, 1, m.opts, api.WithAttributes(attribute.String("operation", operation)))
}
