package schedule

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("schedule")

// NewMetricReporter counts unresolved timezone lookups as tz.unresolved,
// attributed by country.
func NewMetricReporter() (Reporter, error) {
	counter, err := meter.Int64Counter("tz.unresolved",
		metric.WithDescription("races without a known track timezone"),
		metric.WithUnit("{race}"))
	if err != nil {
		return nil, err
	}
	return ReporterFunc(func(ctx context.Context, u Unresolved) {
		counter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("country", u.Country),
			attribute.String("location", u.Location),
		))
	}), nil
}
