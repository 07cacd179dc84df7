package services

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/ghuser/shoppinglist/services/shoppinglist"

type metrics struct {
	mutations    metric.Int64Counter
	cacheLookups metric.Int64Counter
}

// newMetrics registers counters on the global meter provider. Instrument
// creation only fails on invalid names, and otel hands back a no-op
// instrument in that case.
func newMetrics() *metrics {
	meter := otel.Meter(instrumentationName)
	mutations, _ := meter.Int64Counter("shopping_list.mutations",
		metric.WithDescription("Successful writes by entity and operation"),
		metric.WithUnit("{operation}"),
	)
	lookups, _ := meter.Int64Counter("shopping_list.cache.lookups",
		metric.WithDescription("List cache lookups by result"),
		metric.WithUnit("{lookup}"),
	)
	return &metrics{mutations: mutations, cacheLookups: lookups}
}

func (m *metrics) mutated(ctx context.Context, entity, op string) {
	m.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("entity", entity),
		attribute.String("operation", op),
	))
}

func (m *metrics) lookup(ctx context.Context, result string) {
	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
