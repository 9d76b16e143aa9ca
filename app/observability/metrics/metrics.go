package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	ItineraryRequestsTotal metric.Int64Counter
	LLMRequestDuration     metric.Float64Histogram
	StorageErrorsTotal     metric.Int64Counter
	WasteAlertsTotal       metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// Get returns the global metrics instruments, creating them on first use
// from the globally configured MeterProvider.
func Get() *AppMetrics {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("TravelPlanner")
		var err error
		m := &AppMetrics{}

		m.ItineraryRequestsTotal, err = meter.Int64Counter(
			"itinerary_requests_total",
			metric.WithDescription("Total number of itinerary generation requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_requests_total: %v", err)
		}

		m.LLMRequestDuration, err = meter.Float64Histogram(
			"llm_request_duration_seconds",
			metric.WithDescription("Duration of chat-completion calls in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create llm_request_duration_seconds: %v", err)
		}

		m.StorageErrorsTotal, err = meter.Int64Counter(
			"storage_errors_total",
			metric.WithDescription("Total number of document store write errors"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create storage_errors_total: %v", err)
		}

		m.WasteAlertsTotal, err = meter.Int64Counter(
			"waste_alerts_total",
			metric.WithDescription("Total number of waste alerts relayed to Telegram"),
			metric.WithUnit("{alert}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create waste_alerts_total: %v", err)
		}

		appMetrics = m
	})
	return appMetrics
}
