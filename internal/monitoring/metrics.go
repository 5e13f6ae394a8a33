package monitoring

import (
	"context"
	"time"

	repository "event-booking/internal/database/postgres"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var (
	bookingsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_total",
			Help: "Total bookings accepted",
		},
	)

	bookedSeatsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "booked_seats_total",
			Help: "Total seats booked",
		},
	)

	eventsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_events_total",
			Help: "Current number of events in the catalog",
		},
	)

	availableSeatsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_available_seats_total",
			Help: "Sum of available seats across all events",
		},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// RecordBooking bumps the booking counters after a successful booking.
func RecordBooking(seats int) {
	bookingsTotal.Inc()
	bookedSeatsTotal.Add(float64(seats))
}

// ObserveRequest records one handled HTTP request.
func ObserveRequest(method, path, status string, duration time.Duration) {
	httpDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// Monitor periodically refreshes catalog gauges from the event store.
type Monitor struct {
	eventRepo repository.EventRepository
	interval  time.Duration
}

func NewMonitor(eventRepo repository.EventRepository, interval time.Duration) *Monitor {
	return &Monitor{eventRepo: eventRepo, interval: interval}
}

func (m *Monitor) Start(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.collect(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.collect(ctx)
		}
	}
}

func (m *Monitor) collect(ctx context.Context) {
	events, err := m.eventRepo.GetAll(ctx, nil)
	if err != nil {
		logrus.Errorf("Failed to collect catalog metrics: %v", err)
		return
	}

	seats := 0
	for _, event := range events {
		seats += event.AvailableSeats
	}

	eventsTotal.Set(float64(len(events)))
	availableSeatsTotal.Set(float64(seats))
}
