package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service holds all the Prometheus metrics for the application.
// Defining them in one place keeps naming and labeling consistent.
type Service struct {
	CheckIns           prometheus.Counter
	PlayersCreated     prometheus.Counter
	ExportFailures     prometheus.Counter
	NotifFailed        prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		CheckIns: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checkin_attendance_recorded_total",
			Help: "The total number of attendance check-ins recorded.",
		}),
		PlayersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checkin_players_created_total",
			Help: "The total number of players registered.",
		}),
		ExportFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checkin_report_export_failures_total",
			Help: "The total number of report exports that failed and were swallowed.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "checkin_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "checkin_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.CheckIns,
		s.PlayersCreated,
		s.ExportFailures,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncCheckIns() {
	s.CheckIns.Inc()
}

func (s *Service) IncPlayersCreated() {
	s.PlayersCreated.Inc()
}

func (s *Service) IncExportFailures() {
	s.ExportFailures.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
