package report

import (
	"github.com/charmbracelet/log"

	"github.com/suarezvoley/checkin/internal/metrics"
)

// Safe wraps an Exporter so that refresh failures are logged and
// counted but never propagated. The artifact is frequently open in
// Excel on the admin's machine, and a locked file must not fail the
// mutation that triggered the refresh.
type Safe struct {
	exporter Exporter
	metrics  metrics.Metrics
}

// NewSafe creates the best-effort wrapper.
func NewSafe(exporter Exporter, m metrics.Metrics) *Safe {
	return &Safe{exporter: exporter, metrics: m}
}

// Refresh regenerates the artifact, discarding any error.
func (s *Safe) Refresh() {
	if err := s.exporter.Refresh(); err != nil {
		s.metrics.IncExportFailures()
		log.Warn("Report refresh failed, continuing", "error", err, "path", s.exporter.Path())
	}
}
