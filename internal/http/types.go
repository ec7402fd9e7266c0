package http

import (
	"net/http"

	"github.com/suarezvoley/checkin/internal/attendance"
	"github.com/suarezvoley/checkin/internal/club"
	"github.com/suarezvoley/checkin/internal/config"
	"github.com/suarezvoley/checkin/internal/metrics"
	"github.com/suarezvoley/checkin/internal/notifier"
	"github.com/suarezvoley/checkin/internal/report"
)

// Server wires the REST surface to the stores and side-effect
// collaborators.
type Server struct {
	Players        club.PlayerStore
	Attendance     attendance.Recorder
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Report         *report.Safe
	Router         *http.ServeMux
}

// playerRequest is the body of POST /players and PUT /players/{id}.
type playerRequest struct {
	Name   string `json:"name"`
	Age    int    `json:"age"`
	Tenure int    `json:"tenure"`
}

// checkInRequest is the body of POST /check-in.
type checkInRequest struct {
	Code string `json:"code"`
}

// errorResponse mirrors the {detail} error body the front-end expects.
type errorResponse struct {
	Detail string `json:"detail"`
}
