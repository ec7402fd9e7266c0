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

// NewServer builds the router over the given collaborators.
func NewServer(
	players club.PlayerStore,
	recorder attendance.Recorder,
	metricsSvc metrics.Metrics,
	metricsHandler http.Handler,
	cfg config.Config,
	notif notifier.Notifier,
	rep *report.Safe,
) *Server {
	server := &Server{
		Players:        players,
		Attendance:     recorder,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notif,
		Report:         rep,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper,
	// which makes it easy to add more later (e.g. an auth middleware).
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(s.HealthCheckHandler(), requestIDMiddleware, paramsMiddleware))

	s.Router.Handle("POST /players", Chain(s.CreatePlayerHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /players/{id}", Chain(s.GetPlayerHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("PUT /players/{id}", Chain(s.UpdatePlayerHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("DELETE /players/{id}", Chain(s.DeletePlayerHandler(), requestIDMiddleware, paramsMiddleware))

	s.Router.Handle("GET /verify/{code}", Chain(s.VerifyHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("POST /check-in", Chain(s.CheckInHandler(), requestIDMiddleware, paramsMiddleware))
	s.Router.Handle("GET /attendance/recent", Chain(s.RecentAttendeesHandler(), requestIDMiddleware, paramsMiddleware))

	s.Router.Handle("GET /export", Chain(s.ExportHandler(), requestIDMiddleware, paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
