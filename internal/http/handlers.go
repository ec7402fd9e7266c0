package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/suarezvoley/checkin/internal/attendance"
	"github.com/suarezvoley/checkin/internal/club"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

func (s *Server) CreatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req playerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondDetail(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		player, err := s.Players.CreatePlayer(req.Name, req.Age, req.Tenure)
		if err != nil {
			s.respondStoreError(w, err)
			return
		}

		s.Metrics.IncPlayersCreated()
		s.Report.Refresh()
		respondJSON(w, http.StatusCreated, map[string]any{
			"message": "Player created",
			"id":      player.ID,
			"code":    player.Code,
		})
	}
}

func (s *Server) ListPlayersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Players.ListPlayers()
		if err != nil {
			log.Error("Failed to list players", "error", err)
			respondDetail(w, http.StatusInternalServerError, "Failed to list players")
			return
		}
		respondJSON(w, http.StatusOK, players)
	}
}

func (s *Server) GetPlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerID(w, r)
		if !ok {
			return
		}
		player, err := s.Players.GetPlayer(id)
		if err != nil {
			s.respondStoreError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, player)
	}
}

func (s *Server) UpdatePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerID(w, r)
		if !ok {
			return
		}
		var req playerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondDetail(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		if err := s.Players.UpdatePlayer(id, req.Name, req.Age, req.Tenure); err != nil {
			s.respondStoreError(w, err)
			return
		}

		s.Report.Refresh()
		respondJSON(w, http.StatusOK, map[string]any{"message": "Player updated"})
	}
}

func (s *Server) DeletePlayerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := playerID(w, r)
		if !ok {
			return
		}
		if err := s.Players.DeletePlayer(id); err != nil {
			s.respondStoreError(w, err)
			return
		}

		s.Report.Refresh()
		respondJSON(w, http.StatusOK, map[string]any{"message": "Player deleted"})
	}
}

func (s *Server) VerifyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		verification, err := s.Attendance.Verify(r.PathValue("code"))
		if err != nil {
			log.Error("Failed to verify code", "error", err)
			respondDetail(w, http.StatusInternalServerError, "Failed to verify code")
			return
		}
		respondJSON(w, http.StatusOK, verification)
	}
}

func (s *Server) CheckInHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req checkInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondDetail(w, http.StatusBadRequest, "Invalid JSON body")
			return
		}

		result, err := s.Attendance.CheckIn(req.Code)
		if err != nil {
			s.respondStoreError(w, err)
			return
		}

		s.Metrics.IncCheckIns()
		s.Report.Refresh()
		// The announcement is best-effort: a failed notification never
		// fails the check-in.
		if err := s.Notifier.SendCheckInNotification(result.Name, result.Code, result.Time); err != nil {
			log.Warn("Check-in notification failed, continuing", "error", err)
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"message": "Attendance recorded",
			"name":    result.Name,
			"time":    result.Time,
			"code":    result.Code,
		})
	}
}

func (s *Server) RecentAttendeesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				respondDetail(w, http.StatusBadRequest, "Invalid limit parameter")
				return
			}
			limit = parsed
		}

		attendees, err := s.Attendance.RecentAttendees(limit)
		if err != nil {
			log.Error("Failed to get recent attendees", "error", err)
			respondDetail(w, http.StatusInternalServerError, "Failed to get recent attendees")
			return
		}
		respondJSON(w, http.StatusOK, attendees)
	}
}

func (s *Server) ExportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.Report.Refresh()
		respondJSON(w, http.StatusOK, map[string]any{
			"message": "Report refreshed",
			"path":    s.Cfg.ReportPath,
		})
	}
}

// respondStoreError maps store errors onto the REST error contract:
// validation and duplicates are 400s the user can fix, lookups that
// found nothing are 404s, everything else is a server error.
func (s *Server) respondStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, club.ErrInvalidName),
		errors.Is(err, club.ErrInvalidAge),
		errors.Is(err, club.ErrInvalidTenure),
		errors.Is(err, club.ErrDuplicateName),
		errors.Is(err, attendance.ErrInvalidCode):
		respondDetail(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, club.ErrPlayerNotFound):
		respondDetail(w, http.StatusNotFound, "Player not found")
	case errors.Is(err, attendance.ErrPlayerNotFound):
		respondDetail(w, http.StatusNotFound, "Code not found")
	default:
		// Covers storage failures, duplicate-code races and allocator
		// exhaustion: none of them are the caller's fault.
		log.Error("Store operation failed", "error", err)
		respondDetail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func playerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respondDetail(w, http.StatusBadRequest, "Invalid player id")
		return 0, false
	}
	return id, true
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

func respondDetail(w http.ResponseWriter, status int, detail string) {
	respondJSON(w, status, errorResponse{Detail: detail})
}
