// Package api exposes the simulation to a local renderer over HTTP: one
// read-only snapshot route plus one POST per user intent. Invalid actions
// are reported as applied=false, never as errors, matching the core's
// silent no-op contract.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"blockparty/internal/capture"
	"blockparty/internal/shop"
)

type Server struct {
	log  *slog.Logger
	game *shop.Service
	mux  *chi.Mux
}

func New(logger *slog.Logger, game *shop.Service) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		log:  logger,
		game: game,
		mux:  chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) routes() {
	r := s.mux
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	r.Route("/v1", func(r chi.Router) {
		r.Get("/snapshot", s.handleSnapshot)
		r.Get("/capture", s.handleCapture)

		r.Post("/serve", s.handleServe)
		r.Post("/restock", s.handleRestock)
		r.Post("/boost", s.handleBoost)
		r.Post("/upgrades/{track}", s.handleUpgrade)
		r.Post("/staff/toggle", s.handleToggleStaff)
		r.Post("/party", s.handleParty)
		r.Post("/shop-name", s.handleShopName)
		r.Post("/audit/submit", s.handleAuditSubmit)
		r.Post("/audit/fail", s.handleAuditFail)
		r.Post("/audit/dismiss", s.handleAuditDismiss)
		r.Post("/prestige", s.handlePrestige)
	})
}

func (s *Server) handleSnapshot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.game.Snapshot())
}

func (s *Server) handleCapture(w http.ResponseWriter, r *http.Request) {
	snap := s.game.Snapshot()
	card := capture.SelfieCard(snap)
	if r.URL.Query().Get("kind") == "replay" {
		card = capture.ReplayCard(snap)
	}
	writeJSON(w, http.StatusOK, map[string]any{"card": card})
}

func (s *Server) handleServe(w http.ResponseWriter, _ *http.Request) {
	earned, served := s.game.Serve(false)
	writeJSON(w, http.StatusOK, map[string]any{
		"applied":  served,
		"earned":   earned,
		"snapshot": s.game.Snapshot(),
	})
}

func (s *Server) handleRestock(w http.ResponseWriter, _ *http.Request) {
	s.game.Restock()
	writeSnapshot(w, s.game, true)
}

func (s *Server) handleBoost(w http.ResponseWriter, _ *http.Request) {
	writeSnapshot(w, s.game, s.game.StartBoost())
}

func (s *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	track := shop.UpgradeTrack(strings.ToLower(chi.URLParam(r, "track")))
	if track != shop.TrackFixtures && track != shop.TrackProduct {
		writeError(w, http.StatusNotFound, "unknown upgrade track")
		return
	}
	writeSnapshot(w, s.game, s.game.PurchaseUpgrade(track))
}

func (s *Server) handleToggleStaff(w http.ResponseWriter, _ *http.Request) {
	enabled := s.game.ToggleAutoStaff()
	writeJSON(w, http.StatusOK, map[string]any{
		"applied":  true,
		"enabled":  enabled,
		"snapshot": s.game.Snapshot(),
	})
}

func (s *Server) handleParty(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Enabled bool `json:"enabled"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.game.SetPartyBoost(in.Enabled)
	writeSnapshot(w, s.game, true)
}

func (s *Server) handleShopName(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.game.SetShopName(strings.TrimSpace(in.Name))
	writeSnapshot(w, s.game, true)
}

func (s *Server) handleAuditSubmit(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Choice int `json:"choice"`
	}
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	passed, resolved := s.game.SubmitAudit(in.Choice)
	writeJSON(w, http.StatusOK, map[string]any{
		"applied":  resolved,
		"passed":   passed,
		"snapshot": s.game.Snapshot(),
	})
}

func (s *Server) handleAuditFail(w http.ResponseWriter, _ *http.Request) {
	s.game.FailAudit()
	writeSnapshot(w, s.game, true)
}

func (s *Server) handleAuditDismiss(w http.ResponseWriter, _ *http.Request) {
	s.game.DismissAudit()
	writeSnapshot(w, s.game, true)
}

func (s *Server) handlePrestige(w http.ResponseWriter, _ *http.Request) {
	writeSnapshot(w, s.game, s.game.PrestigeReset())
}

func writeSnapshot(w http.ResponseWriter, game *shop.Service, applied bool) {
	writeJSON(w, http.StatusOK, map[string]any{
		"applied":  applied,
		"snapshot": game.Snapshot(),
	})
}

func decodeJSON(r *http.Request, out any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(out)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{"error": strings.TrimSpace(message)})
}
