package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/maximpopov11/pokeworld/internal/network"
	"github.com/maximpopov11/pokeworld/pkg/api"
	"github.com/maximpopov11/pokeworld/pkg/logger"
)

// DebugHandler exposes what the session last published.
type DebugHandler struct {
	Hub *network.Broadcaster
}

func NewDebugHandler(hub *network.Broadcaster) *DebugHandler {
	return &DebugHandler{Hub: hub}
}

// RegisterRoutes mounts the debug endpoints under /debug.
func (h *DebugHandler) RegisterRoutes(r chi.Router) {
	r.Route("/debug", func(r chi.Router) {
		r.Get("/frame", h.handleFrame)
		r.Get("/queue", h.handleQueue)
		r.Get("/tiles", h.handleListTiles)
		r.Get("/tiles/{x}/{y}", h.handleTile)
	})
}

// /debug/frame - the latest frame
func (h *DebugHandler) handleFrame(w http.ResponseWriter, r *http.Request) {
	f, ok := h.Hub.LastFrame()
	if !ok {
		writeError(w, http.StatusNotFound, "no frame rendered yet")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

// /debug/queue - the scheduler in heap order, as of the last player turn
func (h *DebugHandler) handleQueue(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Hub.Queue())
}

// /debug/tiles - every tile the player has been seen on
func (h *DebugHandler) handleListTiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Hub.Tiles())
}

// /debug/tiles/{x}/{y} - the last frame of one tile
func (h *DebugHandler) handleTile(w http.ResponseWriter, r *http.Request) {
	x, err := strconv.Atoi(chi.URLParam(r, "x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid x coordinate")
		return
	}
	y, err := strconv.Atoi(chi.URLParam(r, "y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid y coordinate")
		return
	}

	f, ok := h.Hub.TileFrame(api.TileCoord{X: x, Y: y})
	if !ok {
		writeError(w, http.StatusNotFound, "tile not visited")
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.WithError(err).Warn("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
