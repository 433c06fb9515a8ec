package discord

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// HealthStatus represents the bot's health status
type HealthStatus struct {
	Status           string     `json:"status"`
	Uptime           string     `json:"uptime"`
	Connected        bool       `json:"connected"`
	CommandsReceived int64      `json:"commands_received"`
	LastCommandTime  *time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool       `json:"api_reachable"`
}

var (
	startTime       = time.Now()
	commandCounter  atomic.Int64
	lastCommandNano atomic.Int64
)

// RecordCommand increments the command counter
func RecordCommand() {
	commandCounter.Add(1)
	lastCommandNano.Store(time.Now().UnixNano())
}

func lastCommandTime() *time.Time {
	n := lastCommandNano.Load()
	if n == 0 {
		return nil
	}
	t := time.Unix(0, n)
	return &t
}

// HandleHealth reports gateway and farm API connectivity
func (h *HTTPServer) HandleHealth(w http.ResponseWriter, r *http.Request) {
	connected := h.bot.Session != nil && h.bot.Session.DataReady

	apiReachable := false
	if h.bot.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		apiReachable = h.bot.Client.Health(ctx) == nil
		cancel()
	}

	health := HealthStatus{
		Status:           "healthy",
		Uptime:           time.Since(startTime).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: commandCounter.Load(),
		LastCommandTime:  lastCommandTime(),
		APIReachable:     apiReachable,
	}

	w.Header().Set("Content-Type", "application/json")
	if !connected || !apiReachable {
		health.Status = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	if err := json.NewEncoder(w).Encode(health); err != nil {
		slog.Debug("Failed to write health response", "error", err)
	}
}
