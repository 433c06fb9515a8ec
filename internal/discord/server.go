package discord

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"
)

// HTTPServer exposes the bot's health and registered commands
type HTTPServer struct {
	server *http.Server
	bot    *Bot
}

func NewHTTPServer(port string, bot *Bot) *HTTPServer {
	mux := http.NewServeMux()

	srv := &HTTPServer{
		server: &http.Server{
			Addr:              ":" + port,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		bot: bot,
	}

	mux.HandleFunc("GET /healthz", srv.HandleHealth)
	mux.HandleFunc("GET /commands", srv.HandleCommands)
	return srv
}

// Start serves in the background until Stop
func (s *HTTPServer) Start() {
	go func() {
		slog.Info("Starting Discord health server", "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Discord health server failed", "error", err)
		}
	}()
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// HandleCommands lists the slash command names the bot answers
func (s *HTTPServer) HandleCommands(w http.ResponseWriter, r *http.Request) {
	names := []string{}
	if s.bot.Registry != nil {
		for _, cmd := range s.bot.Registry.Definitions() {
			names = append(names, cmd.Name)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string][]string{"commands": names}); err != nil {
		slog.Debug("Failed to write commands response", "error", err)
	}
}
