package server

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/mrsingh-rishi/job-outreach/internal/config"
	log "github.com/sirupsen/logrus"
)

// Server is the HTTP surface of the pipeline. All state lives in the handler
// dependencies; the server itself only owns the listener.
type Server struct {
	httpServer *http.Server
}

func New(cfg config.ServerConfig, handlers *Handlers) *Server {

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", handlers.Root)
	mux.HandleFunc("GET /health", handlers.Health)
	mux.HandleFunc("POST /send-emails", handlers.SendEmails)
	mux.HandleFunc("GET /logs", handlers.Logs)
	mux.HandleFunc("GET /existing-emails", handlers.ExistingEmails)
	mux.HandleFunc("GET /existing-emails/{jobTitle}", handlers.ExistingEmailsForJob)
	mux.HandleFunc("GET /recent-emails/{days}", handlers.RecentEmails)

	return &Server{
		httpServer: &http.Server{
			Addr:         ":" + strconv.Itoa(cfg.Port),
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Minute, // a dispatch run can take a long time
		},
	}
}

func (s *Server) Start() error {
	log.Infof("http server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
