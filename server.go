// Package railatlas is the HTTP surface of the historical railway network
// timeline engine. It serves the per-year resolved view of the network over
// a dataset loaded once at startup.
package railatlas

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/railatlas/railatlas/config"
	"github.com/railatlas/railatlas/network"
	"github.com/railatlas/railatlas/resolve"
)

// Server wires the immutable dataset index and the resolver behind the HTTP
// API. All request handling is a pure function of the index and the request,
// so the server needs no locking.
type Server struct {
	cfg      *config.AppConfig
	net      *network.Index
	resolver *resolve.Resolver
	http     *http.Server
}

// NewServer creates a server over a loaded dataset.
func NewServer(cfg *config.AppConfig, ix *network.Index) *Server {
	s := &Server{
		cfg:      cfg,
		net:      ix,
		resolver: resolve.NewResolver(ix),
	}
	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.router(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	origins := s.cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/api/health", s.handleHealth)
	r.Get("/api/network/{year}", s.handleNetworkForYear)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()
	log.Info().Str("addr", s.http.Addr).Msg("server listening")
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, then drains the server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info().Msg("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown error")
		return
	}
	log.Info().Msg("server shut down")
}
