// Package api provides the HTTP server for the StockLens dashboard.
//
// It exposes the analysis and chart endpoints, a health check, a WebSocket
// price stream, and the embedded static dashboard.
package api

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sanjaynv/stocklens/internal/analyzer"
	"github.com/sanjaynv/stocklens/internal/config"
	"github.com/sanjaynv/stocklens/internal/providers/fmp"
	"github.com/sanjaynv/stocklens/internal/providers/rss"
	"github.com/sanjaynv/stocklens/web"
)

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	cfg      *config.Config
	analyzer *analyzer.Analyzer
	hub      *Hub
	serveUI  bool // when true, serve the embedded dashboard at /
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config) *Server {
	var rssSource *rss.Source
	if len(cfg.News.Feeds) > 0 {
		feeds := make([]rss.Feed, 0, len(cfg.News.Feeds))
		for _, f := range cfg.News.Feeds {
			feeds = append(feeds, rss.Feed{Name: f.Name, URL: f.URL})
		}
		rssSource = rss.New(feeds)
	}

	fmpClient := fmp.New(cfg.FMP.APIKey)
	fmpClient.SetCacheTTL(time.Duration(cfg.Analysis.CacheTTL) * time.Second)

	srv := &Server{
		cfg:      cfg,
		analyzer: analyzer.New(fmpClient, rssSource, cfg.Analysis.NewsLimit),
		hub:      NewHub(),
		serveUI:  true,
	}
	srv.router = srv.buildRouter()
	return srv
}

// SetServeUI controls whether the embedded dashboard is served.
// Must be called before ListenAndServe.
func (s *Server) SetServeUI(enabled bool) {
	s.serveUI = enabled
	s.router = s.buildRouter()
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe starts the HTTP server with graceful shutdown.
func (s *Server) ListenAndServe(addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return httpSrv.Shutdown(ctx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	})

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/analyze", s.handleAnalyze)
		r.Get("/chart", s.handleChart)
		r.Get("/keys", s.handleKeys)
		r.Get("/stream", s.handleStream)
	})

	if s.serveUI {
		s.mountStatic(r)
	}
	return r
}

// mountStatic serves the embedded dashboard, falling back to index.html.
func (s *Server) mountStatic(r chi.Router) {
	distFS := web.DistFS()
	fileServer := http.FileServer(http.FS(distFS))

	r.Get("/*", func(w http.ResponseWriter, req *http.Request) {
		rPath := strings.TrimPrefix(req.URL.Path, "/")
		if rPath == "" {
			rPath = "index.html"
		}
		if f, err := distFS.Open(rPath); err != nil {
			http.NotFound(w, req)
			return
		} else {
			f.Close()
		}
		fileServer.ServeHTTP(w, req)
	})
}

// errorResponse is the body of a 500 from the analysis endpoints.
type errorResponse struct {
	Error   string `json:"error"`
	Symbol  string `json:"symbol"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": "dev",
		"time":    time.Now().Format(time.RFC3339),
		"clients": s.hub.ClientCount(),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	symbol := strings.TrimSpace(r.URL.Query().Get("symbol"))
	if symbol == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Stock symbol is required"})
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), symbol)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to analyze stock",
			Symbol:  symbol,
			Message: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	symbol := strings.TrimSpace(r.URL.Query().Get("symbol"))
	if symbol == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Stock symbol is required"})
		return
	}

	series, err := s.analyzer.Chart(r.Context(), symbol)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Failed to fetch chart data",
			Symbol:  symbol,
			Message: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, series)
}

// handleKeys reports credential status so the dashboard can show whether it
// is running on live or mock data. Keys are masked, never echoed.
func (s *Server) handleKeys(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, config.CheckAPIKeys(s.cfg))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
