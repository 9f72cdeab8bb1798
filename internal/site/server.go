package site

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/interviewqs/qbank/internal/questions"
	"github.com/interviewqs/qbank/internal/ui"
)

// Server serves the question browser and applies filter button clicks to
// its Store.
type Server struct {
	gen       *Generator
	questions []questions.Question
	tags      map[string]bool
	store     *ui.Store
	logger    *zap.Logger
	router    chi.Router
}

// NewServer creates a Server for qs. store holds the filter state shared by
// all requests.
func NewServer(gen *Generator, qs []questions.Question, store *ui.Store, logger *zap.Logger) *Server {
	s := &Server{
		gen:       gen,
		questions: qs,
		tags:      map[string]bool{questions.AllTag: true},
		store:     store,
		logger:    logger,
	}
	for _, tag := range questions.Group(qs).Tags() {
		s.tags[tag] = true
	}
	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/", s.handleIndex)
	r.Get("/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(cssContent))
	})
	r.Get("/script.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/javascript; charset=utf-8")
		w.Write([]byte(jsContent))
	})
	r.Get("/questions.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := writeJSON(w, BuildSearchIndex(s.questions)); err != nil {
			s.logger.Warn("writing search index", zap.Error(err))
		}
	})
	r.Post("/filter", s.handleFilter)

	return r
}

// Handler returns the HTTP handler for the browser.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.gen.Render(&buf, s.questions, s.store.State()); err != nil {
		s.logger.Error("rendering browser page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	filter := r.PostForm.Get("type")
	if !s.tags[filter] {
		http.Error(w, "unknown filter", http.StatusBadRequest)
		return
	}
	ui.FilterButton{Type: filter, Icon: ui.IconFor(filter)}.Click(s.store)
	s.logger.Debug("filter changed",
		zap.String("filter", filter),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("question browser listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
