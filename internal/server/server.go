package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"quizkit/internal/logger"
	"quizkit/internal/quiz"
)

// Config captures the settings for serving a quiz.
type Config struct {
	Addr string
	// BankPath is the bank file; empty serves the embedded bank.
	BankPath          string
	Strict            bool
	UnsupportedPolicy quiz.UnsupportedPolicy
	GinMode           string
	AllowedOrigins    []string
	Logger            zerolog.Logger
}

// Server holds the currently rendered quiz. The form is replaced wholesale on reload and never mutated.
type Server struct {
	cfg       Config
	log       zerolog.Logger
	evaluator quiz.Evaluator

	mu         sync.RWMutex
	form       *quiz.Form
	diagnostic string
}

// New loads and renders the configured bank. A bank that cannot be rendered leaves the server
// answering with the failure page until a reload succeeds; in strict mode it is an error instead.
func New(cfg Config) (*Server, error) {
	s := &Server{
		cfg:       cfg,
		log:       logger.Component(cfg.Logger, "server"),
		evaluator: quiz.NewEvaluator(quiz.WithUnsupportedPolicy(cfg.UnsupportedPolicy)),
	}
	if err := s.Reload(); err != nil {
		if cfg.Strict {
			return nil, err
		}
		s.mu.Lock()
		s.diagnostic = diagnosticFor(err)
		s.mu.Unlock()
		s.log.Error().Err(err).Str("bank", bankLabel(cfg.BankPath)).Msg("question bank could not be rendered")
	}
	return s, nil
}

// Reload re-reads the bank and swaps in the new form. On failure the previous form stays in place.
func (s *Server) Reload() error {
	form, err := quiz.LoadForm(s.cfg.BankPath, s.cfg.Strict)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.form = form
	s.diagnostic = ""
	s.mu.Unlock()
	s.log.Info().Str("bank", bankLabel(s.cfg.BankPath)).Int("questions", form.Len()).Msg("question bank loaded")
	return nil
}

// current returns the form snapshot, or the diagnostic when no form is available.
func (s *Server) current() (*quiz.Form, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.form, s.diagnostic
}

// Serve starts an HTTP server that hosts the quiz page and API until ctx is done.
func Serve(ctx context.Context, cfg Config) error {
	if ctx == nil {
		return errors.New("server: context is nil")
	}
	if cfg.Addr == "" {
		return errors.New("server: addr is required")
	}
	s, err := New(cfg)
	if err != nil {
		return err
	}
	handler, err := s.Handler()
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()
	s.log.Info().Str("addr", cfg.Addr).Msg("server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
		err := <-errCh
		s.log.Info().Msg("server stopped")
		if errors.Is(err, http.ErrServerClosed) || err == nil {
			return nil
		}
		return err
	}
}

func diagnosticFor(err error) string {
	var malformed *quiz.MalformedBankError
	if errors.As(err, &malformed) && malformed.Diagnostic != "" {
		return malformed.Diagnostic
	}
	return err.Error()
}

func bankLabel(path string) string {
	if path == "" {
		return "embedded"
	}
	return path
}
