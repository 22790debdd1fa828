// Package main provides entry point for the casting submission service.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ShadowHD6/Model-Submission-Forum/internal/config"
	"github.com/ShadowHD6/Model-Submission-Forum/internal/handler"
	"github.com/ShadowHD6/Model-Submission-Forum/internal/logger"
	"github.com/ShadowHD6/Model-Submission-Forum/internal/pdf"
	"github.com/ShadowHD6/Model-Submission-Forum/internal/store"
	"github.com/ShadowHD6/Model-Submission-Forum/internal/whatsapp"
)

// Run is the testable entrypoint for the application.
func Run(ctx context.Context) error {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	log.Info("Starting Model Casting Submission Service")

	validate := validator.New()
	validate.RegisterTagNameFunc(handler.JSONTagName)

	h := handler.New(log,
		pdf.New(log),
		whatsapp.New(cfg.WhatsAppPhone),
		store.NewMemory(),
		validate,
	)

	r := chi.NewRouter()
	r.Get("/healthz", h.Healthz)
	r.Post("/api/submit", h.Submit)
	r.Get("/api/submissions", h.Submissions)
	r.Get("/api/submissions/{id}", h.SubmissionByID)
	r.Get("/api/options", h.Options)

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down server")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctxShutdown)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := Run(ctx); err != nil {
		os.Exit(1)
	}
}
