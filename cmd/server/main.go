package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "testpro/docs"
	"testpro/internal/config"
	"testpro/internal/extract/pdf"
	"testpro/internal/handler"
	"testpro/internal/quizgen"
	"testpro/internal/repository/postgres"
	"testpro/internal/router"
	"testpro/internal/service"
	"testpro/internal/storage"
)

// @title TestPro API
// @version 1.0
// @description Generates multiple-choice tests from PDF documents and manages a test catalog.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Generation pipeline
	extractor := pdf.NewDocconvExtractor()
	generator := quizgen.New(generatorConfig(&cfg.Generator))
	generationSvc := service.NewGenerationService(extractor, generator, &cfg.Upload)
	authSvc := service.NewAuthService(cfg.JWT)

	genH := handler.NewGenerationHandler(generationSvc, cfg.Upload.MaxBytes())

	// Catalog is optional; without a database only the stateless endpoints are served.
	var testH *handler.TestHandler
	healthH := handler.NewHealthHandler(nil)
	if cfg.DB.Enabled {
		db, err := postgres.NewDB(&cfg.DB)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()

		store, err := storage.New(&cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}

		testRepo := postgres.NewTestRepo(db)
		testSvc := service.NewTestService(testRepo, store, generationSvc, &cfg.Upload)
		testH = handler.NewTestHandler(testSvc, cfg.Upload.MaxBytes())
		healthH = handler.NewHealthHandler(testRepo)
		log.Printf("catalog enabled (storage: %s)", cfg.Storage.Provider)
	} else {
		log.Printf("catalog disabled; serving generation endpoints only")
	}

	r := router.Setup(cfg, authSvc, genH, testH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

func generatorConfig(cfg *config.GeneratorConfig) quizgen.Config {
	return quizgen.Config{
		MinSentenceLen:       cfg.MinSentenceLen,
		MinParagraphLen:      cfg.MinParagraphLen,
		MinWordLen:           cfg.MinWordLen,
		KeyTermCount:         cfg.KeyTermCount,
		SentencesPerQuestion: cfg.SentencesPerQuestion,
		MaxPerDocument:       cfg.MaxPerDocument,
		MaxQuestions:         cfg.MaxQuestions,
		ExcerptLen:           cfg.ExcerptLen,
	}
}
