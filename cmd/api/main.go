package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"DietPlanChatbot/internal/auth"
	"DietPlanChatbot/internal/config"
	"DietPlanChatbot/internal/handler"
	"DietPlanChatbot/internal/llm"
	"DietPlanChatbot/internal/logging"
	"DietPlanChatbot/internal/metrics"
	"DietPlanChatbot/internal/prompt"
	"DietPlanChatbot/internal/service"
	"DietPlanChatbot/internal/storage"
)

// @title        Diet Plan Chatbot API
// @version      1.0
// @description  Profile-aware diet and nutrition assistant backed by a hosted language model.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in           header
// @name         Authorization
// @description  Type "Bearer" followed by a space and the JWT token.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "[Fatal] %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	slog.SetDefault(log)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()
	log.Info("database ready", "path", cfg.DatabasePath)

	systemPrompt, err := cfg.SystemPrompt()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	completer := llm.NewClient(llm.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	})

	// interfaces stay nil when voice is off so VoiceService reports it as disabled
	var (
		transcriber service.Transcriber
		synthesizer service.Synthesizer
	)
	if cfg.Voice.Enabled() {
		stt, err := llm.NewTranscriber(ctx, cfg.Voice.CredentialsFile, cfg.Voice.LanguageCode)
		if err != nil {
			return err
		}
		defer stt.Close()
		tts, err := llm.NewNarrator(ctx, cfg.Voice.CredentialsFile, cfg.Voice.LanguageCode, cfg.Voice.VoiceName)
		if err != nil {
			return err
		}
		defer tts.Close()
		transcriber, synthesizer = stt, tts
		log.Info("voice enabled", "language", cfg.Voice.LanguageCode)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.AccessTokenTTL)
	accounts := service.NewAccountService(store, store, tokens, log, m)
	chat := service.NewChatService(store, store, prompt.NewAssembler(systemPrompt), completer, log, m)
	voice := service.NewVoiceService(chat, transcriber, synthesizer)

	h := handler.New(accounts, chat, voice, store, log)
	router := newRouter(cfg, h, tokens, log, m, reg)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", "addr", cfg.HTTPAddr, "model", cfg.LLM.Model)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
