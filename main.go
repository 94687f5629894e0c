package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"limelight/api"
	"limelight/auth"
	"limelight/config"
	"limelight/handlers"
	"limelight/models"
	"limelight/services/gallery"
	"limelight/services/jobs"
	"limelight/services/media"
	"limelight/services/onboarding"
	"limelight/services/platform"
	"limelight/services/session"
	"limelight/services/subscription"
	"limelight/services/syncer"
	"limelight/services/themes"
	"limelight/services/videos"
	"limelight/services/webmanager"

	"github.com/gorilla/mux"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	portOverride := flag.Int("port", 0, "override server port from config")
	flag.Parse()

	fmt.Println("Limelight bridge starting...")

	configPath := os.Getenv("LIMELIGHT_CONFIG")
	if configPath == "" {
		configPath = filepath.Join("cache", "settings.json")
	}

	cfgManager := config.NewManager(configPath)
	settings, err := cfgManager.Load()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	// Set up file logging with rotation
	logWriter := io.Writer(os.Stdout)
	if settings.Log.File != "" {
		logDir := filepath.Dir(settings.Log.File)
		if err := os.MkdirAll(logDir, 0o755); err != nil {
			log.Printf("Warning: could not create log directory %s: %v", logDir, err)
		} else {
			fileWriter := &lumberjack.Logger{
				Filename:   settings.Log.File,
				MaxSize:    settings.Log.MaxSize,
				MaxBackups: settings.Log.MaxBackups,
				MaxAge:     settings.Log.MaxAge,
				Compress:   settings.Log.Compress,
			}
			logWriter = io.MultiWriter(os.Stdout, fileWriter)
			log.SetOutput(logWriter)
			log.Printf("Logging to file: %s", settings.Log.File)
		}
	}

	level := slog.LevelInfo
	if settings.Log.Level == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{Level: level})))

	if *portOverride > 0 {
		settings.Server.Port = *portOverride
	}

	// Platform client and shared token store
	client := platform.NewClient(settings.Platform.BaseURL)
	tokens := auth.NewTokenStore()

	// Session first; every collection hangs off its selection
	sessionSvc := session.NewService(client, tokens)
	jobsSvc := jobs.NewService(client, tokens, sessionSvc)
	videosSvc := videos.NewService(client, tokens, sessionSvc)
	gallerySvc := gallery.NewService(client, tokens, sessionSvc)
	webmanagerSvc := webmanager.NewService(client, tokens, sessionSvc)
	themesSvc := themes.NewService(sessionSvc)
	subscriptionSvc := subscription.NewService(client, tokens, sessionSvc)
	wizard := onboarding.NewWizard(client, tokens, sessionSvc)
	uploader := media.NewUploader(settings.Platform.MediaURL)

	// Selection changes reload the draft and fan a refresh out to every
	// collection
	sync := syncer.New()
	sync.Register("jobs", jobsSvc)
	sync.Register("videos", videosSvc)
	sync.Register("gallery", gallerySvc)
	sessionSvc.OnSelect(func(site models.Website) {
		webmanagerSvc.Load(site)
		if err := sync.RefreshAll(); err != nil {
			slog.Warn("refresh after selection change", "error", err)
		}
	})

	r := mux.NewRouter()
	api.Register(
		r,
		handlers.NewSessionHandler(sessionSvc, tokens, sync),
		handlers.NewWebmanagerHandler(webmanagerSvc),
		handlers.NewJobsHandler(jobsSvc),
		handlers.NewVideosHandler(videosSvc),
		handlers.NewGalleryHandler(gallerySvc, uploader),
		handlers.NewSubscriptionHandler(subscriptionSvc),
		handlers.NewThemesHandler(themesSvc),
		handlers.NewOnboardingHandler(wizard),
	)

	addr := fmt.Sprintf("%s:%d", settings.Server.Host, settings.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-shutdownChan
	log.Println("Shutdown signal received, cleaning up...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Shutdown complete")
}
