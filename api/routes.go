// Package api mounts the bridge's HTTP surface onto a gorilla router. The
// bridge listens on loopback only; the shell is its single client.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"limelight/handlers"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// corsMiddleware handles CORS for API routes
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "*")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestIDMiddleware tags every request so log lines from one call can be
// correlated.
func requestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func accessLogMiddleware(next http.Handler) http.Handler {
	log := slog.Default().With("component", "api")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start),
			"request_id", w.Header().Get("X-Request-ID"),
		)
	})
}

// Register mounts API endpoints onto the provided router.
func Register(
	r *mux.Router,
	sessionHandler *handlers.SessionHandler,
	webmanagerHandler *handlers.WebmanagerHandler,
	jobsHandler *handlers.JobsHandler,
	videosHandler *handlers.VideosHandler,
	galleryHandler *handlers.GalleryHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	themesHandler *handlers.ThemesHandler,
	onboardingHandler *handlers.OnboardingHandler,
) {
	api := r.PathPrefix("/api").Subrouter()

	api.Use(corsMiddleware)
	api.Use(requestIDMiddleware)
	api.Use(accessLogMiddleware)

	// Session and website selection
	api.HandleFunc("/session/token", sessionHandler.SetToken).Methods(http.MethodPost)
	api.HandleFunc("/session/user", sessionHandler.SetUser).Methods(http.MethodPost)
	api.HandleFunc("/session/status", sessionHandler.Status).Methods(http.MethodGet)
	api.HandleFunc("/session/refresh", sessionHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/websites", sessionHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/websites/selected", sessionHandler.Selected).Methods(http.MethodGet)
	api.HandleFunc("/websites/{websiteID}/select", sessionHandler.Select).Methods(http.MethodPost)

	// Draft editing
	api.HandleFunc("/webmanager/draft", webmanagerHandler.Draft).Methods(http.MethodGet)
	api.HandleFunc("/webmanager/field", webmanagerHandler.UpdateField).Methods(http.MethodPut)
	api.HandleFunc("/webmanager/save", webmanagerHandler.Save).Methods(http.MethodPost)

	// Events
	api.HandleFunc("/jobs", jobsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/jobs/refresh", jobsHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/jobs", jobsHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/jobs", jobsHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/jobs/{jobID}", jobsHandler.Delete).Methods(http.MethodDelete)

	// Videos
	api.HandleFunc("/videos", videosHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/videos/refresh", videosHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/videos", videosHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/videos", videosHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/videos/{videoID}", videosHandler.Delete).Methods(http.MethodDelete)

	// Gallery
	api.HandleFunc("/gallery", galleryHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/gallery/refresh", galleryHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/gallery/upload", galleryHandler.Upload).Methods(http.MethodPost)
	api.HandleFunc("/gallery/favorites", galleryHandler.Favorites).Methods(http.MethodGet)
	api.HandleFunc("/gallery/favorites", galleryHandler.UpdateFavorites).Methods(http.MethodPut)
	api.HandleFunc("/gallery/favorites/{imageID}/toggle", galleryHandler.ToggleFavorite).Methods(http.MethodPost)
	api.HandleFunc("/gallery/{providerID}", galleryHandler.Delete).Methods(http.MethodDelete)

	// Subscription
	api.HandleFunc("/subscription/plans", subscriptionHandler.Plans).Methods(http.MethodGet)
	api.HandleFunc("/subscription/upgrade", subscriptionHandler.Upgrade).Methods(http.MethodPost)

	// Themes
	api.HandleFunc("/themes/current", themesHandler.Current).Methods(http.MethodGet)
	api.HandleFunc("/themes/{templateID}", themesHandler.ForTemplate).Methods(http.MethodGet)

	// Onboarding wizard
	api.HandleFunc("/onboarding", onboardingHandler.State).Methods(http.MethodGet)
	api.HandleFunc("/onboarding/fields", onboardingHandler.SetFields).Methods(http.MethodPut)
	api.HandleFunc("/onboarding/next", onboardingHandler.Next).Methods(http.MethodPost)
	api.HandleFunc("/onboarding/back", onboardingHandler.Back).Methods(http.MethodPost)
}
