package http

import (
	"net/http"

	"onboard/internal/config"
	"onboard/internal/logging"
	"onboard/internal/user"
)

// NewRouter wires the onboarding API endpoints with the middleware chain.
func NewRouter(configStore config.Store, userStore user.Store, allowedOrigins []string) http.Handler {
	logger := logging.NewComponentLogger("Router")

	configHandler := NewConfigHandler(configStore)
	userHandler := NewUserHandler(userStore)

	mux := http.NewServeMux()

	mux.Handle("/api/config", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			configHandler.HandleGet(w, r)
		case http.MethodPost:
			configHandler.HandleReplace(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	mux.Handle("/api/users", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			userHandler.HandleCreate(w, r)
		case http.MethodGet:
			userHandler.HandleList(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	}))

	// Legacy list alias kept for drifted clients.
	mux.Handle("/api/user/all", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		userHandler.HandleList(w, r)
	}))

	mux.Handle("/health", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}))

	var handler http.Handler = mux
	handler = LoggingMiddleware(logger)(handler)
	handler = RequestIDMiddleware()(handler)
	handler = CORSMiddleware(allowedOrigins)(handler)

	return handler
}
