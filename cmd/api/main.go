package main

import (
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jaskrrish/Go-QSim/internal/config"
	"github.com/jaskrrish/Go-QSim/internal/handlers"
	"github.com/jaskrrish/Go-QSim/internal/qsim"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "qsim",
	})

	// Settings come from QSIM_* variables, optionally layered over a file
	cfg, err := config.Load(os.Getenv("QSIM_CONFIG"))
	if err != nil {
		logger.Fatal("failed to load configuration", "err", err)
	}
	logger.SetLevel(cfg.Level())

	// Create a new HTTP multiplexer
	mux := http.NewServeMux()

	sessions := qsim.NewSessionManager(cfg.MaxQubits, logger.WithPrefix("sessions"))
	simHandler := handlers.NewSimHandler(sessions, int(cfg.SessionTTL/time.Minute))

	// Register service routes
	mux.HandleFunc("/", handlers.HomeHandler)
	mux.HandleFunc("/health", handlers.HealthHandler)

	// Register simulator routes
	mux.HandleFunc("/api/v1/sim/health", simHandler.HealthCheckHandler)
	mux.HandleFunc("/api/v1/sim/session", simHandler.CreateSessionHandler)
	mux.HandleFunc("/api/v1/sim/session/", simHandler.SessionHandler)

	go cleanupLoop(sessions, cfg.CleanupInterval, logger)

	// Create server with timeouts
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      loggingMiddleware(mux, logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	logger.Info("server starting", "port", cfg.Port, "max_qubits", sessions.MaxQubits())
	if err := server.ListenAndServe(); err != nil {
		logger.Fatal("server failed to start", "err", err)
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request", "method", r.Method, "uri", r.RequestURI, "remote", r.RemoteAddr, "elapsed", time.Since(start))
	})
}

// cleanupLoop evicts expired sessions until the process exits
func cleanupLoop(sessions *qsim.SessionManager, interval time.Duration, logger *log.Logger) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		if removed := sessions.CleanupExpiredSessions(); removed > 0 {
			logger.Info("cleaned up expired sessions", "removed", removed, "remaining", sessions.Count())
		}
	}
}
