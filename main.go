package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/ecosync/cliparse"
	"github.com/danielhkuo/ecosync/db"
	"github.com/danielhkuo/ecosync/router"
	"github.com/danielhkuo/ecosync/seed"
	"github.com/danielhkuo/ecosync/session"
	"github.com/danielhkuo/ecosync/views"
)

func main() {
	var err error

	// Optional .env for local development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load mock data
	data, err := seed.Load(cfg.SeedFile)
	if err != nil {
		slog.Error("seed load failed", "error", err)
		os.Exit(1)
	}

	// Pick the session store
	store, dbConn, err := openStore(cfg)
	if err != nil {
		slog.Error("session store setup failed", "store", cfg.StoreType, "error", err)
		os.Exit(1)
	}
	if dbConn != nil {
		defer dbConn.Close()
	}
	slog.Info("Session store ready", "store", cfg.StoreType)

	renderer, err := views.NewRenderer()
	if err != nil {
		slog.Error("template parsing failed", "error", err)
		os.Exit(1)
	}

	manager := session.NewManager(store, data, cfg.ReportResetDelay)
	defer manager.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go manager.RunJanitor(ctx, cfg.SessionTTL, janitorInterval(cfg.SessionTTL))

	// Create router
	mux := router.NewRouter(manager, renderer, cfg)

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		cancel()
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore returns the configured session store. The *sql.DB is nil for
// the in-memory store.
func openStore(cfg cliparse.Config) (session.Store, *sql.DB, error) {
	if cfg.StoreType == cliparse.StoreMemory {
		return session.NewMemoryStore(), nil, nil
	}

	dialect := db.Dialect(cfg.StoreType)
	conn, err := db.Open(dialect, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	if err := db.CreateSchema(conn, dialect); err != nil {
		conn.Close()
		return nil, nil, err
	}
	return db.NewSessionStore(conn, dialect), conn, nil
}

// janitorInterval sweeps a few times per TTL, at most once a minute.
func janitorInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	return interval
}
