package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booktracker/internal/book"
	"booktracker/internal/slot"
)

func main() {
	loadEnvFiles()
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kv := mustOpenSlot(ctx, cfg)
	defer kv.Close()

	store, err := book.NewStore(ctx, slot.NewBookStorage(kv, cfg.SlotKey))
	if err != nil {
		log.Fatalf("cannot load books: %v", err)
	}
	log.Printf("loaded books: backend=%s count=%d", cfg.Backend, len(store.Collection()))

	limiter := newLimiter(cfg)
	defer limiter.Stop()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      newRouter(cfg, store, kv, limiter),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}()

	log.Printf("Starting server on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
	log.Println("server stopped")
}

// mustOpenSlot opens the configured backend. If it cannot be opened the
// service keeps running on an in-memory slot, without persistence.
func mustOpenSlot(ctx context.Context, cfg config) slot.KV {
	kv, err := slot.Open(ctx, slot.Options{
		Backend:    cfg.Backend,
		Dir:        cfg.StoragePath,
		SQLitePath: cfg.SQLitePath,
		DSN:        cfg.DatabaseDSN,
		Timeout:    cfg.DBTimeout,
	})
	if err == nil {
		return kv
	}
	switch cfg.Backend {
	case slot.BackendFile, slot.BackendSQLite, slot.BackendPostgres:
	default:
		log.Fatalf("cannot open storage: %v", err)
	}
	log.Printf("WARNING: cannot open %s storage: %v", cfg.Backend, err)
	log.Println("         falling back to in-memory store (no persistence)")
	return slot.NewMemorySlot()
}
