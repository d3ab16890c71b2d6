package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"blackjack-lite/apps/server/internal/gateway"
	"blackjack-lite/blackjack"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func main() {
	_ = godotenv.Load()

	cfg := blackjack.Config{
		Decks:          atoiDef(os.Getenv("DECKS"), 6),
		InitialBalance: int64(atoiDef(os.Getenv("BALANCE"), 1000)),
		Seed:           int64(atoiDef(os.Getenv("SEED"), 0)),
	}
	if err := blackjack.ValidateConfig(cfg); err != nil {
		log.Fatalf("[Server] Invalid table config: %v", err)
	}

	gw := gateway.New(cfg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Get("/ws", gw.HandleWebSocket)
	r.Get("/api/config", gw.HandleConfig)
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	addr := getenv("ADDR", ":8080")
	log.Printf("[Server] Table config: decks=%d balance=%d", cfg.Decks, cfg.InitialBalance)
	log.Printf("[Server] Starting WebSocket server on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("[Server] Failed to start: %v", err)
	}
}
