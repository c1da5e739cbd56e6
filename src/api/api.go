package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agentic-commerce/ap2-sim/src/agents/credentials"
	"github.com/agentic-commerce/ap2-sim/src/agents/merchant"
	"github.com/agentic-commerce/ap2-sim/src/agents/processor"
	"github.com/agentic-commerce/ap2-sim/src/agents/shopping"
	"github.com/agentic-commerce/ap2-sim/src/api/config"
	"github.com/agentic-commerce/ap2-sim/src/api/data"
	"github.com/agentic-commerce/ap2-sim/src/api/webserver"
	"github.com/agentic-commerce/ap2-sim/src/catalog"
)

func main() {
	cfg := config.Load()

	var searcher catalog.Searcher = catalog.NewOpenRouter(cfg.OpenRouterKey, cfg.Model, cfg.MerchantName)
	if cfg.OpenRouterKey == "" {
		log.Printf("OPENROUTER_API_KEY not set; catalog lookups will report unavailable")
	}
	if cfg.RedisURL != "" {
		searcher = catalog.NewCached(searcher, data.MustRedis(cfg.RedisURL))
	}

	merchantAgent := merchant.New(cfg.MerchantName, searcher)
	credAgent := credentials.New(credentials.DefaultName)
	payAgent := processor.New(processor.DefaultName)
	shopper := shopping.New(shopping.Config{
		Merchant:    merchantAgent,
		Credentials: credAgent,
		Processor:   payAgent,
		Timeout:     time.Duration(cfg.SearchTimeout) * time.Second,
	})

	router := webserver.New(shopper, credAgent)
	httpSrv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http: %v", err)
		}
	}()
	log.Printf("AP2 sim API listening on %s", cfg.Port)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutCtx, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()
	_ = httpSrv.Shutdown(shutCtx)
}
