package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"

	"loandraft/internal/audit"
	auditpublisher "loandraft/internal/audit/publisher"
	auditpg "loandraft/internal/audit/store/postgres"
	"loandraft/internal/draft/handler"
	"loandraft/internal/draft/service"
	draftstore "loandraft/internal/draft/store"
	"loandraft/internal/platform/config"
	"loandraft/internal/platform/httpserver"
	"loandraft/internal/platform/logger"
	"loandraft/internal/platform/metrics"
	platformmw "loandraft/internal/platform/middleware"
	platformredis "loandraft/internal/platform/redis"
	"loandraft/internal/verification/cache"
	"loandraft/internal/verification/clients"
	vmetrics "loandraft/internal/verification/metrics"
	"loandraft/internal/verification/orchestrator"
	"loandraft/internal/verification/persist"
	vstore "loandraft/internal/verification/store"
)

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal packages.
func main() {
	_ = godotenv.Load()

	log := logger.New()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Error("configuration error", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Error("database unreachable", "error", err)
		os.Exit(1)
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	var cmdable goredis.Cmdable
	if redisClient != nil {
		cmdable = redisClient
		defer redisClient.Close()
	}

	var sink audit.Sink
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := auditpublisher.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		if err != nil {
			log.Error("kafka connection failed", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()
		sink = kafka
	}

	sharedMetrics := metrics.New()
	verifyMetrics := vmetrics.New()
	auditor := audit.NewRecorder(auditpg.New(db), sink, log)

	phones := clients.NewPhoneClient(cfg.Verification.PhoneBaseURL, cfg.Verification.CallTimeout)
	emails := clients.NewEmailClient(cfg.Verification.EmailBaseURL, cfg.Verification.CallTimeout)
	addresses := clients.NewAddressClient(cfg.Verification.AddressBaseURL, cfg.Verification.CallTimeout)
	cachedAddresses := cache.New(addresses, cmdable, cfg.Redis.TTL, log, verifyMetrics)

	verifier := orchestrator.New(phones, emails, cachedAddresses, cfg.Verification.CallTimeout, log, verifyMetrics)
	contacts := vstore.NewPostgres(db)
	persister := persist.New(contacts, auditor, log, sharedMetrics)
	drafts := draftstore.NewPostgres(db)

	draftService := service.New(verifier, persister, contacts, drafts, auditor, log, sharedMetrics)

	router := chi.NewRouter()
	router.Use(platformmw.Latency(sharedMetrics))
	handler.New(draftService, log, cfg.APIKey).Register(router)
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	router.Handle("/metrics", promhttp.Handler())

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting loandraft", "addr", cfg.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
