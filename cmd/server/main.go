package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"tracegrid/internal/assessment"
	"tracegrid/internal/audit"
	"tracegrid/internal/platform/config"
	"tracegrid/internal/platform/httpserver"
	"tracegrid/internal/platform/logger"
	"tracegrid/internal/platform/metrics"
	platformredis "tracegrid/internal/platform/redis"
	"tracegrid/internal/platform/token"
	"tracegrid/internal/project"
	httptransport "tracegrid/internal/transport/http"
)

const auditInboxSize = 256

// main wires dependencies and owns the process lifecycle. Business logic
// lives in the internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Server, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Stores: PostgreSQL when configured, in-memory otherwise.
	stores := project.NewInMemoryStores()
	var auditStore audit.Store = audit.NewInMemoryStore()
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return err
		}
		if err := project.Migrate(ctx, db); err != nil {
			return err
		}
		if err := audit.Migrate(ctx, db); err != nil {
			return err
		}
		stores = project.NewPostgresStores(db)
		auditStore = audit.NewPostgresStore(db)
		log.Info("using postgres stores")
	} else {
		log.Info("using in-memory stores")
	}

	// Audit trail: channel publisher feeding a background worker.
	inbox := make(chan audit.Event, auditInboxSize)
	publisher := audit.NewPublisher(inbox, log)
	worker := audit.NewWorker(auditStore, inbox, log)
	if len(cfg.Kafka.Brokers) > 0 {
		kafka, err := audit.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			return err
		}
		defer kafka.Close()
		worker = worker.WithKafka(kafka)
		log.Info("audit kafka publisher enabled", "topic", cfg.Kafka.Topic)
	}
	workerDone := make(chan struct{})
	go func() {
		defer close(workerDone)
		if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("audit worker stopped", "error", err)
		}
	}()

	projects, err := project.New(stores,
		project.WithLogger(log),
		project.WithMetrics(m),
		project.WithAuditor(publisher),
	)
	if err != nil {
		return err
	}

	assessOpts := []assessment.Option{
		assessment.WithLogger(log),
		assessment.WithMetrics(m),
		assessment.WithAuditor(publisher),
	}
	rdb, err := platformredis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
		assessOpts = append(assessOpts,
			assessment.WithCache(assessment.NewRedisCache(rdb), cfg.AssessmentCacheTTL))
		log.Info("assessment report cache enabled", "ttl", cfg.AssessmentCacheTTL)
	}
	assessments, err := assessment.New(projects, cfg.Thresholds, assessOpts...)
	if err != nil {
		return err
	}

	handlerOpts := []httptransport.Option{
		httptransport.WithAuditReader(auditStore),
		httptransport.WithMetrics(m),
	}
	if cfg.AuthSigningKey != "" {
		handlerOpts = append(handlerOpts,
			httptransport.WithTokenValidator(token.NewService(cfg.AuthSigningKey, "tracegrid")))
		log.Info("bearer auth enabled")
	}
	handler := httptransport.NewHandler(projects, assessments, cfg.Thresholds, log, handlerOpts...)

	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler))
	srvErr := make(chan error, 1)
	go func() {
		log.Info("starting tracegrid", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
	}()

	select {
	case err := <-srvErr:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-workerDone
	return nil
}
