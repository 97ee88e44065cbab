package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"blocktrust/internal/audit"
	"blocktrust/internal/credential/resolver"
	credentialStore "blocktrust/internal/credential/store"
	"blocktrust/internal/failsafe/service"
	failsafeStore "blocktrust/internal/failsafe/store"
	historyStore "blocktrust/internal/history/store"
	jwttoken "blocktrust/internal/jwt_token"
	"blocktrust/internal/platform/config"
	"blocktrust/internal/platform/db"
	"blocktrust/internal/platform/httpserver"
	"blocktrust/internal/platform/logger"
	"blocktrust/internal/platform/metrics"
	"blocktrust/internal/platform/redis"
	"blocktrust/internal/ratelimit/authlockout"
	"blocktrust/internal/registry"
	httptransport "blocktrust/internal/transport/http"
	"blocktrust/internal/wallet/keymanager"
	"blocktrust/internal/wallet/signer"
	walletStore "blocktrust/internal/wallet/store"
)

const shutdownTimeout = 15 * time.Second

// main wires dependencies and owns the process lifecycle. Everything degrades
// to an in-process implementation when its backend is not configured, so a
// bare `go run ./cmd/server` brings up a working single-node instance.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	if err := run(cfg, log); err != nil {
		log.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	// Stores: Postgres when configured, in-memory otherwise.
	var (
		wallets service.WalletStore
		creds   service.CredentialStore
		events  service.FailsafeStore
		history service.HistoryStore
	)
	pg, err := db.Open(cfg.Postgres)
	if err != nil {
		return err
	}
	if pg != nil {
		defer pg.Close()
		wallets = walletStore.NewPostgres(pg)
		creds = credentialStore.NewPostgres(pg)
		events = failsafeStore.NewPostgres(pg)
		history = historyStore.NewPostgres(pg)
		log.Info("using postgres stores")
	} else {
		wallets = walletStore.NewInMemory()
		creds = credentialStore.NewInMemory()
		events = failsafeStore.NewInMemory()
		history = historyStore.NewInMemory()
		log.Warn("POSTGRES_DSN not set, using in-memory stores")
	}

	// Lockout counters: shared via Redis when available.
	var lockoutStore authlockout.Store
	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
		lockoutStore = authlockout.NewRedis(redisClient, authlockout.DefaultWindow)
	} else {
		lockoutStore = authlockout.NewInMemory(authlockout.DefaultWindow)
		log.Warn("REDIS_URL not set, lockout state is per-process")
	}
	lockout := authlockout.NewService(lockoutStore, authlockout.WithLogger(log))

	// Audit trail: Kafka when brokers are configured.
	var auditPub audit.Publisher = audit.NewMemoryPublisher()
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPub, err := audit.NewKafkaPublisher(cfg.Kafka, log)
		if err != nil {
			return err
		}
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := kafkaPub.Close(flushCtx); err != nil {
				log.Warn("flushing audit events failed", slog.String("error", err.Error()))
			}
		}()
		auditPub = kafkaPub
	} else {
		log.Warn("KAFKA_BROKERS not set, audit events stay in memory")
	}

	// Identity registry: real chain client when an RPC endpoint is configured.
	var reg registry.Client
	if cfg.Registry.RPCURL != "" {
		reg, err = registry.NewEthereum(cfg.Registry)
		if err != nil {
			return err
		}
		log.Info("using on-chain identity registry",
			slog.String("contract", cfg.Registry.ContractAddress),
			slog.Int64("chain_id", cfg.Registry.ChainID))
	} else {
		reg = registry.NewMemory()
		log.Warn("REGISTRY_RPC_URL not set, using in-process registry")
	}

	classifier, err := resolver.New()
	if err != nil {
		return err
	}

	orchestrator := service.New(
		wallets,
		creds,
		events,
		history,
		reg,
		keymanager.New(cfg.Crypto.KDFIterations),
		signer.New(cfg.Registry.ChainID),
		classifier,
		service.WithLogger(log),
		service.WithAuditPublisher(auditPub),
		service.WithMetrics(m),
		service.WithLockout(lockout),
	)

	jwtService := jwttoken.NewJWTService(cfg.Server.JWTSigningKey, "blocktrust", "blocktrust-api")
	router := httptransport.NewRouter(
		httptransport.NewWalletHandler(orchestrator),
		httptransport.NewFailsafeHandler(orchestrator),
		jwtService,
		m,
		log,
	)
	srv := httpserver.New(cfg.Server.Addr, router)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting blocktrust", slog.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		// In-flight duress revocations finish before the process exits.
		return orchestrator.Close(shutdownCtx)
	})

	return g.Wait()
}
