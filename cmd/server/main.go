// Command server runs the FiClear API: the public loan-eligibility endpoints
// and the admin back-office. Storage, audit transport and the corporate
// registry client are all optional and degrade to local fallbacks, so the
// binary runs with no external services at all during development.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ficlear/internal/audit"
	bankhandler "ficlear/internal/bank/handler"
	bankmetrics "ficlear/internal/bank/metrics"
	banksvc "ficlear/internal/bank/service"
	bankstore "ficlear/internal/bank/store"
	companyhandler "ficlear/internal/company/handler"
	"ficlear/internal/company/mca"
	companymetrics "ficlear/internal/company/metrics"
	companysvc "ficlear/internal/company/service"
	companystore "ficlear/internal/company/store"
	elighandler "ficlear/internal/eligibility/handler"
	eligmetrics "ficlear/internal/eligibility/metrics"
	"ficlear/internal/eligibility/rules"
	eligsvc "ficlear/internal/eligibility/service"
	offerhandler "ficlear/internal/offer/handler"
	offersvc "ficlear/internal/offer/service"
	offerstore "ficlear/internal/offer/store"
	pinhandler "ficlear/internal/pincode/handler"
	pinmetrics "ficlear/internal/pincode/metrics"
	pinsvc "ficlear/internal/pincode/service"
	pinstore "ficlear/internal/pincode/store"
	"ficlear/internal/platform/config"
	"ficlear/internal/platform/httpserver"
	"ficlear/internal/platform/logger"
	"ficlear/internal/platform/postgres"
	platformredis "ficlear/internal/platform/redis"
	settingshandler "ficlear/internal/settings/handler"
	settingssvc "ficlear/internal/settings/service"
	settingsstore "ficlear/internal/settings/store"
	httptransport "ficlear/internal/transport/http"
	"ficlear/pkg/secrets"
)

func main() {
	_ = godotenv.Load()

	cfg := config.FromEnv()
	log := logger.New()

	if cfg.AdminToken == "" {
		token, err := secrets.Generate()
		if err != nil {
			log.Error("could not generate admin token", "error", err)
			os.Exit(1)
		}
		cfg.AdminToken = token
		log.Warn("FICLEAR_ADMIN_TOKEN not set, generated one for this run", "token", token)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("redis connection failed", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
		log.Info("redis connected")
	}

	// The PIN-code directory is the one table big enough to want a real
	// database; everything else lives happily in Redis or memory.
	var directoryStore pinstore.Store
	switch {
	case cfg.Postgres.URL != "":
		pool, err := postgres.New(ctx, cfg.Postgres)
		if err != nil {
			log.Error("postgres connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		pg := pinstore.NewPostgres(pool.Pool)
		if err := pg.EnsureSchema(ctx); err != nil {
			log.Error("postgres schema bootstrap failed", "error", err)
			os.Exit(1)
		}
		directoryStore = pg
		log.Info("postgres connected, directory backed by postgres")
	case redisClient != nil:
		directoryStore = pinstore.NewRedis(redisClient.Client)
	default:
		directoryStore = pinstore.NewInMemory()
	}

	var (
		bankStore    bankstore.Store
		companyStore companystore.Store
		offerStore   offerstore.Store
		settingStore settingsstore.Store
	)
	if redisClient != nil {
		bankStore = bankstore.NewRedis(redisClient.Client)
		companyStore = companystore.NewRedis(redisClient.Client)
		offerStore = offerstore.NewRedis(redisClient.Client)
		settingStore = settingsstore.NewRedis(redisClient.Client)
	} else {
		bankStore = bankstore.NewInMemory()
		companyStore = companystore.NewInMemory()
		offerStore = offerstore.NewInMemory()
		settingStore = settingsstore.NewInMemory()
		log.Info("no redis configured, using in-memory stores")
	}

	var auditor audit.Publisher = audit.NewLogPublisher(log)
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher, err := audit.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log)
		if err != nil {
			log.Warn("kafka audit publisher unavailable, falling back to log", "error", err)
		} else {
			defer kafkaPublisher.Close()
			auditor = kafkaPublisher
			log.Info("audit events publishing to kafka", "topic", cfg.Kafka.Topic)
		}
	}

	if banks, err := bankStore.List(ctx); err == nil && len(banks) == 0 {
		seeded := bankstore.SeedDefaultBanks(ctx, bankStore)
		log.Info("seeded default bank catalog", "count", len(seeded))
	}

	bankService := banksvc.New(bankStore, log, auditor, bankmetrics.New())
	pinService := pinsvc.New(directoryStore, log, auditor, pinmetrics.New())
	companyService := companysvc.New(companyStore, mca.New(cfg.MCA, log), log, auditor, companymetrics.New())
	offerService := offersvc.New(offerStore, log, auditor)
	settingsService := settingssvc.New(settingStore, log, auditor)
	eligibilityService := eligsvc.New(bankService, pinService, log, eligmetrics.New(), rules.Options{
		StrictCibilCeiling: cfg.StrictCibilCeiling,
	})

	router := httptransport.NewRouter(httptransport.Handlers{
		Bank:        bankhandler.New(bankService, log),
		Pincode:     pinhandler.New(pinService, log),
		Company:     companyhandler.New(companyService, log),
		Offer:       offerhandler.New(offerService, log),
		Settings:    settingshandler.New(settingsService, cfg.AdminToken, log),
		Eligibility: elighandler.New(eligibilityService, log),
	}, cfg.AdminToken, log)

	srv := httpserver.New(cfg.Addr, router)

	go func() {
		log.Info("server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}
