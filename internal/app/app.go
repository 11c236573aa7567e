package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	config "github.com/myapplevix/store-backend/internal/cfg"
	v1Http "github.com/myapplevix/store-backend/internal/delivery/v1/http"
	"github.com/myapplevix/store-backend/internal/infrastructure/auth"
	"github.com/myapplevix/store-backend/internal/infrastructure/kafka"
	minioInfra "github.com/myapplevix/store-backend/internal/infrastructure/minio"
	"github.com/myapplevix/store-backend/internal/notify"
	s3Repo "github.com/myapplevix/store-backend/internal/repository/minio"
	"github.com/myapplevix/store-backend/internal/repository/pgdb"
	pgdbConv "github.com/myapplevix/store-backend/internal/repository/pgdb/converter"
	"github.com/myapplevix/store-backend/internal/repository/redis"
	redisConv "github.com/myapplevix/store-backend/internal/repository/redis/converter"
	"github.com/myapplevix/store-backend/internal/usecase"
	"github.com/myapplevix/store-backend/pkg/clients"
	"github.com/myapplevix/store-backend/pkg/closer"
	"github.com/myapplevix/store-backend/pkg/e"
	"github.com/myapplevix/store-backend/pkg/logger"
	"github.com/myapplevix/store-backend/pkg/postgres"
)

const (
	initTimeout     = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

// Run wires the whole application together and blocks until shutdown.
func Run() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	shutdownCloser := closer.NewCloser(2 * time.Second)

	// Background work (image cleanup) is tied to this context, so it
	// survives request cancellation but not shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	db, err := initPGDB(log, cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	shutdownCloser.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	minioClient, err := clients.NewMinIOClient(cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), initTimeout)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		log.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(redisCtx); err != nil {
		redisCancel()
		log.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	redisCancel()
	shutdownCloser.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(initTimeout); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}
	shutdownCloser.Add(func(ctx context.Context) error {
		return producer.Close()
	})

	productConv := pgdbConv.NewProductConverter()
	configConv := pgdbConv.NewStoreConfigurationConverter()
	cacheConv := redisConv.NewProductConverter()

	productRepo := pgdb.NewProductRepo(db.Pool, productConv)
	configRepo := pgdb.NewConfigRepo(db.Pool, configConv)
	cacheRepo := redis.NewCacheRepo(redisClient, cacheConv, cfg.Redis, log)
	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	uploader := minioInfra.NewUploader(imageRepo, cfg.Minio.BucketName, log, appCtx)
	shutdownCloser.Add(func(ctx context.Context) error {
		return uploader.WaitForCleanup(ctx)
	})

	coordinator := notify.NewCoordinator(notify.DefaultToastTTL)
	verifier := auth.NewStaticVerifier(cfg.Admin.Token)

	lifecycleUC := usecase.NewLifecycleUC(productRepo, cacheRepo, producer, log)
	configUC := usecase.NewConfigUC(configRepo, uploader, log)
	catalogUC := usecase.NewCatalogUC(productRepo, configRepo, cacheRepo, log)
	adminUC := usecase.NewAdminUC(lifecycleUC, configUC, uploader, coordinator, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(adminUC, catalogUC, verifier)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	shutdownCloser.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	appCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := shutdownCloser.Close(shutdownCtx); err != nil {
		log.Warnf("shutdown: %s", err.Error())
	}

	log.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(log logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		log.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(log); err != nil {
		log.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		log.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
