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
	config "github.com/vidyarthi-tech/face-backend/internal/cfg"
	v1Grpc "github.com/vidyarthi-tech/face-backend/internal/delivery/v1/grpc"
	v1Http "github.com/vidyarthi-tech/face-backend/internal/delivery/v1/http"
	"github.com/vidyarthi-tech/face-backend/internal/delivery/v1/ws"
	"github.com/vidyarthi-tech/face-backend/internal/infrastructure/kafka"
	minioInfra "github.com/vidyarthi-tech/face-backend/internal/infrastructure/minio"
	ml_service "github.com/vidyarthi-tech/face-backend/internal/infrastructure/ml-service"
	"github.com/vidyarthi-tech/face-backend/internal/proto"
	s3Repo "github.com/vidyarthi-tech/face-backend/internal/repository/minio"
	"github.com/vidyarthi-tech/face-backend/internal/repository/pgdb"
	pgdbConv "github.com/vidyarthi-tech/face-backend/internal/repository/pgdb/converter/generated"
	qdrantRepo "github.com/vidyarthi-tech/face-backend/internal/repository/qdrant"
	"github.com/vidyarthi-tech/face-backend/internal/repository/redis"
	redisConv "github.com/vidyarthi-tech/face-backend/internal/repository/redis/converter/generated"
	"github.com/vidyarthi-tech/face-backend/internal/usecase"
	"github.com/vidyarthi-tech/face-backend/pkg/clients"
	"github.com/vidyarthi-tech/face-backend/pkg/closer"
	"github.com/vidyarthi-tech/face-backend/pkg/e"
	"github.com/vidyarthi-tech/face-backend/pkg/logger"
	"github.com/vidyarthi-tech/face-backend/pkg/postgres"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func Run() {
	log := logger.NewSlogLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	shutdownCloser := closer.New(2 * time.Second)

	db, err := initPGDB(log, cfg)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	shutdownCloser.Add(func(context.Context) error {
		db.Close()
		return nil
	})

	studentConv := &pgdbConv.StudentConverterImpl{}
	outboxConv := &pgdbConv.OutboxEventConverterImpl{}
	rosterConv := &redisConv.RosterConverterImpl{}

	studentRepo := pgdb.NewStudentRepo(db.Pool, studentConv)
	outboxRepo := pgdb.NewOutboxEventRepo(db.Pool, outboxConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		log.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Ping(redisCtx); err != nil {
		redisCancel()
		log.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	redisCancel()
	shutdownCloser.Add(func(context.Context) error {
		return redisClient.Client.Close()
	})

	cacheRepo := redis.NewCacheRepo(redisClient, rosterConv, cfg.Redis, log)

	// ANN-индекс опционален: при выключенном Qdrant резолвер работает полным перебором
	var annIndex usecase.AnnIndex
	if cfg.Qdrant.Enabled {
		qdrantClient, err := clients.NewQdrantClient(cfg.Qdrant)
		if err != nil {
			log.Errorf(err, "failed to initialize qdrant")
			os.Exit(1)
		}

		qdrantCtx, qdrantCancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := clients.EnsureCollection(qdrantCtx, qdrantClient); err != nil {
			qdrantCancel()
			log.Errorf(err, "failed to initialize qdrant collection")
			os.Exit(1)
		}
		qdrantCancel()

		shutdownCloser.Add(func(context.Context) error {
			return qdrantClient.Client.Close()
		})

		annIndex = qdrantRepo.NewEmbeddingRepo(qdrantClient.Client, cfg.Qdrant)
	}

	conn, err := grpc.NewClient(
		cfg.Ml.Addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()), // явное указание gRPC-клиенту использовать НЕзащищённое соединение (без TLS).
	)
	if err != nil {
		log.Errorf(err, "failed to initialize grpc client")
		os.Exit(1)
	}
	shutdownCloser.Add(func(context.Context) error {
		return conn.Close()
	})

	mlClient := proto.NewMachineLearningServiceClient(conn)
	ml := ml_service.NewMLService(mlClient, cfg.Ml.MaxConcurrent, cfg.Ml.MaxRetries, log)

	// appCtx живёт дольше серверов: на нём висят фоновые компенсации MinIO
	// и воркер outbox
	appCtx, appCancel := context.WithCancel(context.Background())
	shutdownCloser.Add(func(context.Context) error {
		appCancel()
		return nil
	})

	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, log, appCtx)
	shutdownCloser.Add(func(ctx context.Context) error {
		return imagesInfra.WaitForCleanup(ctx)
	})

	producer, err := kafka.NewProducer(log, cfg.Kafka)
	if err != nil {
		log.Errorf(err, "failed to initialize kafka producer")
		os.Exit(1)
	}
	if err := producer.EnsureTopic(10 * time.Second); err != nil {
		log.Errorf(err, "failed to ensure kafka topic")
		os.Exit(1)
	}
	shutdownCloser.Add(func(context.Context) error {
		return producer.Close()
	})

	outboxWorker := kafka.NewOutboxWorker(outboxRepo, log, producer, db.Dsn)
	outboxWorker.Start(appCtx)
	shutdownCloser.Add(func(context.Context) error {
		outboxWorker.Stop()
		return nil
	})

	resolver := usecase.NewResolver(cfg.Recognition.Threshold)
	faceUC := usecase.NewFaceUC(
		studentRepo,
		db.Pool,
		ml,
		imagesInfra,
		annIndex,
		cacheRepo,
		outboxRepo,
		producer,
		resolver,
		cfg.Recognition,
		log,
	)
	predictUC := usecase.NewPredictUC(ml, log)

	grpcSrv := v1Grpc.NewGRPCServer(cfg.Grpc)
	grpcSrv.RegisterServices(faceUC, log)

	grpcErrCh := make(chan error, 1)
	go func() {
		log.Infof("gRPC server starting on %s:%s", cfg.Grpc.NetworkMode, cfg.Grpc.Port)
		if err := grpcSrv.Start(); err != nil {
			log.Errorf(err, "gRPC server failed")
			grpcErrCh <- err
		}
	}()
	shutdownCloser.Add(func(ctx context.Context) error {
		return grpcSrv.Stop(ctx)
	})

	wsHandler := ws.NewHandler(faceUC, cfg.Recognition, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(faceUC, predictUC, wsHandler)

	httpSrv := v1Http.NewServer(r, cfg.Http)

	errCh := make(chan error, 1)
	go func() {
		log.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()
	shutdownCloser.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		log.Errorf(appErr, "HTTP server fatal error")
	case appErr = <-grpcErrCh:
		log.Errorf(appErr, "gRPC server fatal error")
	case <-shutdown:
		log.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown: ресурсы закрываются в обратном порядке запуска ===
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := shutdownCloser.Close(shutdownCtx); err != nil {
		log.Warnf("Shutdown finished with errors: %v", err)
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
