package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/lexruntimev2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"synapseops/synapseops/config"
	"synapseops/synapseops/controllers"
	"synapseops/synapseops/middlewares"
	"synapseops/synapseops/resolver"
	"synapseops/synapseops/routes"
	"synapseops/synapseops/sources/psql"
	"synapseops/synapseops/sources/psql/dao"
	"synapseops/synapseops/sources/storage"
	"synapseops/synapseops/store"
	"synapseops/synapseops/utils/logging"
)

func main() {
	logging.InitLogger()
	cfg := config.LoadConfig()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var transcripts store.TranscriptStore
	if cfg.Store == config.StorePostgres {
		db, err := psql.NewDatabase(ctx, cfg)
		if err != nil {
			logging.ErrorLogger.Error("database connection error", zap.Error(err))
			os.Exit(1)
		}
		defer db.Close()
		transcripts = dao.NewMessageDAO(db.DB)
	} else {
		transcripts = store.NewMemoryStore()
	}

	var res resolver.Resolver
	if cfg.Resolver == config.ResolverLex {
		client, err := newLexClient(ctx, cfg)
		if err != nil {
			logging.ErrorLogger.Error("lex client error", zap.Error(err))
			os.Exit(1)
		}
		res = resolver.NewLexResolver(client, cfg.LexBotID, cfg.LexBotAliasID, cfg.LexLocaleID)
	} else {
		res = resolver.NewRulesResolver()
	}

	msgCtrl := controllers.NewMessageController(transcripts, res)
	healthCtrl := controllers.NewHealthController()

	var archiveCtrl *controllers.ArchiveController
	if cfg.MinIOEndpoint != "" {
		minioClient, err := storage.NewMinIOClient(cfg)
		if err != nil {
			logging.ErrorLogger.Error("minio connection error", zap.Error(err))
			os.Exit(1)
		}
		archiveCtrl = controllers.NewArchiveController(minioClient, transcripts)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/health", routes.HealthRoutes(healthCtrl))
	r.Mount("/messages", routes.MessageRoutes(msgCtrl, archiveCtrl))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}
	go func() {
		logging.AppLogger.Info("server listening",
			zap.String("addr", cfg.Addr),
			zap.String("store", cfg.Store),
			zap.String("resolver", cfg.Resolver),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
	}
	logging.AppLogger.Info("server shutdown complete")
}

func newLexClient(ctx context.Context, cfg config.Config) (*lexruntimev2.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.AWSRegion),
	}
	if cfg.AWSAccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, ""),
		))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return lexruntimev2.NewFromConfig(awsCfg), nil
}
