// Package app is the composition root: manual dependency wiring, no DI
// framework.
package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/riverqueue/river"

	"sealgate.io/sealgate/internal/api/handlers"
	"sealgate.io/sealgate/internal/config"
	"sealgate.io/sealgate/internal/infrastructure"
	"sealgate.io/sealgate/internal/jobs"
	"sealgate.io/sealgate/internal/notification"
	"sealgate.io/sealgate/internal/pkg/worker"
	"sealgate.io/sealgate/internal/service"
	"sealgate.io/sealgate/internal/storage"
	"sealgate.io/sealgate/internal/token"
	"sealgate.io/sealgate/internal/usecase"
)

// Application holds composed application dependencies.
type Application struct {
	Config *config.Config
	Router *gin.Engine
	DB     *infrastructure.DatabaseClients
	Pools  *worker.Pools
	Store  storage.Store
}

// Bootstrap initializes all dependencies.
func Bootstrap(ctx context.Context, cfg *config.Config) (*Application, error) {
	db, err := infrastructure.NewDatabaseClients(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	// Dev-mode: auto-create Ent tables + River queue tables.
	if cfg.Database.AutoMigrate {
		if err := db.AutoMigrate(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
	}

	pools, err := worker.NewPools(ctx, worker.PoolConfig{
		GeneralPoolSize: cfg.Worker.GeneralPoolSize,
		VerifyPoolSize:  cfg.Worker.VerifyPoolSize,
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("init worker pools: %w", err)
	}

	store, err := storage.NewMinioStore(ctx, cfg.Storage)
	if err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init object store: %w", err)
	}

	mailer, err := notification.NewMailer(cfg.Mail)
	if err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init mailer: %w", err)
	}

	codec := token.NewCodec([]byte(cfg.Security.SigningSecret), "sealgate")
	fieldValues := service.NewFieldValueService()

	workers := river.NewWorkers()
	river.AddWorker(workers, jobs.NewEmailSendWorker(db.EntClient, mailer, codec, store, cfg.Signing))
	river.AddWorker(workers, jobs.NewChainVerifyWorker(db.EntClient, pools))
	if err := db.InitRiverClient(workers, cfg.River); err != nil {
		pools.Shutdown()
		db.Close()
		return nil, fmt.Errorf("init river: %w", err)
	}

	if interval := cfg.River.ChainVerifyInterval; interval > 0 {
		db.RiverClient.PeriodicJobs().Add(
			river.NewPeriodicJob(
				river.PeriodicInterval(interval),
				func() (river.JobArgs, *river.InsertOpts) {
					return jobs.ChainVerifyArgs{}, nil
				},
				&river.PeriodicJobOpts{RunOnStart: true},
			),
		)
	}

	signingUC := usecase.NewSigningUseCase(db.EntClient, codec, fieldValues)
	server := handlers.NewServer(handlers.ServerDeps{
		EntClient:        db.EntClient,
		Pool:             db.Pool,
		Store:            store,
		Codec:            codec,
		Values:           fieldValues,
		CreateEnvelopeUC: usecase.NewCreateEnvelopeUseCase(db.EntClient),
		SendEnvelopeUC:   usecase.NewSendEnvelopeUseCase(db.EntClient, db.RiverClient),
		SigningUC:        signingUC,
		CompleteUC: usecase.NewCompleteSigningUseCase(
			db.EntClient, signingUC, fieldValues, store, db.RiverClient, pools),
		DeleteEnvelopeUC: usecase.NewDeleteEnvelopeUseCase(db.EntClient, store),
		DeleteProjectUC:  usecase.NewDeleteProjectUseCase(db.EntClient, store),
		Signing:          cfg.Signing,
	})

	return &Application{
		Config: cfg,
		Router: newRouter(cfg, server, db.EntClient),
		DB:     db,
		Pools:  pools,
		Store:  store,
	}, nil
}
