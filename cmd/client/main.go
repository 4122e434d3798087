package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dmitrijs2005/zenora/internal/buildinfo"
	"github.com/dmitrijs2005/zenora/internal/client/cli"
	"github.com/dmitrijs2005/zenora/internal/client/client"
	"github.com/dmitrijs2005/zenora/internal/client/config"
	"github.com/dmitrijs2005/zenora/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/zenora/internal/client/services"
	"github.com/dmitrijs2005/zenora/internal/client/session"
	"github.com/dmitrijs2005/zenora/internal/cryptox"
	"github.com/dmitrijs2005/zenora/internal/filex"
	"github.com/dmitrijs2005/zenora/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	dataDir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		log.Fatalf("data dir: %v", err)
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dataDir, "zenora.db"))
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	key, err := cryptox.LoadOrCreateKey(filepath.Join(dataDir, "device.key"))
	if err != nil {
		log.Fatalf("device key: %v", err)
	}

	storage := session.NewMetadataStorage(metadata.NewSQLiteRepository(db), key)
	store := session.NewStore(storage, logger.With("component", "session"))
	store.Rehydrate(ctx)

	api, err := client.NewHTTPClient(cfg.ServerURL, store,
		client.WithTimeout(cfg.RequestTimeout),
		client.WithRetryDelay(cfg.RetryDelay),
		client.WithLogger(logger.With("component", "api")),
	)
	if err != nil {
		log.Fatalf("%v", err)
	}

	svcLog := logger.With("component", "services")
	app := cli.NewApp(cli.Deps{
		Sessions:     store,
		Auth:         services.NewAuthService(api, store, svcLog),
		Assessments:  services.NewAssessmentService(api, store, svcLog),
		Journal:      services.NewJournalService(api),
		Moods:        services.NewMoodService(api),
		Logger:       logger.With("component", "cli"),
		ShutdownWait: 2*cfg.RequestTimeout + cfg.RetryDelay,
	})

	app.Run(ctx)
}
