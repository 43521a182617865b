package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/peersphere/peersphere/internal/buildinfo"
	"github.com/peersphere/peersphere/internal/client/cli"
	"github.com/peersphere/peersphere/internal/client/client"
	"github.com/peersphere/peersphere/internal/client/config"
	"github.com/peersphere/peersphere/internal/client/repositories/metadata"
	"github.com/peersphere/peersphere/internal/client/services"
	"github.com/peersphere/peersphere/internal/client/session"
	"github.com/peersphere/peersphere/internal/filex"
	"github.com/peersphere/peersphere/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	if _, err := filex.EnsureParentDir(cfg.DBPath); err != nil {
		log.Fatalf("error preparing database directory: %v", err)
	}

	db, err := client.InitDatabase(ctx, cfg.DBPath)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	durable := metadata.NewSQLiteRepository(db)

	var tab metadata.Repository = metadata.NewMemoryRepository()
	if cfg.SessionScope == config.ScopePersistent {
		tab = durable
	}

	store := session.NewStore(tab, durable, logger.With("component", "session"))
	api := client.NewRESTClient(cfg.APIBaseURL, client.WithLogger(logger.With("component", "api")))

	auth := services.NewAuthService(api, store, logger)
	study := services.NewStudyService(api, store, cfg.MessageLimit, logger)

	logger.Info(ctx, "starting client", "api", api.BaseURL(), "session_scope", string(cfg.SessionScope))

	app := cli.NewApp(auth, study, store, logger, os.Stdin, os.Stdout)
	app.Run(ctx)

}
