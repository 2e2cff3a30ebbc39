package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"
	"github.com/kouame/payboard/infra/fixtures"
	"github.com/kouame/payboard/infra/initializer"
	memoryrepo "github.com/kouame/payboard/infra/repository/transaction"
	"github.com/kouame/payboard/pkg/config"
	transactionsvc "github.com/kouame/payboard/pkg/service/transaction"
	"github.com/kouame/payboard/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.Load(slog.Default())
	logger := initializer.SetupLogger(cfg.Log)

	records := fixtures.Transactions(cfg.Fixtures.Count, cfg.Fixtures.Seed)

	var opts []memoryrepo.Option
	if cfg.Fault.FailureRate > 0 || cfg.Fault.MaxDelay > 0 {
		opts = append(opts, memoryrepo.WithFaultPolicy(memoryrepo.FaultPolicy{
			Failure:  cfg.Fault.FailureRate,
			MinDelay: cfg.Fault.MinDelay,
			MaxDelay: cfg.Fault.MaxDelay,
		}, cfg.Fixtures.Seed))
	}

	repo, err := memoryrepo.NewMemoryRepository(records, opts...)
	if err != nil {
		return fmt.Errorf("failed to build transaction repository: %w", err)
	}

	svc := transactionsvc.NewService(repo, logger)
	app := webapi.NewApp(svc)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(
		"starting server",
		"env", cfg.Env,
		"address", addr,
		"transactions", len(records),
	)

	return app.Listen(addr)
}
