package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kartosangel/Solana-Raffle/internal/config"
	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/oracle"
	"github.com/kartosangel/Solana-Raffle/internal/storage"
)

// The daemon shares only the metadata database with the API server. The
// entrant ledger stays closed here: badger holds an exclusive directory lock,
// and settlement never reads entrants.
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	logger.Initialize(logger.Configuration{
		Level:   cfg.LogLevel,
		LogFile: cfg.LogFile,
		Console: true,
	})

	errCh := make(chan error, 1)

	go func() {
		sqliteStorage, err := storage.NewSqliteStorage(cfg.DatabasePath)
		if err != nil {
			errCh <- err
			return
		}

		daemon := oracle.NewDaemon(sqliteStorage, oracle.NewStoreSettler(sqliteStorage), cfg.OracleInterval)
		logger.Info("oracle daemon started")
		daemon.Run(ctx)
	}()

	select {
	case err := <-errCh:
		fmt.Printf("stopping due to error: %v\n", err)
		cancel()
	case <-waitForInterrupt():
		fmt.Println("interrupt received")
		cancel()
	}
}

func waitForInterrupt() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	return sigCh
}
