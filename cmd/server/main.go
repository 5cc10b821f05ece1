package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/kartosangel/Solana-Raffle/internal/archive"
	"github.com/kartosangel/Solana-Raffle/internal/config"
	"github.com/kartosangel/Solana-Raffle/internal/custody"
	"github.com/kartosangel/Solana-Raffle/internal/engine"
	"github.com/kartosangel/Solana-Raffle/internal/entrants"
	"github.com/kartosangel/Solana-Raffle/internal/logger"
	"github.com/kartosangel/Solana-Raffle/internal/oracle"
	"github.com/kartosangel/Solana-Raffle/internal/server"
	"github.com/kartosangel/Solana-Raffle/internal/storage"
)

func main() {
	_, cancel := context.WithCancel(context.Background())
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

		entrantsStore, err := entrants.NewStore(cfg.EntrantsDir)
		if err != nil {
			errCh <- err
			return
		}
		defer entrantsStore.Close()

		archiveStore, err := archive.NewDirStore(cfg.ArchiveDir)
		if err != nil {
			errCh <- err
			return
		}

		raffleEngine := engine.New(
			sqliteStorage,
			entrantsStore,
			custody.NewMemory(),
			archiveStore,
			oracle.NewQueue(sqliteStorage),
		)

		router := gin.Default()
		server.NewHTTPHandler(raffleEngine).RegisterRoutes(router)

		logger.Info("raffle server listening on " + cfg.ListenAddress)
		errCh <- router.Run(cfg.ListenAddress)
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
