package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"finwise/internal/budgets"
	"finwise/internal/cli"
	"finwise/internal/core"
	"finwise/internal/finance"
	apphttp "finwise/internal/http"
	"finwise/internal/ledger"
	"finwise/internal/subs"
	"finwise/internal/weekly"
)

func main() {
	logger := cli.SetupLogger()
	cli.LoadEnvFile()
	cfg := cli.LoadAndValidateConfig(logger)

	recordStore, cleanup := cli.InitStore(logger, cfg)
	defer func() {
		if err := cleanup(); err != nil {
			logger.Error("Failed to close record store", "error", err)
		}
	}()

	eventsClient := cli.InitEvents(logger, cfg)
	if eventsClient != nil {
		defer func() {
			if err := eventsClient.Close(); err != nil {
				logger.Error("Failed to close AMQP client", "error", err)
			}
		}()
	}

	clock := core.SystemClock{}
	expenseLedger := ledger.New(recordStore, clock, eventsClient)
	budgetService := budgets.New(recordStore, clock, eventsClient)
	subsRegistry := subs.NewRegistry(subs.Seed())
	weeklyService := weekly.New(recordStore)
	calculator := finance.NewCalculator(expenseLedger,
		core.Money{Cents: cfg.FixedMonthlyCents},
		core.Money{Cents: cfg.SubsMonthlyCents})

	server := apphttp.NewServer(":"+cfg.Port,
		expenseLedger, budgetService, subsRegistry, weeklyService, calculator)
	server.ReadTimeout = 10 * time.Second
	server.WriteTimeout = 30 * time.Second
	server.IdleTimeout = 120 * time.Second

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting server", "port", cfg.Port, "backend", cfg.DataBackend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server exited with error", "error", err)
	}
}
