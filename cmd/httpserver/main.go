package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Brownie44l1/httpd/internal/config"
	"github.com/Brownie44l1/httpd/internal/server"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "httpserver: %v\n", err)
		os.Exit(2)
	}

	logger := server.NewDefaultLogger(cfg.LogLevel)
	srv := server.New(cfg, logger)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		if !errors.Is(err, server.ErrServerClosed) {
			logger.Error("server failed", server.Field{Key: "error", Value: err})
			os.Exit(1)
		}
		return
	case sig := <-sigChan:
		logger.Info("shutting down", server.Field{Key: "signal", Value: sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown incomplete", append(srv.Stats().Fields(), server.Field{Key: "error", Value: err})...)
		os.Exit(1)
	}
}
