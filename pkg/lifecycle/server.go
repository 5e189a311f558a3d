// Package lifecycle runs a Service next to its gRPC health endpoint and
// tears both down on signal, error or cancellation.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/XFlexDev/MCPE-AFKBOT-FOR-BEDROCK/pkg/grpc"
	"go.uber.org/zap"
)

const (
	MaxRecvSize     = 4 * 1024 * 1024 // 4MB
	MaxSendSize     = 4 * 1024 * 1024 // 4MB
	ShutdownTimeout = 10 * time.Second
)

// Service defines the interface that all services must implement.
type Service interface {
	Start(context.Context) error
	Stop(context.Context) error
}

// HealthReporter flips the gRPC health status of the service, or of one
// of its components reported as "<service>/<component>".
type HealthReporter interface {
	SetServing(serving bool)
	SetComponentServing(component string, serving bool)
}

// HealthAware services receive a HealthReporter before Start.
type HealthAware interface {
	SetHealthReporter(HealthReporter)
}

// ServerOptions holds configuration for creating a server.
type ServerOptions struct {
	ListenAddr        string
	ServiceName       string
	Service           Service
	EnableHealthCheck bool
	Logger            *zap.Logger

	// Signals overrides SIGINT/SIGTERM delivery.
	Signals <-chan os.Signal
}

type healthReporter struct {
	srv     *grpc.Server
	service string
}

func (h healthReporter) SetServing(serving bool) {
	h.srv.SetServing(h.service, serving)
}

func (h healthReporter) SetComponentServing(component string, serving bool) {
	h.srv.SetServing(h.service+"/"+component, serving)
}

// RunServer starts a service with the provided options and handles lifecycle.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	logger.Info("Starting service", zap.String("service", opts.ServiceName))

	var grpcServer *grpc.Server

	if opts.EnableHealthCheck {
		grpcServer = grpc.NewServer(opts.ListenAddr, logger,
			grpc.WithMaxRecvSize(MaxRecvSize),
			grpc.WithMaxSendSize(MaxSendSize))

		if err := grpcServer.Listen(); err != nil {
			return fmt.Errorf("failed to setup gRPC server: %w", err)
		}

		reporter := healthReporter{srv: grpcServer, service: opts.ServiceName}
		reporter.SetServing(true)

		if aware, ok := opts.Service.(HealthAware); ok {
			aware.SetHealthReporter(reporter)
		}
	}

	errChan := make(chan error, 2)

	if err := opts.Service.Start(ctx); err != nil {
		if grpcServer != nil {
			grpcServer.Stop(context.Background())
		}

		return fmt.Errorf("failed to start service: %w", err)
	}

	if grpcServer != nil {
		go func() {
			if err := grpcServer.Serve(); err != nil {
				select {
				case errChan <- err:
				default:
					logger.Error("gRPC server error", zap.Error(err))
				}
			}
		}()
	}

	return handleShutdown(ctx, opts, logger, grpcServer, errChan)
}

func handleShutdown(
	ctx context.Context, opts *ServerOptions, logger *zap.Logger, grpcServer *grpc.Server, errChan chan error) error {
	sigChan := opts.Signals
	if sigChan == nil {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

		defer signal.Stop(ch)

		sigChan = ch
	}

	var cause error

	select {
	case sig := <-sigChan:
		logger.Info("Received signal, initiating shutdown", zap.Stringer("signal", sig))
	case err := <-errChan:
		logger.Error("Received error, initiating shutdown", zap.Error(err))
		cause = fmt.Errorf("service error: %w", err)
	case <-ctx.Done():
		logger.Info("Context canceled, initiating shutdown")
		cause = ctx.Err()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	if grpcServer != nil {
		grpcServer.Stop(shutdownCtx)
	}

	if err := opts.Service.Stop(shutdownCtx); err != nil {
		logger.Error("Error during service shutdown", zap.Error(err))
		return errors.Join(cause, fmt.Errorf("shutdown error: %w", err))
	}

	logger.Info("Shutdown complete", zap.String("service", opts.ServiceName))

	return cause
}
