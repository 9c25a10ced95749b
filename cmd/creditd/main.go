package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	creditv1 "github.com/MarkoPoloResearchLab/creditledger/api/credit/v1"
	"github.com/MarkoPoloResearchLab/creditledger/internal/balancecache"
	"github.com/MarkoPoloResearchLab/creditledger/internal/clock"
	"github.com/MarkoPoloResearchLab/creditledger/internal/config"
	"github.com/MarkoPoloResearchLab/creditledger/internal/events"
	"github.com/MarkoPoloResearchLab/creditledger/internal/grpcserver"
	"github.com/MarkoPoloResearchLab/creditledger/internal/httpapi"
	"github.com/MarkoPoloResearchLab/creditledger/internal/metrics"
	"github.com/MarkoPoloResearchLab/creditledger/internal/oplog"
	"github.com/MarkoPoloResearchLab/creditledger/internal/reconcile"
	"github.com/MarkoPoloResearchLab/creditledger/pkg/ledger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
)

const (
	envPrefix = "CREDITD"

	flagDatabaseURL        = "database-url"
	flagStoreBackend       = "store-backend"
	flagGRPCListenAddr     = "grpc-listen-addr"
	flagHTTPListenAddr     = "http-listen-addr"
	flagAllowedOrigins     = "allowed-origins"
	flagSessionSigningKey  = "jwt-signing-key"
	flagSessionIssuer      = "jwt-issuer"
	flagSessionCookieName  = "jwt-cookie-name"
	flagRequestTimeout     = "request-timeout"
	flagRedisAddr          = "redis-addr"
	flagCacheTTL           = "cache-ttl"
	flagAMQPURL            = "amqp-url"
	flagAMQPExchange       = "amqp-exchange"
	flagReconcileInterval  = "reconcile-interval"
	flagReconcileBatchSize = "reconcile-batch-size"
	flagLogLevel           = "log-level"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "creditd: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cfg := &config.Config{}
	settings := viper.New()
	cmd := &cobra.Command{
		Use:           "creditd",
		Short:         "Credit ledger and AI usage billing server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, settings, cfg)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String(flagDatabaseURL, "", "database url (postgres://… or sqlite://…)")
	flags.String(flagStoreBackend, config.StoreGORM, "store implementation: gorm or pgx")
	flags.String(flagGRPCListenAddr, "", "gRPC listen address")
	flags.String(flagHTTPListenAddr, "", "HTTP listen address; empty disables the HTTP API")
	flags.String(flagAllowedOrigins, "", "comma-separated CORS origins")
	flags.String(flagSessionSigningKey, "", "session JWT signing key")
	flags.String(flagSessionIssuer, "", "session JWT issuer")
	flags.String(flagSessionCookieName, "", "session cookie name")
	flags.Duration(flagRequestTimeout, 0, "per-request ledger timeout for the HTTP API")
	flags.String(flagRedisAddr, "", "Redis address for the balance cache; empty disables caching")
	flags.Duration(flagCacheTTL, 0, "balance cache ttl")
	flags.String(flagAMQPURL, "", "RabbitMQ url for transaction events; empty disables publishing")
	flags.String(flagAMQPExchange, "", "RabbitMQ topic exchange")
	flags.Duration(flagReconcileInterval, 0, "reconciliation interval; zero disables the scheduled sweep")
	flags.Int(flagReconcileBatchSize, 0, "accounts per reconciliation batch")
	flags.String(flagLogLevel, "", "log level")

	cmd.AddCommand(newMigrateCommand(cfg), newReconcileCommand(cfg), newClientCommand())
	return cmd
}

func newMigrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the ledger schema and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			backend, err := openBackend(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer backend.close()
			logger.Info("schema up to date", zap.String("store", cfg.StoreBackend))
			return nil
		},
	}
}

func newReconcileCommand(cfg *config.Config) *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Replay transaction logs against account balances once",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			backend, err := openBackend(cmd.Context(), cfg, false)
			if err != nil {
				return err
			}
			defer backend.close()
			creditService, err := ledger.NewService(backend.store, clock.System{}, ledger.WithOperationLogger(oplog.NewZapLogger(logger)))
			if err != nil {
				return fmt.Errorf("credit service init: %w", err)
			}
			if strings.TrimSpace(userID) != "" {
				user, err := ledger.NewUserID(userID)
				if err != nil {
					return err
				}
				reconciliation, err := creditService.ReconcileAccount(cmd.Context(), user)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s balanced: balance %d, %d transactions\n",
					user.String(), reconciliation.Account.Balance.Int64(), reconciliation.TransactionCount)
				return nil
			}
			summary, err := reconcile.NewWorker(creditService, nil, logger).Sweep(cmd.Context(), cfg.ReconcileBatchSize)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "checked %d accounts, %d mismatches\n", summary.Checked, len(summary.Mismatches))
			if len(summary.Mismatches) > 0 {
				return ledger.ErrLedgerMismatch
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "reconcile a single user")
	return cmd
}

func loadConfig(cmd *cobra.Command, settings *viper.Viper, cfg *config.Config) error {
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	if err := settings.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	cfg.DatabaseURL = settings.GetString(flagDatabaseURL)
	cfg.StoreBackend = settings.GetString(flagStoreBackend)
	cfg.GRPCListenAddr = settings.GetString(flagGRPCListenAddr)
	cfg.HTTPListenAddr = settings.GetString(flagHTTPListenAddr)
	cfg.AllowedOrigins = config.ParseAllowedOrigins(settings.GetString(flagAllowedOrigins))
	cfg.SessionSigningKey = settings.GetString(flagSessionSigningKey)
	cfg.SessionIssuer = settings.GetString(flagSessionIssuer)
	cfg.SessionCookieName = settings.GetString(flagSessionCookieName)
	cfg.RequestTimeout = settings.GetDuration(flagRequestTimeout)
	cfg.RedisAddr = settings.GetString(flagRedisAddr)
	cfg.CacheTTL = settings.GetDuration(flagCacheTTL)
	cfg.AMQPURL = settings.GetString(flagAMQPURL)
	cfg.AMQPExchange = settings.GetString(flagAMQPExchange)
	cfg.ReconcileInterval = settings.GetDuration(flagReconcileInterval)
	cfg.ReconcileBatchSize = settings.GetInt(flagReconcileBatchSize)
	cfg.LogLevel = settings.GetString(flagLogLevel)
	return cfg.Validate()
}

func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger level: %w", err)
	}
	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = atomicLevel
	logger, err := loggerConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("logger init: %w", err)
	}
	return logger, nil
}

func runServer(ctx context.Context, cfg *config.Config) error {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	backend, err := openBackend(ctx, cfg, cfg.ReconcileInterval > 0)
	if err != nil {
		return fmt.Errorf("database open: %w", err)
	}
	defer backend.close()

	ledgerMetrics := metrics.New()
	operationLoggers := []ledger.OperationLogger{oplog.NewZapLogger(logger), ledgerMetrics}
	serviceOptions := []ledger.ServiceOption{}

	if cfg.AMQPURL != "" {
		publisher, err := events.Dial(cfg.AMQPURL, cfg.AMQPExchange, logger)
		if err != nil {
			return err
		}
		defer func() { _ = publisher.Close() }()
		operationLoggers = append(operationLoggers, publisher)
		logger.Info("publishing transaction events", zap.String("exchange", cfg.AMQPExchange))
	}
	if cfg.RedisAddr != "" {
		cache, client, err := balancecache.Dial(ctx, cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()
		serviceOptions = append(serviceOptions, ledger.WithBalanceCache(cache))
		logger.Info("balance cache enabled", zap.String("redis_addr", cfg.RedisAddr), zap.Duration("ttl", cfg.CacheTTL))
	}
	serviceOptions = append(serviceOptions, ledger.WithOperationLogger(oplog.NewFanout(operationLoggers...)))

	creditService, err := ledger.NewService(backend.store, clock.System{}, serviceOptions...)
	if err != nil {
		return fmt.Errorf("credit service init: %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)

	listener, err := net.Listen("tcp", cfg.GRPCListenAddr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	grpcServer := grpc.NewServer()
	creditv1.RegisterCreditServiceServer(grpcServer, grpcserver.NewCreditServiceServer(creditService))
	group.Go(func() error {
		logger.Info("gRPC server starting", zap.String("listen_addr", cfg.GRPCListenAddr))
		if serveErr := grpcServer.Serve(listener); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			return serveErr
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info("shutdown requested")
		grpcServer.GracefulStop()
		return nil
	})

	if cfg.HTTPEnabled() {
		validator, err := httpapi.NewSessionValidator(cfg.SessionSigningKey, cfg.SessionIssuer, cfg.SessionCookieName)
		if err != nil {
			return err
		}
		router := httpapi.NewRouter(httpapi.Config{
			AllowedOrigins: cfg.AllowedOrigins,
			RequestTimeout: cfg.RequestTimeout,
		}, creditService, validator, ledgerMetrics.Handler(), logger)
		server := &http.Server{Addr: cfg.HTTPListenAddr, Handler: router}
		group.Go(func() error {
			return httpapi.Serve(groupCtx, server, logger)
		})
	}

	if cfg.ReconcileInterval > 0 {
		worker := reconcile.NewWorker(creditService, ledgerMetrics, logger)
		riverClient, err := reconcile.NewClient(backend.pool, worker, cfg.ReconcileInterval, cfg.ReconcileBatchSize)
		if err != nil {
			return err
		}
		if err := riverClient.Start(groupCtx); err != nil {
			return fmt.Errorf("river start: %w", err)
		}
		logger.Info("scheduled reconciliation enabled", zap.Duration("interval", cfg.ReconcileInterval))
		group.Go(func() error {
			<-groupCtx.Done()
			return riverClient.Stop(context.WithoutCancel(groupCtx))
		})
	}

	return group.Wait()
}
