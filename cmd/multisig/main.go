// Command multisig runs the multi-signature wallet engine behind a command
// line interface. Wallets and transactions are persisted in Redis or
// Postgres, and executions are sent to an Ethereum JSON-RPC node.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/multisig/internal/confirmation"
	"github.com/gabapcia/multisig/internal/execution"
	"github.com/gabapcia/multisig/internal/handlers/cli"
	"github.com/gabapcia/multisig/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/multisig/internal/infra/storage/postgres"
	"github.com/gabapcia/multisig/internal/infra/storage/redis"
	"github.com/gabapcia/multisig/internal/multisig"
	"github.com/gabapcia/multisig/internal/ownerregistry"
	"github.com/gabapcia/multisig/internal/pkg/logger"
	"github.com/gabapcia/multisig/internal/pkg/optimistic"
	"github.com/gabapcia/multisig/internal/pkg/telemetry"
	"github.com/gabapcia/multisig/internal/pkg/transport/http"
	"github.com/gabapcia/multisig/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/multisig/internal/txledger"
)

// store is what both storage drivers provide.
type store interface {
	ownerregistry.WalletStorage
	txledger.TransactionStorage
	Close() error
}

func openStore(ctx context.Context, cfg config) (store, error) {
	switch cfg.StorageDriver {
	case storagePostgres:
		c, err := postgres.NewClient(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}

		if cfg.Postgres.Migrate {
			if err := c.Migrate(ctx); err != nil {
				return nil, errors.Join(err, c.Close())
			}
		}

		return c, nil
	default:
		c, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}

		return c, nil
	}
}

// newEthereumClients returns one client for reads, which retries transport
// errors, and one for eth_sendTransaction, which never does.
func newEthereumClients(cfg ethereumConfig) (multisig.BalanceProvider, execution.TargetExecutor) {
	receipts := ethereum.NewReceiptRetry(cfg.ReceiptAttempts, cfg.ReceiptDelay, cfg.ReceiptMaxDelay)

	readHTTP := http.NewClient(
		http.WithTimeout(cfg.Timeout),
		http.WithRetryMax(cfg.RetryMax),
		http.WithRetryWaitMin(cfg.RetryWaitMin),
		http.WithRetryWaitMax(cfg.RetryWaitMax),
	)
	sendHTTP := http.NewClient(
		http.WithTimeout(cfg.Timeout),
		http.WithRetryMax(0),
	)

	reader := ethereum.NewClient(jsonrpc.NewClient(readHTTP.StandardClient(), cfg.Endpoint), receipts)
	sender := ethereum.NewClient(jsonrpc.NewClient(sendHTTP.StandardClient(), cfg.Endpoint), receipts)
	return reader, sender
}

func run(ctx context.Context) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return err
		}
		defer func() {
			err = errors.Join(err, shutdown(context.WithoutCancel(ctx)))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	st, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open %s storage: %w", cfg.StorageDriver, err)
	}
	defer func() {
		err = errors.Join(err, st.Close())
	}()

	reader, sender := newEthereumClients(cfg.Ethereum)

	var (
		cas      = optimistic.NewRetry(cfg.CASRetryAttempts)
		registry = ownerregistry.New(st, cas)
		ledger   = txledger.New(st, registry, cas)
		tracker  = confirmation.New(ledger, registry)
		engine   = execution.New(ledger, registry, tracker, sender)
		svc      = multisig.New(registry, ledger, tracker, engine, reader)
	)

	return cli.Run(ctx, svc)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
