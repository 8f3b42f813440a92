package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/multisig/internal/multisig"
	"github.com/gabapcia/multisig/internal/txledger"

	"github.com/urfave/cli/v3"
)

// transactionCommand groups the transaction subcommands.
//
// Usage example:
//
//	multisig tx submit --wallet <id> --as 0x1... --type transfer_funds --destination 0xB... --value 1000
//	multisig tx confirm --wallet <id> --id 0 --as 0x2...
//	multisig tx execute --wallet <id> --id 0 --as 0x1...
func transactionCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:  "tx",
		Usage: "Propose, approve and execute wallet transactions",
		Commands: []*cli.Command{
			submitTransactionCommand(svc),
			listTransactionsCommand(svc),
			getTransactionCommand(svc),
			ownerActionCommand("confirm", "Record the caller's confirmation.", svc.ConfirmTransaction),
			ownerActionCommand("revoke", "Withdraw the caller's confirmation.", svc.RevokeConfirmation),
			ownerActionCommand("execute", "Execute a transaction that reached its quorum.", svc.ExecuteTransaction),
		},
	}
}

// parseSubmitRequest turns the submit flags into a request. The payload flag
// holds the JSON body of the type specific fields.
func parseSubmitRequest(c *cli.Command) (txledger.SubmitRequest, error) {
	t, err := txledger.ParseType(c.String("type"))
	if err != nil {
		return txledger.SubmitRequest{}, err
	}

	value, ok := new(big.Int).SetString(c.String("value"), 10)
	if !ok {
		return txledger.SubmitRequest{}, fmt.Errorf("%w: %q", txledger.ErrInvalidValue, c.String("value"))
	}

	payload, err := txledger.DecodePayload(t, json.RawMessage(c.String("payload")))
	if err != nil {
		return txledger.SubmitRequest{}, err
	}

	return txledger.SubmitRequest{
		Destination: c.String("destination"),
		Value:       value,
		Payload:     payload,
		Description: c.String("description"),
	}, nil
}

func submitTransactionCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "submit",
		Description: "Propose a transaction. The proposer does not confirm it implicitly.",
		Usage:       "Submits a transaction and prints its id.",
		Flags: []cli.Flag{
			walletFlag(),
			callerFlag(),
			&cli.StringFlag{
				Name:  "type",
				Usage: "Transaction type (transfer_funds, upgrade_contract, change_parameter, other, add_owner, remove_owner, change_requirement)",
				Value: string(txledger.TypeTransferFunds),
			},
			&cli.StringFlag{
				Name:     "destination",
				Usage:    "Target address",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "value",
				Usage: "Amount in base units (decimal)",
				Value: "0",
			},
			&cli.StringFlag{
				Name:  "payload",
				Usage: "Type specific fields as a JSON object",
			},
			&cli.StringFlag{
				Name:  "description",
				Usage: "Free-form description",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			req, err := parseSubmitRequest(c)
			if err != nil {
				return err
			}

			id, err := svc.SubmitTransaction(ctx, c.String("wallet"), c.String("as"), req)
			if err != nil {
				return err
			}

			return writeJSON(c, map[string]uint64{"id": id})
		},
	}
}

// parseFilter turns the list flags into a ledger filter.
func parseFilter(c *cli.Command) (txledger.Filter, error) {
	var filter txledger.Filter

	for _, s := range c.StringSlice("status") {
		status, err := txledger.ParseStatus(s)
		if err != nil {
			return txledger.Filter{}, err
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	for _, s := range c.StringSlice("type") {
		t, err := txledger.ParseType(s)
		if err != nil {
			return txledger.Filter{}, err
		}
		filter.Types = append(filter.Types, t)
	}

	if c.IsSet("after") {
		after := c.Uint64("after")
		filter.AfterID = &after
	}

	filter.Limit = c.Int("limit")
	filter.Descending = c.Bool("desc")

	return filter, nil
}

func listTransactionsCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List the transactions of a wallet, optionally filtered by status and type.",
		Usage:       "Prints the selected transactions.",
		Flags: []cli.Flag{
			walletFlag(),
			&cli.StringSliceFlag{
				Name:  "status",
				Usage: "Keep only these statuses (pending, confirmed, executed, failed)",
			},
			&cli.StringSliceFlag{
				Name:  "type",
				Usage: "Keep only these transaction types",
			},
			&cli.Uint64Flag{
				Name:  "after",
				Usage: "Start after this transaction id",
			},
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of transactions (0 for all)",
			},
			&cli.BoolFlag{
				Name:  "desc",
				Usage: "Newest first",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			filter, err := parseFilter(c)
			if err != nil {
				return err
			}

			txs, err := svc.ListTransactions(ctx, c.String("wallet"), filter)
			if err != nil {
				return err
			}

			return writeJSON(c, txs)
		},
	}
}

func getTransactionCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "get",
		Description: "Show a single transaction with its confirmations and execution result.",
		Usage:       "Prints a transaction.",
		Flags:       []cli.Flag{walletFlag(), idFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			tx, err := svc.GetTransaction(ctx, c.String("wallet"), c.Uint64("id"))
			if err != nil {
				return err
			}

			return writeJSON(c, tx)
		},
	}
}

// ownerAction is an owner operation on an existing transaction.
type ownerAction func(ctx context.Context, walletID string, id uint64, caller string) (txledger.Transaction, error)

// ownerActionCommand builds the confirm, revoke and execute commands, which
// share their flags and output.
func ownerActionCommand(name, description string, action ownerAction) *cli.Command {
	return &cli.Command{
		Name:        name,
		Description: description,
		Usage:       "Prints the resulting transaction.",
		Flags:       []cli.Flag{walletFlag(), idFlag(), callerFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			tx, err := action(ctx, c.String("wallet"), c.Uint64("id"), c.String("as"))
			if err != nil {
				// A failed execution still returns the recorded transaction.
				if tx.Status != "" {
					return errors.Join(err, writeJSON(c, tx))
				}
				return err
			}

			return writeJSON(c, tx)
		},
	}
}
