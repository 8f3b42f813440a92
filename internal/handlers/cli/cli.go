package cli

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/gabapcia/multisig/internal/multisig"

	"github.com/urfave/cli/v3"
)

// newApp builds the command tree. Results are written to w as indented JSON.
func newApp(svc multisig.Service, w io.Writer) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "multisig",
		Description:           "Command-line interface for proposing, confirming and executing multi-signature wallet transactions.",
		Usage:                 "multisig [command] [flags]",
		Writer:                w,
		Commands: []*cli.Command{
			walletCommand(svc),
			transactionCommand(svc),
		},
	}
}

// Run initializes and executes the multisig CLI application.
//
// It registers all available commands, including:
//
//   - `wallet create` and `wallet info`
//   - `tx submit`, `tx list` and `tx get`
//   - `tx confirm`, `tx revoke` and `tx execute`
//
// Mutating commands take the caller address through the --as flag.
func Run(ctx context.Context, svc multisig.Service) error {
	return newApp(svc, os.Stdout).Run(ctx, os.Args)
}

func writeJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func walletFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "wallet",
		Usage:    "Wallet identifier",
		Required: true,
	}
}

func callerFlag() cli.Flag {
	return &cli.StringFlag{
		Name:     "as",
		Usage:    "Address of the owner issuing the command",
		Required: true,
	}
}

func idFlag() cli.Flag {
	return &cli.Uint64Flag{
		Name:     "id",
		Usage:    "Transaction id",
		Required: true,
	}
}
