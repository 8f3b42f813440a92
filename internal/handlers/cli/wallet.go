package cli

import (
	"context"

	"github.com/gabapcia/multisig/internal/multisig"

	"github.com/urfave/cli/v3"
)

// walletCommand groups the wallet subcommands.
//
// Usage example:
//
//	multisig wallet create --address 0xABC... --owner 0x1... --owner 0x2... --required 2
//	multisig wallet info --wallet <id>
func walletCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:  "wallet",
		Usage: "Create and inspect wallets",
		Commands: []*cli.Command{
			createWalletCommand(svc),
			walletInfoCommand(svc),
		},
	}
}

func createWalletCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "create",
		Description: "Register a wallet with its owner set and confirmation threshold.",
		Usage:       "Creates a wallet. Must provide the account address, at least one owner and the threshold.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "On-chain account address of the wallet",
				Required: true,
			},
			&cli.StringSliceFlag{
				Name:     "owner",
				Usage:    "Owner address (repeat for every owner)",
				Required: true,
			},
			&cli.IntFlag{
				Name:     "required",
				Usage:    "Number of confirmations needed to execute",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			w, err := svc.CreateWallet(ctx, c.String("address"), c.StringSlice("owner"), c.Int("required"))
			if err != nil {
				return err
			}

			return writeJSON(c, map[string]any{
				"wallet_id": w.ID,
				"address":   w.Address,
			})
		},
	}
}

func walletInfoCommand(svc multisig.Service) *cli.Command {
	return &cli.Command{
		Name:        "info",
		Description: "Show the owners, balance, threshold and transaction count of a wallet.",
		Usage:       "Prints wallet information.",
		Flags:       []cli.Flag{walletFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			info, err := svc.GetInfo(ctx, c.String("wallet"))
			if err != nil {
				return err
			}

			return writeJSON(c, info)
		},
	}
}
