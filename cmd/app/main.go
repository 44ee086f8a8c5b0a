// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/vaultgate/vaultgate/cmd/app/commands"
)

func main() {
	cmd := &cli.Command{
		Name:    "vaultgate",
		Usage:   "Allowlist gate service for vault deposits and withdrawals",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "server",
				Usage: "Start the HTTP server",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunServer(ctx, cmd.Root().Version)
				},
			},
			{
				Name:  "migrate",
				Usage: "Run database migrations",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunMigrations()
				},
			},
			{
				Name:  "init-registry",
				Usage: "Initialize the access registry with its first administrator",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "administrator",
						Aliases: []string{"a"},
						Value:   "",
						Usage:   "Administrator address (e.g., 0x8617e340b3d01fa5f11f306f4090fd50e238070d)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.WithRegistryUseCase(ctx, func(deps commands.RegistryDeps) error {
						return commands.RunInitRegistry(ctx, deps, cmd.String("administrator"))
					})
				},
			},
			{
				Name:  "set-membership",
				Usage: "Allow or deny an account on the registry allowlist",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "caller",
						Aliases: []string{"c"},
						Value:   "",
						Usage:   "Caller address (must be the current administrator)",
					},
					&cli.StringFlag{
						Name:    "account",
						Aliases: []string{"a"},
						Value:   "",
						Usage:   "Account address to allow or deny",
					},
					&cli.BoolFlag{
						Name:  "allowed",
						Value: false,
						Usage: "Whether the account is allowed (true) or denied (false)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.WithRegistryUseCase(ctx, func(deps commands.RegistryDeps) error {
						return commands.RunSetMembership(
							ctx,
							deps,
							cmd.String("caller"),
							cmd.String("account"),
							cmd.Bool("allowed"),
						)
					})
				},
			},
			{
				Name:  "transfer-administrator",
				Usage: "Transfer registry administration to a new address",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "caller",
						Aliases: []string{"c"},
						Value:   "",
						Usage:   "Caller address (must be the current administrator)",
					},
					&cli.StringFlag{
						Name:    "new",
						Aliases: []string{"n"},
						Value:   "",
						Usage:   "New administrator address",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.WithRegistryUseCase(ctx, func(deps commands.RegistryDeps) error {
						return commands.RunTransferAdministrator(
							ctx,
							deps,
							cmd.String("caller"),
							cmd.String("new"),
						)
					})
				},
			},
			{
				Name:  "show-registry",
				Usage: "Print the current registry administrator and memberships",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 50,
						Usage: "Maximum number of memberships to list",
					},
					&cli.IntFlag{
						Name:  "offset",
						Value: 0,
						Usage: "Number of memberships to skip",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.WithRegistryUseCase(ctx, func(deps commands.RegistryDeps) error {
						return commands.RunShowRegistry(
							ctx,
							deps,
							int(cmd.Int("limit")),
							int(cmd.Int("offset")),
							commands.DefaultIO(),
						)
					})
				},
			},
			{
				Name:  "process-outbox",
				Usage: "Process pending outbox events once and exit",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunProcessOutbox(ctx)
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("command failed", slog.Any("error", err))
		os.Exit(1)
	}
}
