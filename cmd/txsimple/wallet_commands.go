package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/itchyny/gojq"
	"github.com/olacrrypt/txsimple/client"
	"github.com/urfave/cli/v2"
)

func walletTxsCommand() *cli.Command {
	return &cli.Command{
		Name:  "txs",
		Usage: "Fetch simplified transactions for a wallet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Aliases:  []string{"a"},
				Usage:    "Wallet address to query",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"l"},
				Usage:   "Maximum number of transactions (server default if omitted)",
				Value:   -1,
			},
			&cli.StringFlag{
				Name:  "jq",
				Usage: "jq expression applied to the transaction list before printing",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Request timeout",
				Value: 30 * time.Second,
			},
		},
		Action: func(c *cli.Context) error {
			serverURL := c.String("server-url")
			address := c.String("address")
			limit := c.Int("limit")

			// Compile the jq expression up front so a bad filter fails
			// before any network call.
			var code *gojq.Code
			if expr := c.String("jq"); expr != "" {
				query, err := gojq.Parse(expr)
				if err != nil {
					return fmt.Errorf("failed to parse jq expression %q: %w", expr, err)
				}
				code, err = gojq.Compile(query)
				if err != nil {
					return fmt.Errorf("failed to compile jq expression %q: %w", expr, err)
				}
			}

			logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
			cl := client.NewClient(serverURL, nil, logger)

			ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
			defer cancel()

			txs, err := cl.Transactions(ctx, address, limit)
			if err != nil {
				return fmt.Errorf("failed to fetch transactions: %w", err)
			}

			if code == nil {
				data, err := json.MarshalIndent(txs, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal transactions: %w", err)
				}
				fmt.Println(string(data))
				return nil
			}

			// gojq operates on plain interface values, so round-trip
			// through JSON before running the expression.
			raw, err := json.Marshal(txs)
			if err != nil {
				return fmt.Errorf("failed to marshal transactions: %w", err)
			}
			var input interface{}
			if err := json.Unmarshal(raw, &input); err != nil {
				return fmt.Errorf("failed to prepare jq input: %w", err)
			}

			iter := code.Run(input)
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			for {
				v, ok := iter.Next()
				if !ok {
					break
				}
				if err, isErr := v.(error); isErr {
					return fmt.Errorf("jq evaluation failed: %w", err)
				}
				if err := enc.Encode(v); err != nil {
					return fmt.Errorf("failed to print jq result: %w", err)
				}
			}

			return nil
		},
	}
}
