package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/waggle-io/waggle/chain"
	"github.com/waggle-io/waggle/hiverpc"
)

var rpcFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "host",
		Usage:   "method, hostname, and port of an API node",
		Value:   hiverpc.DefaultHost,
		EnvVars: []string{"WAGGLE_RPC_HOST"},
	},
}

var cmdRPC = &cli.Command{
	Name:  "rpc",
	Usage: "sub-commands for talking to an API node",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:   "props",
			Usage:  "fetches the node's dynamic global properties",
			Flags:  rpcFlags,
			Action: runRPCProps,
		},
		&cli.Command{
			Name:      "account",
			Usage:     "fetches accounts by name",
			ArgsUsage: `<name>...`,
			Flags:     rpcFlags,
			Action:    runRPCAccount,
		},
		&cli.Command{
			Name:      "block",
			Usage:     "fetches a block by number",
			ArgsUsage: `<num>`,
			Flags:     rpcFlags,
			Action:    runRPCBlock,
		},
		&cli.Command{
			Name:  "broadcast",
			Usage: "submits a signed transaction JSON to the network",
			Flags: append([]cli.Flag{
				txFileFlag,
				&cli.BoolFlag{
					Name:  "async",
					Usage: "do not wait for the inclusion receipt",
				},
			}, rpcFlags...),
			Action: runRPCBroadcast,
		},
	},
}

func newRPCClient(cctx *cli.Context) *hiverpc.Client {
	return &hiverpc.Client{
		Host:      cctx.String("host"),
		UserAgent: userAgent(),
	}
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func runRPCProps(cctx *cli.Context) error {
	props, err := newRPCClient(cctx).DynamicGlobalProperties(cctx.Context)
	if err != nil {
		return err
	}
	return printJSON(props)
}

func runRPCAccount(cctx *cli.Context) error {
	names := cctx.Args().Slice()
	if len(names) == 0 {
		return fmt.Errorf("need to provide at least one account name")
	}
	accounts, err := newRPCClient(cctx).GetAccounts(cctx.Context, names...)
	if err != nil {
		return err
	}
	return printJSON(accounts)
}

func runRPCBlock(cctx *cli.Context) error {
	arg := cctx.Args().First()
	if arg == "" {
		return fmt.Errorf("need to provide a block number as an argument")
	}
	num, err := strconv.ParseUint(arg, 10, 32)
	if err != nil {
		return fmt.Errorf("parsing block number: %w", err)
	}
	block, err := newRPCClient(cctx).GetBlock(cctx.Context, uint32(num))
	if err != nil {
		return err
	}
	return printJSON(block)
}

func runRPCBroadcast(cctx *cli.Context) error {
	var stx chain.SignedTransaction
	if err := readTransactionJSON(cctx, &stx); err != nil {
		return err
	}
	if len(stx.Signatures) == 0 {
		return fmt.Errorf("transaction carries no signatures; sign it first")
	}

	client := newRPCClient(cctx)
	if cctx.Bool("async") {
		if err := client.BroadcastTransaction(cctx.Context, &stx); err != nil {
			return err
		}
		fmt.Println("broadcast accepted")
		return nil
	}
	status, err := client.BroadcastTransactionSynchronous(cctx.Context, &stx)
	if err != nil {
		return err
	}
	return printJSON(status)
}
