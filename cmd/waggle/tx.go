package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/waggle-io/waggle/chain"
	"github.com/waggle-io/waggle/ecc"
)

var txFileFlag = &cli.StringFlag{
	Name:    "file",
	Aliases: []string{"f"},
	Usage:   "path to transaction JSON file, or '-' for stdin",
	Value:   stdIOPath,
}

var cmdTx = &cli.Command{
	Name:  "tx",
	Usage: "sub-commands for working with transaction JSON",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:   "digest",
			Usage:  "prints the signing digest of a transaction",
			Flags:  []cli.Flag{txFileFlag},
			Action: runTxDigest,
		},
		&cli.Command{
			Name:   "sign",
			Usage:  "signs a transaction, printing the signed JSON",
			Flags:  []cli.Flag{txFileFlag, wifFlag},
			Action: runTxSign,
		},
		&cli.Command{
			Name:  "signers",
			Usage: "recovers the public keys behind a signed transaction",
			Flags: []cli.Flag{
				txFileFlag,
				&cli.BoolFlag{
					Name:  "testnet",
					Usage: "print recovered keys with the testnet prefix",
				},
			},
			Action: runTxSigners,
		},
	},
}

func readTransactionJSON(cctx *cli.Context, out any) error {
	r, err := getFileOrStdin(cctx.String("file"))
	if err != nil {
		return err
	}
	blob, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(blob, out); err != nil {
		return fmt.Errorf("parsing transaction JSON: %w", err)
	}
	return nil
}

func runTxDigest(cctx *cli.Context) error {
	var tx chain.Transaction
	if err := readTransactionJSON(cctx, &tx); err != nil {
		return err
	}
	dig, err := tx.Digest()
	if err != nil {
		return err
	}
	fmt.Println(hex.EncodeToString(dig))
	return nil
}

func runTxSign(cctx *cli.Context) error {
	var tx chain.Transaction
	if err := readTransactionJSON(cctx, &tx); err != nil {
		return err
	}

	wif, err := secretValue(cctx, "wif", "Secret key (WIF)")
	if err != nil {
		return err
	}
	key, err := ecc.ParsePrivateKey(wif)
	if err != nil {
		return err
	}

	signed, err := tx.Sign(key)
	if err != nil {
		return err
	}
	b, err := json.MarshalIndent(signed, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func runTxSigners(cctx *cli.Context) error {
	var stx chain.SignedTransaction
	if err := readTransactionJSON(cctx, &stx); err != nil {
		return err
	}
	keys, err := stx.SignerKeys()
	if err != nil {
		return err
	}
	network := selectNetwork(cctx)
	for _, pub := range keys {
		fmt.Println(pub.StringOnNetwork(network))
	}
	return nil
}
