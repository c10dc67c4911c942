package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/waggle-io/waggle/ecc"
)

var cmdKey = &cli.Command{
	Name:  "key",
	Usage: "sub-commands for Hive keys",
	Subcommands: []*cli.Command{
		&cli.Command{
			Name:      "derive",
			Usage:     "derives a role key from account name and master passphrase",
			ArgsUsage: `<account> <role>`,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "passphrase",
					Usage:   "master passphrase; prompted for when not set",
					EnvVars: []string{"WAGGLE_PASSPHRASE"},
				},
				&cli.BoolFlag{
					Name:  "testnet",
					Usage: "print the public key with the testnet prefix",
				},
				&cli.BoolFlag{
					Name:  "terse",
					Usage: "print just the secret key, in WIF",
				},
			},
			Action: runKeyDerive,
		},
		&cli.Command{
			Name:  "generate",
			Usage: "outputs a new random secret key",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "brain",
					Usage: "derive from a fresh suggested brain key and print it",
				},
				&cli.BoolFlag{
					Name:  "testnet",
					Usage: "print the public key with the testnet prefix",
				},
				&cli.BoolFlag{
					Name:  "terse",
					Usage: "print just the secret key, in WIF",
				},
			},
			Action: runKeyGenerate,
		},
		&cli.Command{
			Name:      "inspect",
			Usage:     "parses and outputs metadata about a key or signature",
			ArgsUsage: `<key-or-signature>`,
			Action:    runKeyInspect,
		},
	},
}

func printKeyPair(key *ecc.PrivateKey, network ecc.Network, terse bool) {
	if terse {
		fmt.Println(key.WIF())
		return
	}
	fmt.Printf("Secret Key (WIF): save this securely (eg, add to password manager)\n\t%s\n", key.WIF())
	fmt.Printf("Public Key: share or publish this (eg, in account authorities)\n\t%s\n", key.PublicKey().StringOnNetwork(network))
}

func runKeyDerive(cctx *cli.Context) error {
	account := cctx.Args().Get(0)
	role := cctx.Args().Get(1)
	if account == "" || role == "" {
		return fmt.Errorf("need to provide account and role as arguments")
	}

	passphrase, err := secretValue(cctx, "passphrase", "Master passphrase")
	if err != nil {
		return err
	}

	key, err := ecc.NewPrivateKeyFromLogin(account, role, passphrase)
	if err != nil {
		return err
	}
	if !cctx.Bool("terse") {
		fmt.Printf("Account: %s\n", account)
		fmt.Printf("Role: %s\n", role)
	}
	printKeyPair(key, selectNetwork(cctx), cctx.Bool("terse"))
	return nil
}

func runKeyGenerate(cctx *cli.Context) error {
	var key *ecc.PrivateKey
	if cctx.Bool("brain") {
		brain, err := ecc.SuggestBrainKey()
		if err != nil {
			return err
		}
		sec, err := ecc.NewPrivateKeyFromSeed(ecc.NormalizeBrainKey(brain))
		if err != nil {
			return err
		}
		if !cctx.Bool("terse") {
			fmt.Printf("Brain Key: write this down (it reproduces the secret key)\n\t%s\n", brain)
		}
		key = sec
	} else {
		sec, err := ecc.GeneratePrivateKey()
		if err != nil {
			return err
		}
		key = sec
	}
	printKeyPair(key, selectNetwork(cctx), cctx.Bool("terse"))
	return nil
}

func runKeyInspect(cctx *cli.Context) error {
	s := cctx.Args().First()
	if s == "" {
		return fmt.Errorf("need to provide key as an argument")
	}

	key, err := ecc.ParsePrivateKey(s)
	if nil == err {
		fmt.Printf("Type: secret key\n")
		fmt.Printf("Encoding: WIF\n")
		fmt.Printf("Public Key: %s\n", key.PublicKey())
		return nil
	}

	for _, network := range []ecc.Network{ecc.Mainnet, ecc.Testnet} {
		pub, err := ecc.ParsePublicKeyOnNetwork(s, network)
		if nil == err {
			fmt.Printf("Type: public key\n")
			fmt.Printf("Network: %s\n", network.Name)
			fmt.Printf("Compressed Point (hex): %x\n", pub.Bytes())
			return nil
		}
	}

	sig, err := ecc.ParseSignature(s)
	if nil == err {
		fmt.Printf("Type: signature\n")
		fmt.Printf("Recovery ID: %d\n", sig.RecoveryID())
		fmt.Printf("Canonical (low-S): %v\n", sig.IsLowS())
		return nil
	}
	return fmt.Errorf("unknown key or signature encoding")
}
