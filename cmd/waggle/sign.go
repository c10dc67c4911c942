package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/waggle-io/waggle/digest"
	"github.com/waggle-io/waggle/ecc"
)

var wifFlag = &cli.StringFlag{
	Name:    "wif",
	Usage:   "secret key in WIF; prompted for when not set",
	EnvVars: []string{"WAGGLE_WIF"},
}

var hexDigestFlag = &cli.BoolFlag{
	Name:  "hex-digest",
	Usage: "treat the message argument as a hex-encoded 32-byte digest",
}

var cmdSign = &cli.Command{
	Name:      "sign",
	Usage:     "signs a message, printing the canonical signature string",
	ArgsUsage: `<message>`,
	Flags:     []cli.Flag{wifFlag, hexDigestFlag},
	Action:    runSign,
}

var cmdVerify = &cli.Command{
	Name:      "verify",
	Usage:     "checks a signature against a message and public key",
	ArgsUsage: `<message> <signature> <public-key>`,
	Flags: []cli.Flag{
		hexDigestFlag,
		&cli.BoolFlag{
			Name:  "testnet",
			Usage: "expect the public key with the testnet prefix",
		},
	},
	Action: runVerify,
}

var cmdRecover = &cli.Command{
	Name:      "recover",
	Usage:     "recovers the public key that signed a message",
	ArgsUsage: `<message> <signature>`,
	Flags: []cli.Flag{
		hexDigestFlag,
		&cli.BoolFlag{
			Name:  "testnet",
			Usage: "print the recovered key with the testnet prefix",
		},
	},
	Action: runRecover,
}

func messageDigest(cctx *cli.Context, message string) ([]byte, error) {
	if !cctx.Bool("hex-digest") {
		return digest.SHA256([]byte(message)), nil
	}
	dig, err := hex.DecodeString(message)
	if err != nil {
		return nil, fmt.Errorf("parsing hex digest: %w", err)
	}
	return dig, nil
}

func runSign(cctx *cli.Context) error {
	message := cctx.Args().First()
	if message == "" {
		return fmt.Errorf("need to provide a message as an argument")
	}

	wif, err := secretValue(cctx, "wif", "Secret key (WIF)")
	if err != nil {
		return err
	}
	key, err := ecc.ParsePrivateKey(wif)
	if err != nil {
		return err
	}

	dig, err := messageDigest(cctx, message)
	if err != nil {
		return err
	}
	sig, err := key.Sign(dig)
	if err != nil {
		return err
	}
	fmt.Println(sig)
	return nil
}

func runVerify(cctx *cli.Context) error {
	if cctx.Args().Len() != 3 {
		return fmt.Errorf("need to provide message, signature, and public key as arguments")
	}
	dig, err := messageDigest(cctx, cctx.Args().Get(0))
	if err != nil {
		return err
	}
	sig, err := ecc.ParseSignature(cctx.Args().Get(1))
	if err != nil {
		return err
	}
	pub, err := ecc.ParsePublicKeyOnNetwork(cctx.Args().Get(2), selectNetwork(cctx))
	if err != nil {
		return err
	}

	if !pub.Verify(dig, sig) {
		return fmt.Errorf("signature does not verify")
	}
	fmt.Println("valid")
	return nil
}

func runRecover(cctx *cli.Context) error {
	if cctx.Args().Len() != 2 {
		return fmt.Errorf("need to provide message and signature as arguments")
	}
	dig, err := messageDigest(cctx, cctx.Args().Get(0))
	if err != nil {
		return err
	}
	sig, err := ecc.ParseSignature(cctx.Args().Get(1))
	if err != nil {
		return err
	}

	pub, err := sig.RecoverPublicKey(dig)
	if err != nil {
		return err
	}
	fmt.Println(pub.StringOnNetwork(selectNetwork(cctx)))
	return nil
}
