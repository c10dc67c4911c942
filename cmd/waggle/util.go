package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/waggle-io/waggle/ecc"
)

const stdIOPath = "-"

func getFileOrStdin(path string) (io.Reader, error) {
	if path == stdIOPath {
		return os.Stdin, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return file, nil
}

func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// returns a pointer because that is what hiverpc.Client expects
func userAgent() *string {
	s := fmt.Sprintf("waggle/%s", versioninfo.Short())
	return &s
}

func selectNetwork(cctx *cli.Context) ecc.Network {
	if cctx.Bool("testnet") {
		return ecc.Testnet
	}
	return ecc.Mainnet
}

// promptSecret reads a line from the terminal without echo. The prompt goes
// to stderr so command output stays pipeable.
func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt+": ")
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading secret input: %w", err)
	}
	return string(raw), nil
}

// secretValue returns the named flag's value, falling back to a no-echo
// terminal prompt when the flag is unset.
func secretValue(cctx *cli.Context, flag string, prompt string) (string, error) {
	if v := cctx.String(flag); v != "" {
		return v, nil
	}
	return promptSecret(prompt)
}
