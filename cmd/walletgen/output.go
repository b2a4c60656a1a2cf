package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/complex-gh/walletgen"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	maxWidth = 72
)

// errorStyle renders failures as a padded red block.
var errorStyle = lipgloss.NewStyle().
	Margin(0, 0, 1, 2).
	Padding(1, 2).
	Foreground(lipgloss.CompleteColor{TrueColor: "#FF4444", ANSI256: "196", ANSI: "9"}).
	Background(lipgloss.CompleteAdaptiveColor{
		Light: lipgloss.CompleteColor{TrueColor: "#FFEBEB", ANSI256: "255", ANSI: "7"},
		Dark:  lipgloss.CompleteColor{TrueColor: "#2B1A1A", ANSI256: "235", ANSI: "8"},
	})

// jsonResult is the --json output shape.
type jsonResult struct {
	Mnemonic string               `json:"mnemonic,omitempty"`
	Wallets  *walletgen.WalletSet `json:"wallets"`
}

// printResult writes the phrase (when non-empty) and every chain's outcome
// in configuration order.
func printResult(w io.Writer, mnemonic string, set *walletgen.WalletSet) error {
	if hideSecrets {
		set = set.Redacted()
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(jsonResult{Mnemonic: mnemonic, Wallets: set}); err != nil {
			return fmt.Errorf("could not encode result: %w", err)
		}
		return nil
	}

	if mnemonic != "" {
		fmt.Fprintf(w, "[%d word seed phrase]\n", len(strings.Fields(mnemonic)))
		fmt.Fprintln(w)
		fmt.Fprintln(w, mnemonic)
		fmt.Fprintln(w)
	}

	for i, r := range set.Results() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "[%s wallet]\n", r.Chain)
		fmt.Fprintln(w)

		if !r.OK() {
			printChainError(w, r.Err)
			continue
		}
		fmt.Fprintf(w, "%s (address)\n", r.Wallet.Address)
		if r.Wallet.Secret != "" {
			fmt.Fprintf(w, "%s (secret key)\n", r.Wallet.Secret)
		}
		fmt.Fprintln(w)
	}
	return nil
}

// printChainError renders a per-chain failure as a styled block on a
// terminal and as plain text otherwise.
func printChainError(w io.Writer, err error) {
	if err == nil {
		err = errors.New("no wallet derived")
	}
	if f, ok := styledTerminal(w); ok {
		fmt.Fprintln(w, errorStyle.Width(blockWidth(f)).Render(err.Error()))
		return
	}
	fmt.Fprintf(w, "error: %s\n", err)
	fmt.Fprintln(w)
}

// formatError shows a whole-call failure as a styled block on a terminal
// and returns it so the command exits with a non-zero code.
func formatError(err error) error {
	if f, ok := styledTerminal(os.Stderr); ok {
		fmt.Fprintln(f)
		fmt.Fprintln(f, errorStyle.Width(blockWidth(f)).Render(err.Error()))
	}
	return err
}

// styledTerminal reports whether w is a terminal that should get styled
// output. NO_COLOR turns styling off.
func styledTerminal(w io.Writer) (*os.File, bool) {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) || termenv.EnvNoColor() {
		return nil, false
	}
	return f, true
}

// blockWidth fits error blocks to the terminal, capped at maxWidth.
func blockWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd())) //nolint: gosec
	if err != nil || w <= 0 || w > maxWidth {
		return maxWidth
	}
	return w
}
