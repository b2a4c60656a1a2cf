// derive_address derives one chain's address from a BIP39 mnemonic for testing.
//
// Usage:
//
//	go run ./scripts/derive_address solana "your 12 word seed phrase here"
//
// Or with stdin:
//
//	echo "your seed phrase" | go run ./scripts/derive_address ethereum
//
// The chain is one of solana, ethereum, bitcoin or nostr (or sol, eth, btc).
// Only the address is printed; the secret key never leaves the process.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/complex-gh/walletgen"
)

var errUsage = errors.New("usage")

func main() {
	err := run(os.Args[1:], os.Stdin, os.Stdout)
	if errors.Is(err, errUsage) {
		fmt.Fprintln(os.Stderr, "Usage: derive_address <chain> \"seed phrase\"")
		fmt.Fprintln(os.Stderr, "   or: echo \"seed phrase\" | derive_address <chain>")
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run derives the address of the chain named in args[0] and writes it to
// stdout. The phrase is args[1:] or, when absent, the first line of stdin.
func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) < 1 {
		return errUsage
	}

	chain, ok := walletgen.ChainByName(args[0])
	if !ok {
		return fmt.Errorf("unknown chain %q", args[0])
	}

	var mnemonic string
	if len(args) > 1 {
		mnemonic = strings.Join(args[1:], " ")
	} else {
		scanner := bufio.NewScanner(stdin)
		if scanner.Scan() {
			mnemonic = strings.TrimSpace(scanner.Text())
		}
	}
	if mnemonic == "" {
		return errUsage
	}

	d, err := walletgen.New(walletgen.WithChains(chain))
	if err != nil {
		return err
	}
	set, err := d.Derive(mnemonic)
	if err != nil {
		return err
	}

	r, _ := set.Get(chain.Name)
	if !r.OK() {
		return r.Err
	}
	_, err = fmt.Fprintln(stdout, r.Wallet.Address)
	return err
}
