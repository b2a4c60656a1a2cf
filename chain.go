// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"fmt"
	"strings"
)

// Keypair is a chain-native public/private key pair. Public is whatever
// encoding the chain's address function expects. Secret is the private key
// material that is hex-encoded into Wallet.Secret.
type Keypair struct {
	Public []byte
	Secret []byte
}

// Chain describes how one chain turns a seed into a wallet: which path to
// follow, which derivation scheme walks it, how the derived material becomes
// a keypair and how the public key becomes an address.
//
// Adding a chain means adding a Chain value; the deriver has no
// chain-specific branches.
type Chain struct {
	Name    string
	Path    string
	Scheme  KeyScheme
	Keypair func(key []byte) (Keypair, error)
	Address func(kp Keypair) (string, error)
}

// WithPath returns a copy of c that derives along path instead.
func (c Chain) WithPath(path string) Chain {
	c.Path = path
	return c
}

func (c Chain) validate() error {
	switch {
	case strings.TrimSpace(c.Name) == "":
		return fmt.Errorf("%w: missing name", ErrIncompleteChain)
	case c.Path == "":
		return fmt.Errorf("%w: %s has no path", ErrIncompleteChain, c.Name)
	case c.Scheme == nil:
		return fmt.Errorf("%w: %s has no key scheme", ErrIncompleteChain, c.Name)
	case c.Keypair == nil:
		return fmt.Errorf("%w: %s has no keypair builder", ErrIncompleteChain, c.Name)
	case c.Address == nil:
		return fmt.Errorf("%w: %s has no address encoder", ErrIncompleteChain, c.Name)
	}
	return nil
}

// Known chains.
var (
	Solana = Chain{
		Name:    "solana",
		Path:    "m/44'/501'/0'/0'",
		Scheme:  SLIP10Ed25519,
		Keypair: solanaKeypair,
		Address: solanaAddress,
	}

	Ethereum = Chain{
		Name:    "ethereum",
		Path:    "m/44'/60'/0'/0/0",
		Scheme:  BIP32Secp256k1,
		Keypair: ethereumKeypair,
		Address: ethereumAddress,
	}

	// Bitcoin is the BIP-44 legacy P2PKH account on mainnet.
	Bitcoin = Chain{
		Name:    "bitcoin",
		Path:    "m/44'/0'/0'/0/0",
		Scheme:  BIP32Secp256k1,
		Keypair: bitcoinKeypair,
		Address: bitcoinAddress,
	}

	// Nostr follows NIP-06.
	Nostr = Chain{
		Name:    "nostr",
		Path:    "m/44'/1237'/0'/0/0",
		Scheme:  BIP32Secp256k1,
		Keypair: nostrKeypair,
		Address: nostrAddress,
	}
)

// DefaultChains returns the chains derived when no chains are configured:
// Solana then Ethereum. The returned slice is a fresh copy.
func DefaultChains() []Chain {
	return []Chain{Solana, Ethereum}
}

// KnownChains returns every chain this package can derive.
func KnownChains() []Chain {
	return []Chain{Solana, Ethereum, Bitcoin, Nostr}
}

// ChainByName looks up a known chain by name, ignoring case. Common ticker
// aliases (sol, eth, btc) are accepted too.
func ChainByName(name string) (Chain, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "sol":
		name = Solana.Name
	case "eth":
		name = Ethereum.Name
	case "btc":
		name = Bitcoin.Name
	}
	for _, c := range KnownChains() {
		if c.Name == name {
			return c, true
		}
	}
	return Chain{}, false
}
