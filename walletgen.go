// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

// Package walletgen derives wallets for several chains from a single BIP-39
// mnemonic phrase.
//
// A phrase is expanded into a seed once, then every configured chain walks
// its own derivation path over that seed: SLIP-0010 ed25519 for Solana
// (m/44'/501'/0'/0') and BIP-32 secp256k1 for Ethereum (m/44'/60'/0'/0/0).
// Chains are isolated from one another. A chain that fails to derive is
// reported as an error inside its own Result while the other chains still
// produce wallets. Only an invalid phrase fails the whole call.
//
// The package performs no I/O besides reading entropy and keeps nothing
// after a call returns. Secrets in the returned WalletSet belong to the
// caller.
package walletgen

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// Deriver derives a WalletSet for a fixed list of chains. It is immutable
// once built and safe for concurrent use as long as its entropy source is.
type Deriver struct {
	chains     []Chain
	wordCount  int
	passphrase string
	entropy    io.Reader
}

// Option configures a Deriver.
type Option func(*Deriver)

// WithChains replaces the default chain list. Results follow the order
// given here.
func WithChains(chains ...Chain) Option {
	return func(d *Deriver) {
		d.chains = append([]Chain(nil), chains...)
	}
}

// WithWordCount sets the length of phrases produced by Generate.
func WithWordCount(n int) Option {
	return func(d *Deriver) {
		d.wordCount = n
	}
}

// WithPassphrase sets the optional BIP-39 passphrase mixed into the seed.
// The default is empty.
func WithPassphrase(passphrase string) Option {
	return func(d *Deriver) {
		d.passphrase = passphrase
	}
}

// WithEntropySource replaces crypto/rand.Reader as the source of phrase
// entropy. Only tests should need this.
func WithEntropySource(r io.Reader) Option {
	return func(d *Deriver) {
		d.entropy = r
	}
}

// New builds a Deriver. Without options it derives DefaultChains and
// generates 12-word phrases from crypto/rand.
func New(opts ...Option) (*Deriver, error) {
	d := &Deriver{
		chains:    DefaultChains(),
		wordCount: DefaultWordCount,
		entropy:   rand.Reader,
	}
	for _, opt := range opts {
		opt(d)
	}

	if len(d.chains) == 0 {
		return nil, ErrNoChains
	}
	seen := make(map[string]bool, len(d.chains))
	for _, c := range d.chains {
		if err := c.validate(); err != nil {
			return nil, err
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateChain, c.Name)
		}
		seen[c.Name] = true
	}
	if _, ok := entropySizes[d.wordCount]; !ok {
		return nil, fmt.Errorf("%w: %d (must be 12, 15, 18, 21, or 24)", ErrInvalidWordCount, d.wordCount)
	}
	if d.entropy == nil {
		return nil, ErrNoEntropySource
	}
	return d, nil
}

// Chains returns a copy of the configured chains in derivation order.
func (d *Deriver) Chains() []Chain {
	return append([]Chain(nil), d.chains...)
}

// Generate creates a fresh phrase and derives a wallet for every configured
// chain from it. An error is returned only if entropy could not be read;
// per-chain failures are reported inside the WalletSet.
func (d *Deriver) Generate() (string, *WalletSet, error) {
	mnemonic, err := NewMnemonic(d.entropy, d.wordCount)
	if err != nil {
		return "", nil, fmt.Errorf("could not generate mnemonic: %w", err)
	}
	set, err := d.Derive(mnemonic)
	if err != nil {
		return "", nil, err
	}
	return mnemonic, set, nil
}

// Derive expands mnemonic into a seed and derives a wallet for every
// configured chain. It fails with ErrInvalidMnemonic when the phrase does
// not pass word list and checksum validation; otherwise the returned set
// holds exactly one Result per configured chain.
func (d *Deriver) Derive(mnemonic string) (*WalletSet, error) {
	seed, err := newSeed(mnemonic, d.passphrase)
	if err != nil {
		return nil, err
	}
	defer clear(seed)

	set := newWalletSet(len(d.chains))
	for _, c := range d.chains {
		set.add(deriveChain(seed, c))
	}
	return set, nil
}

// deriveChain runs one chain's strategy. Every failure, including a panic
// inside a primitive, becomes a ChainError in the Result.
func deriveChain(seed []byte, c Chain) (res Result) {
	res.Chain = c.Name
	defer func() {
		if r := recover(); r != nil {
			res = Result{Chain: c.Name, Err: &ChainError{Chain: c.Name, Err: fmt.Errorf("%w: %v", ErrPanic, r)}}
		}
	}()

	fail := func(err error) Result {
		return Result{Chain: c.Name, Err: &ChainError{Chain: c.Name, Err: err}}
	}

	path, err := ParsePath(c.Path)
	if err != nil {
		return fail(err)
	}

	key, err := c.Scheme(seed, path)
	if err != nil {
		return fail(fmt.Errorf("could not derive key at %s: %w", c.Path, err))
	}
	defer clear(key)

	kp, err := c.Keypair(key)
	if err != nil {
		return fail(fmt.Errorf("could not build keypair: %w", err))
	}
	defer clear(kp.Secret)

	addr, err := c.Address(kp)
	if err != nil {
		return fail(fmt.Errorf("could not encode address: %w", err))
	}

	return Result{
		Chain: c.Name,
		Wallet: &Wallet{
			Address: addr,
			Secret:  hex.EncodeToString(kp.Secret),
		},
	}
}

var defaultDeriver = func() *Deriver {
	d, err := New()
	if err != nil {
		panic(err)
	}
	return d
}()

// Generate creates a 12-word phrase and derives the default chains from it.
func Generate() (string, *WalletSet, error) {
	return defaultDeriver.Generate()
}

// DeriveFromMnemonic derives the default chains from mnemonic with an empty
// passphrase.
func DeriveFromMnemonic(mnemonic string) (*WalletSet, error) {
	return defaultDeriver.Derive(mnemonic)
}
