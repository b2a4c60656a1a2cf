// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"errors"
	"fmt"
)

// ErrInvalidMnemonic is returned when a phrase fails wordlist or checksum
// validation. It aborts the whole call: no seed can be computed, so no
// WalletSet is produced.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Errors wrapped inside a ChainError.
var (
	ErrInvalidPath     = errors.New("invalid derivation path")
	ErrNonHardenedPath = errors.New("non-hardened derivation is not supported for ed25519")
	ErrInvalidKey      = errors.New("invalid key material")
	ErrPanic           = errors.New("panic during derivation")
)

// Configuration errors returned by New.
var (
	ErrNoChains         = errors.New("no chains configured")
	ErrDuplicateChain   = errors.New("duplicate chain")
	ErrIncompleteChain  = errors.New("incomplete chain definition")
	ErrInvalidWordCount = errors.New("invalid word count")
	ErrNoEntropySource  = errors.New("no entropy source")
)

// ChainError records a derivation failure scoped to a single chain. It is
// stored in that chain's Result and never returned from Derive or Generate.
type ChainError struct {
	Chain string
	Err   error
}

func (e *ChainError) Error() string {
	return fmt.Sprintf("%s: %v", e.Chain, e.Err)
}

func (e *ChainError) Unwrap() error {
	return e.Err
}
