// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/tyler-smith/go-bip39"
)

// DefaultWordCount is the length of generated phrases unless configured
// otherwise: 12 words, 128 bits of entropy.
const DefaultWordCount = 12

// entropySizes maps BIP-39 word counts to entropy size in bytes.
var entropySizes = map[int]int{
	12: 16, // 128 bits
	15: 20, // 160 bits
	18: 24, // 192 bits
	21: 28, // 224 bits
	24: 32, // 256 bits
}

// ValidWordCounts returns the supported phrase lengths in ascending order.
func ValidWordCounts() []int {
	return []int{12, 15, 18, 21, 24}
}

// NewMnemonic reads fresh entropy from r and encodes it as a BIP-39 phrase
// of the given word count using the current bip39 word list.
//
// Valid word counts are: 12, 15, 18, 21, or 24. r should be a
// cryptographically secure source such as crypto/rand.Reader.
func NewMnemonic(r io.Reader, wordCount int) (string, error) {
	size, ok := entropySizes[wordCount]
	if !ok {
		return "", fmt.Errorf("%w: %d (must be 12, 15, 18, 21, or 24)", ErrInvalidWordCount, wordCount)
	}

	entropy := make([]byte, size)
	defer clear(entropy)
	if _, err := io.ReadFull(r, entropy); err != nil {
		return "", fmt.Errorf("could not read entropy: %w", err)
	}

	words, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("could not create a mnemonic set of words: %w", err)
	}
	return words, nil
}

// NormalizeMnemonic trims the phrase and collapses runs of whitespace to a
// single space.
func NormalizeMnemonic(mnemonic string) string {
	return strings.Join(strings.Fields(mnemonic), " ")
}

// ValidateMnemonic checks the phrase's words against the current word list
// and verifies its checksum. The error wraps ErrInvalidMnemonic.
func ValidateMnemonic(mnemonic string) error {
	mnemonic = NormalizeMnemonic(mnemonic)
	if _, err := bip39.EntropyFromMnemonic(mnemonic); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return nil
}

// newSeed validates the phrase and expands it into the 64-byte BIP-39 seed.
// The caller owns the returned buffer and should clear it after use.
func newSeed(mnemonic, passphrase string) ([]byte, error) {
	seed, err := bip39.NewSeedWithErrorChecking(NormalizeMnemonic(mnemonic), passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}
