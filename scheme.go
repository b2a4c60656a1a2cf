// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"crypto/ed25519"
	"fmt"

	"github.com/anyproto/go-slip10"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
)

// KeyScheme applies a hierarchical derivation path to a BIP-39 seed and
// returns the 32 bytes of private key material at the end of the path.
type KeyScheme func(seed []byte, path Path) ([]byte, error)

// SLIP10Ed25519 derives ed25519 key material as defined by SLIP-0010. The
// curve only supports hardened children, so a path with any non-hardened
// index fails with ErrNonHardenedPath.
//
// This is the scheme Solana wallets use for m/44'/501'/...
func SLIP10Ed25519(seed []byte, path Path) ([]byte, error) {
	if !path.AllHardened() {
		return nil, fmt.Errorf("%w: %s", ErrNonHardenedPath, path)
	}

	node, err := slip10.NewMasterNode(seed)
	if err != nil {
		return nil, fmt.Errorf("could not create master node: %w", err)
	}
	for _, idx := range path {
		node, err = node.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("could not derive child %d: %w", idx, err)
		}
	}

	_, priv := node.Keypair()
	defer clear(priv)
	out := make([]byte, ed25519.SeedSize)
	copy(out, priv.Seed())
	return out, nil
}

// BIP32Secp256k1 derives a secp256k1 private scalar along path using
// BIP-32. Both hardened and normal indices are allowed.
func BIP32Secp256k1(seed []byte, path Path) ([]byte, error) {
	// The network params only affect extended key serialization, which is
	// never used here.
	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("could not create master key: %w", err)
	}

	for _, idx := range path {
		key, err = key.Derive(idx)
		if err != nil {
			return nil, fmt.Errorf("could not derive child %d: %w", idx, err)
		}
	}

	priv, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("could not get private key: %w", err)
	}
	return priv.Serialize(), nil
}
