// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"crypto/ed25519"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// solanaKeypair treats the derived 32 bytes as an Ed25519 seed. The secret
// is the 64-byte Ed25519 private key (seed followed by public key), which is
// the layout Solana keypair files use.
func solanaKeypair(key []byte) (Keypair, error) {
	if len(key) != ed25519.SeedSize {
		return Keypair{}, fmt.Errorf("%w: ed25519 seed must be %d bytes, got %d", ErrInvalidKey, ed25519.SeedSize, len(key))
	}
	priv := solana.PrivateKey(ed25519.NewKeyFromSeed(key))
	pub := priv.PublicKey()
	return Keypair{
		Public: pub.Bytes(),
		Secret: priv,
	}, nil
}

// solanaAddress encodes the 32-byte public key in base-58.
func solanaAddress(kp Keypair) (string, error) {
	if len(kp.Public) != ed25519.PublicKeySize {
		return "", fmt.Errorf("%w: ed25519 public key must be %d bytes, got %d", ErrInvalidKey, ed25519.PublicKeySize, len(kp.Public))
	}
	return solana.PublicKeyFromBytes(kp.Public).String(), nil
}
