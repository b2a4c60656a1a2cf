// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/nbd-wtf/go-nostr/nip19"
)

// nostrKeypair keeps the 32-byte x-only public key used by BIP-340
// signatures, which is what Nostr identifies users by.
func nostrKeypair(key []byte) (Keypair, error) {
	priv, err := secp256k1Key(key)
	if err != nil {
		return Keypair{}, err
	}
	return Keypair{
		Public: schnorr.SerializePubKey(priv.PubKey()),
		Secret: priv.Serialize(),
	}, nil
}

// nostrAddress encodes the x-only public key as a bech32 npub.
func nostrAddress(kp Keypair) (string, error) {
	if len(kp.Public) != schnorr.PubKeyBytesLen {
		return "", fmt.Errorf("%w: expected %d-byte x-only public key", ErrInvalidKey, schnorr.PubKeyBytesLen)
	}
	npub, err := nip19.EncodePublicKey(hex.EncodeToString(kp.Public))
	if err != nil {
		return "", fmt.Errorf("failed to encode public key: %w", err)
	}
	return npub, nil
}
