// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

func bitcoinKeypair(key []byte) (Keypair, error) {
	priv, err := secp256k1Key(key)
	if err != nil {
		return Keypair{}, err
	}
	return Keypair{
		Public: priv.PubKey().SerializeCompressed(),
		Secret: priv.Serialize(),
	}, nil
}

// bitcoinAddress encodes a mainnet P2PKH address for the compressed key.
func bitcoinAddress(kp Keypair) (string, error) {
	if len(kp.Public) != btcec.PubKeyBytesLenCompressed {
		return "", fmt.Errorf("%w: expected %d-byte compressed public key", ErrInvalidKey, btcec.PubKeyBytesLenCompressed)
	}
	addr, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(kp.Public), &chaincfg.MainNetParams)
	if err != nil {
		return "", fmt.Errorf("could not create P2PKH address: %w", err)
	}
	return addr.EncodeAddress(), nil
}
