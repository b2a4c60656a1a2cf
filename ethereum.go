// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"encoding/hex"
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	secp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"golang.org/x/crypto/sha3"
)

// secp256k1Key validates key as a secp256k1 private scalar in [1, n-1] and
// returns the parsed private key.
func secp256k1Key(key []byte) (*btcec.PrivateKey, error) {
	if len(key) != btcec.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: secp256k1 scalar must be %d bytes, got %d", ErrInvalidKey, btcec.PrivKeyBytesLen, len(key))
	}
	var s btcec.ModNScalar
	if overflow := s.SetByteSlice(key); overflow || s.IsZero() {
		return nil, fmt.Errorf("%w: secp256k1 scalar out of range", ErrInvalidKey)
	}
	priv, _ := btcec.PrivKeyFromBytes(key)
	return priv, nil
}

// ethereumKeypair keeps the uncompressed public point (0x04 || X || Y) so
// the address step can hash X || Y.
func ethereumKeypair(key []byte) (Keypair, error) {
	priv, err := secp256k1Key(key)
	if err != nil {
		return Keypair{}, err
	}
	return Keypair{
		Public: priv.PubKey().SerializeUncompressed(),
		Secret: priv.Serialize(),
	}, nil
}

// ethereumAddress drops the format prefix byte, hashes the 64-byte point
// with Keccak-256 and keeps the low-order 20 bytes.
func ethereumAddress(kp Keypair) (string, error) {
	if len(kp.Public) != secp.PubKeyBytesLenUncompressed || kp.Public[0] != 0x04 {
		return "", fmt.Errorf("%w: expected %d-byte uncompressed public key", ErrInvalidKey, secp.PubKeyBytesLenUncompressed)
	}
	h := sha3.NewLegacyKeccak256()
	h.Write(kp.Public[1:])
	sum := h.Sum(nil)
	return "0x" + hex.EncodeToString(sum[12:]), nil
}
