// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/mr-tron/base58"
	hdwallet "github.com/stephenlacy/go-ethereum-hdwallet"
)

// TestSolana_SecretMatchesAddress checks that the 64-byte secret is a
// working Ed25519 key whose public half is the address
func TestSolana_SecretMatchesAddress(t *testing.T) {
	is := is.New(t)

	set, err := DeriveFromMnemonic(testMnemonic)
	is.NoErr(err)
	sol, _ := set.Get("solana")
	is.NoErr(sol.Err)

	secret, err := hex.DecodeString(sol.Wallet.Secret)
	is.NoErr(err)
	is.Equal(len(secret), ed25519.PrivateKeySize)

	pub, err := base58.Decode(sol.Wallet.Address)
	is.NoErr(err)
	is.Equal(secret[32:], pub)

	priv := ed25519.PrivateKey(secret)
	sig := ed25519.Sign(priv, []byte("walletgen"))
	is.True(ed25519.Verify(pub, []byte("walletgen"), sig))
}

func TestSolanaKeypair_WrongSeedLength(t *testing.T) {
	is := is.New(t)

	_, err := solanaKeypair(make([]byte, 31))
	is.True(errors.Is(err, ErrInvalidKey))

	_, err = solanaAddress(Keypair{Public: make([]byte, 33)})
	is.True(errors.Is(err, ErrInvalidKey))
}

// TestEthereum_MatchesHDWallet cross-checks the Ethereum strategy against
// go-ethereum-hdwallet for random phrases
func TestEthereum_MatchesHDWallet(t *testing.T) {
	is := is.New(t)

	d, err := New(WithChains(Ethereum))
	is.NoErr(err)

	for i := 0; i < 5; i++ {
		mnemonic, err := NewMnemonic(rand.Reader, 24)
		is.NoErr(err)

		set, err := d.Derive(mnemonic)
		is.NoErr(err)
		eth, _ := set.Get("ethereum")
		is.NoErr(eth.Err)

		w, err := hdwallet.NewFromMnemonic(mnemonic)
		is.NoErr(err)
		account, err := w.Derive(hdwallet.MustParseDerivationPath(Ethereum.Path), false)
		is.NoErr(err)
		privHex, err := w.PrivateKeyHex(account)
		is.NoErr(err)

		is.Equal(eth.Wallet.Address, strings.ToLower(account.Address.Hex()))
		is.Equal(eth.Wallet.Secret, privHex)
	}
}

func TestSecp256k1Key_OutOfRange(t *testing.T) {
	is := is.New(t)

	_, err := ethereumKeypair(make([]byte, 32))
	is.True(errors.Is(err, ErrInvalidKey))

	order, err := hex.DecodeString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
	is.NoErr(err)
	_, err = ethereumKeypair(order)
	is.True(errors.Is(err, ErrInvalidKey))

	_, err = bitcoinKeypair(make([]byte, 20))
	is.True(errors.Is(err, ErrInvalidKey))

	_, err = ethereumAddress(Keypair{Public: make([]byte, 65)})
	is.True(errors.Is(err, ErrInvalidKey))
}

// TestBitcoin_BIP44Vector checks the legacy P2PKH address of the all-abandon
// phrase at m/44'/0'/0'/0/0
func TestBitcoin_BIP44Vector(t *testing.T) {
	is := is.New(t)

	d, err := New(WithChains(Bitcoin))
	is.NoErr(err)

	set, err := d.Derive(testMnemonic)
	is.NoErr(err)
	btc, _ := set.Get("bitcoin")
	is.NoErr(btc.Err)
	is.Equal(btc.Wallet.Address, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA")
	is.True(ethSecretRe.MatchString(btc.Wallet.Secret))
}

// TestNostr_NIP06Vector checks the first NIP-06 test vector.
// See: https://github.com/nostr-protocol/nips/blob/master/06.md
func TestNostr_NIP06Vector(t *testing.T) {
	is := is.New(t)

	d, err := New(WithChains(Nostr))
	is.NoErr(err)

	set, err := d.Derive("leader monkey parrot ring guide accident before fence cannon height naive bean")
	is.NoErr(err)
	n, _ := set.Get("nostr")
	is.NoErr(n.Err)
	is.Equal(n.Wallet.Secret, "7f7ff03d123792d6ac594bfa67bf6d0c0ab55b6b1fdb6249303fe861f1ccba9a")
	is.Equal(n.Wallet.Address, "npub1zutzeysacnf9rru6zqwmxd54mud0k44tst6l70ja5mhv8jjumytsd2x7nu")
}

func TestChainByName(t *testing.T) {
	is := is.New(t)

	for name, want := range map[string]string{
		"solana":    "solana",
		"SOL":       "solana",
		" Ethereum": "ethereum",
		"eth":       "ethereum",
		"btc":       "bitcoin",
		"nostr":     "nostr",
	} {
		c, ok := ChainByName(name)
		is.True(ok)
		is.Equal(c.Name, want)
	}

	_, ok := ChainByName("dogecoin")
	is.True(!ok)
}

func TestDefaultChains_IsCopy(t *testing.T) {
	is := is.New(t)

	chains := DefaultChains()
	chains[0].Path = "m/0'"
	is.Equal(DefaultChains()[0].Path, "m/44'/501'/0'/0'")
	is.Equal(Solana.Path, "m/44'/501'/0'/0'")
}
