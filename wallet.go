// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Wallet is a derived address with its private key material. Secret is
// lowercase hex.
type Wallet struct {
	Address string `json:"address"`
	Secret  string `json:"secret,omitempty"`
}

// String prints the address only, so a Wallet can be logged without
// leaking its secret.
func (w Wallet) String() string {
	return w.Address
}

// Result is the outcome of deriving one chain. Exactly one of Wallet and
// Err is set.
type Result struct {
	Chain  string
	Wallet *Wallet
	Err    error
}

// OK reports whether the chain derived successfully.
func (r Result) OK() bool {
	return r.Err == nil && r.Wallet != nil
}

// MarshalJSON renders a success as {"address","secret"} and a failure as
// {"error"}.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.OK() {
		msg := fmt.Sprintf("%s: no wallet", r.Chain)
		if r.Err != nil {
			msg = r.Err.Error()
		}
		return json.Marshal(struct {
			Error string `json:"error"`
		}{msg})
	}
	return json.Marshal(r.Wallet)
}

// WalletSet maps chain names to their Result, keeping the order in which
// chains were configured.
type WalletSet struct {
	results []Result
	index   map[string]int
}

func newWalletSet(n int) *WalletSet {
	return &WalletSet{
		results: make([]Result, 0, n),
		index:   make(map[string]int, n),
	}
}

func (s *WalletSet) add(r Result) {
	s.index[r.Chain] = len(s.results)
	s.results = append(s.results, r)
}

// Len returns the number of chains in the set.
func (s *WalletSet) Len() int {
	return len(s.results)
}

// Get returns the Result for chain.
func (s *WalletSet) Get(chain string) (Result, bool) {
	i, ok := s.index[chain]
	if !ok {
		return Result{}, false
	}
	return s.results[i], true
}

// Results returns a copy of every Result in configuration order.
func (s *WalletSet) Results() []Result {
	return append([]Result(nil), s.results...)
}

// Chains returns the chain names in configuration order.
func (s *WalletSet) Chains() []string {
	names := make([]string, len(s.results))
	for i, r := range s.results {
		names[i] = r.Chain
	}
	return names
}

// Errs returns the per-chain errors in configuration order, or nil when
// every chain succeeded.
func (s *WalletSet) Errs() []error {
	var errs []error
	for _, r := range s.results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errs
}

// Redacted returns a copy of the set with every secret removed.
func (s *WalletSet) Redacted() *WalletSet {
	out := newWalletSet(len(s.results))
	for _, r := range s.results {
		if r.Wallet != nil {
			r.Wallet = &Wallet{Address: r.Wallet.Address}
		}
		out.add(r)
	}
	return out
}

// MarshalJSON renders the set as a JSON object keyed by chain name, in
// configuration order.
func (s *WalletSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range s.results {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Chain)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r)
		if err != nil {
			return nil, fmt.Errorf("could not encode %s: %w", r.Chain, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
