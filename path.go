// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
)

// Path is a parsed hierarchical derivation path. Hardened indices carry
// hdkeychain.HardenedKeyStart (2^31) added to their value.
type Path []uint32

// ParsePath parses a path of the form "m/44'/60'/0'/0/0". The leading "m"
// segment is required. A segment suffixed with ', h or H is hardened.
// Every index must be below 2^31 before hardening.
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	parts := strings.Split(s, "/")
	if len(parts) == 0 || (parts[0] != "m" && parts[0] != "M") {
		return nil, fmt.Errorf("%w: %q must start with m/", ErrInvalidPath, s)
	}
	if len(parts) == 1 {
		return nil, fmt.Errorf("%w: %q has no child indices", ErrInvalidPath, s)
	}

	path := make(Path, 0, len(parts)-1)
	for _, part := range parts[1:] {
		hardened := false
		switch {
		case strings.HasSuffix(part, "'"), strings.HasSuffix(part, "h"), strings.HasSuffix(part, "H"):
			hardened = true
			part = part[:len(part)-1]
		}
		if part == "" || part[0] == '+' || part[0] == '-' {
			return nil, fmt.Errorf("%w: bad segment in %q", ErrInvalidPath, s)
		}

		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: bad segment %q in %q", ErrInvalidPath, part, s)
		}
		if n >= uint64(hdkeychain.HardenedKeyStart) {
			return nil, fmt.Errorf("%w: index %d out of range in %q", ErrInvalidPath, n, s)
		}

		idx := uint32(n)
		if hardened {
			idx += hdkeychain.HardenedKeyStart
		}
		path = append(path, idx)
	}
	return path, nil
}

// AllHardened reports whether every index in the path is hardened.
func (p Path) AllHardened() bool {
	for _, idx := range p {
		if idx < hdkeychain.HardenedKeyStart {
			return false
		}
	}
	return true
}

func (p Path) String() string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range p {
		b.WriteByte('/')
		if idx >= hdkeychain.HardenedKeyStart {
			b.WriteString(strconv.FormatUint(uint64(idx-hdkeychain.HardenedKeyStart), 10))
			b.WriteByte('\'')
			continue
		}
		b.WriteString(strconv.FormatUint(uint64(idx), 10))
	}
	return b.String()
}
