// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

const hardened = uint32(1) << 31

func TestParsePath(t *testing.T) {
	is := is.New(t)

	path, err := ParsePath("m/44'/60'/0'/0/0")
	is.NoErr(err)
	is.Equal(path, Path{44 + hardened, 60 + hardened, hardened, 0, 0})
	is.Equal(path.String(), "m/44'/60'/0'/0/0")
	is.True(!path.AllHardened())

	path, err = ParsePath("m/44h/501H/0'/0'")
	is.NoErr(err)
	is.Equal(path.String(), "m/44'/501'/0'/0'")
	is.True(path.AllHardened())

	path, err = ParsePath("  M/2147483647'  ")
	is.NoErr(err)
	is.Equal(path, Path{hardened + 2147483647})
}

func TestParsePath_Invalid(t *testing.T) {
	is := is.New(t)

	invalid := []string{
		"",
		"m",
		"m/",
		"44'/60'/0'/0/0",
		"/44'/60'",
		"m/44'//0",
		"m/x'/0",
		"m/-1",
		"m/+1",
		"m/''",
		"m/2147483648",
		"m/4294967296'",
		"m/1.5",
		"x/0",
	}

	for _, s := range invalid {
		_, err := ParsePath(s)
		is.True(errors.Is(err, ErrInvalidPath))
	}
}
