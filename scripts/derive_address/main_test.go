package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/complex-gh/walletgen"
	"github.com/matryer/is"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestRun_Args(t *testing.T) {
	is := is.New(t)

	var out bytes.Buffer
	args := append([]string{"eth"}, strings.Fields(testMnemonic)...)
	is.NoErr(run(args, strings.NewReader(""), &out))
	is.Equal(out.String(), "0x9858effd232b4033e47d90003d41ec34ecaeda94\n")
}

func TestRun_Stdin(t *testing.T) {
	is := is.New(t)

	var out bytes.Buffer
	is.NoErr(run([]string{"solana"}, strings.NewReader("  "+testMnemonic+"\n"), &out))
	is.Equal(out.String(), "HAgk14JpMQLgt6rVgv7cBQFJWFto5Dqxi472uT3DKpqk\n")
}

func TestRun_Errors(t *testing.T) {
	is := is.New(t)

	var out bytes.Buffer
	is.True(errors.Is(run(nil, strings.NewReader(""), &out), errUsage))
	is.True(errors.Is(run([]string{"btc"}, strings.NewReader(""), &out), errUsage))
	is.True(run([]string{"dogecoin", testMnemonic}, strings.NewReader(""), &out) != nil)
	is.True(errors.Is(run([]string{"eth", "abandon abandon"}, strings.NewReader(""), &out), walletgen.ErrInvalidMnemonic))
	is.Equal(out.Len(), 0)
}
