// Copyright (c) 2025-2026 complex (complex@ft.hn)
// See LICENSE for licensing information

package walletgen

import (
	"bytes"
	"crypto/rand"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/matryer/is"
)

// TestNewMnemonic_AllFormats tests all word count formats
func TestNewMnemonic_AllFormats(t *testing.T) {
	for _, count := range ValidWordCounts() {
		t.Run(strconv.Itoa(count), func(t *testing.T) {
			is := is.New(t)
			mnemonic, err := NewMnemonic(rand.Reader, count)
			is.NoErr(err)
			is.Equal(len(strings.Fields(mnemonic)), count)
			is.NoErr(ValidateMnemonic(mnemonic))
		})
	}
}

// TestNewMnemonic_InvalidWordCount tests invalid word counts
func TestNewMnemonic_InvalidWordCount(t *testing.T) {
	invalidCounts := []int{0, 10, 11, 13, 14, 16, 17, 19, 20, 22, 23, 25, 30}

	for _, count := range invalidCounts {
		t.Run(strconv.Itoa(count), func(t *testing.T) {
			is := is.New(t)
			_, err := NewMnemonic(rand.Reader, count)
			is.True(errors.Is(err, ErrInvalidWordCount))
		})
	}
}

// TestNewMnemonic_ShortEntropy tests that a short entropy read is an error
// rather than a weak phrase
func TestNewMnemonic_ShortEntropy(t *testing.T) {
	is := is.New(t)

	_, err := NewMnemonic(bytes.NewReader(make([]byte, 15)), 12)
	is.True(err != nil)
}

// TestNewMnemonic_Deterministic tests that the phrase depends only on the
// entropy read
func TestNewMnemonic_Deterministic(t *testing.T) {
	is := is.New(t)

	entropy := bytes.Repeat([]byte{0xff}, 32)
	m1, err := NewMnemonic(bytes.NewReader(entropy), 24)
	is.NoErr(err)
	m2, err := NewMnemonic(bytes.NewReader(entropy), 24)
	is.NoErr(err)
	is.Equal(m1, m2)

	m3, err := NewMnemonic(bytes.NewReader(make([]byte, 16)), 12)
	is.NoErr(err)
	is.Equal(m3, testMnemonic)
}

func TestNormalizeMnemonic(t *testing.T) {
	is := is.New(t)

	is.Equal(NormalizeMnemonic("  zoo\tzoo \n zoo  "), "zoo zoo zoo")
	is.Equal(NormalizeMnemonic(""), "")
}
