package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWallet(t *testing.T, deriver KeyDeriver) *HDWallet {
	t.Helper()
	w, err := NewHDWallet(EnglishWordlist(), deriver)
	require.NoError(t, err)
	return w
}

func TestNewHDWallet_NilWordlist(t *testing.T) {
	_, err := NewHDWallet(nil, KeyDeriver{})
	assert.Error(t, err)
}

func TestHDWallet_EndToEnd(t *testing.T) {
	w := newTestWallet(t, KeyDeriver{Order: IndexOrderStandard})

	seed, err := w.Seed(abandonAbout, "")
	require.NoError(t, err)
	require.Len(t, seed, SeedSize)

	key, err := w.DeriveKey(seed, DefaultPath)
	require.NoError(t, err)
	ClearBytes(seed)
	assert.Equal(t, make([]byte, SeedSize), seed)

	addr, err := ToAddress(key.PrivateKey[:])
	require.NoError(t, err)
	assert.Equal(t, abandonAboutAddress, addr)
}

func TestHDWallet_NewMnemonic(t *testing.T) {
	w := newTestWallet(t, KeyDeriver{})
	for _, strength := range []int{128, 256} {
		m, err := w.NewMnemonic(strength)
		require.NoError(t, err)
		assert.True(t, w.ValidateMnemonic(m))

		seed, err := w.Seed(m, "pass")
		require.NoError(t, err)
		_, err = w.DeriveKey(seed, DefaultPath)
		require.NoError(t, err)
	}

	_, err := w.NewMnemonic(100)
	assert.True(t, errors.Is(err, ErrInvalidStrength))
}

func TestHDWallet_SeedRejectsInvalidMnemonic(t *testing.T) {
	w := newTestWallet(t, KeyDeriver{})
	_, err := w.Seed(repeatWord("abandon", 11, "abandon"), "")
	assert.True(t, errors.Is(err, ErrChecksumMismatch))

	_, err = w.Seed("not a mnemonic", "")
	assert.True(t, errors.Is(err, ErrInvalidMnemonic))
}

func TestHDWallet_DeriveKeyRejectsShortSeed(t *testing.T) {
	w := newTestWallet(t, KeyDeriver{})
	_, err := w.DeriveKey(make([]byte, 32), DefaultPath)
	assert.Error(t, err)
}
