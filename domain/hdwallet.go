package domain

import (
	"fmt"
)

// NOTE:
// - Nothing here is persisted: mnemonics, seeds and private keys live only for
//   the duration of one call and are zeroed as soon as possible.
// - The wordlist is always injected; HDWallet never reaches for a global list.

// ---------- Helpers ----------
func clearBytes(b []byte) {
	if b == nil {
		return
	}
	for i := range b {
		b[i] = 0
	}
}

// ClearBytes zeroes b. Callers use it on seeds returned by HDWallet.Seed.
func ClearBytes(b []byte) {
	clearBytes(b)
}

// ---------- HD wallet ----------
type HDWallet struct {
	wordlist *Wordlist
	deriver  KeyDeriver
}

func NewHDWallet(wl *Wordlist, deriver KeyDeriver) (*HDWallet, error) {
	if wl == nil {
		return nil, fmt.Errorf("wordlist is nil")
	}
	return &HDWallet{wordlist: wl, deriver: deriver}, nil
}

func (w *HDWallet) Wordlist() *Wordlist {
	return w.wordlist
}

/*
NewMnemonic generates a fresh mnemonic.

Parameters:
  - strengthBits: 128, 160, 192, 224 or 256 (12 to 24 words)
*/
func (w *HDWallet) NewMnemonic(strengthBits int) (string, error) {
	return GenerateMnemonic(strengthBits, w.wordlist)
}

func (w *HDWallet) ValidateMnemonic(mnemonic string) bool {
	return ValidateMnemonic(mnemonic, w.wordlist)
}

// Seed validates the mnemonic against the wallet's wordlist before
// stretching it. The returned seed must be cleared by the caller.
func (w *HDWallet) Seed(mnemonic, passphrase string) ([]byte, error) {
	entropy, err := MnemonicToEntropy(mnemonic, w.wordlist)
	clearBytes(entropy)
	if err != nil {
		return nil, err
	}
	return ToSeed(mnemonic, passphrase), nil
}

// DeriveKey walks path from the master key of seed.
func (w *HDWallet) DeriveKey(seed []byte, path DerivationPath) (*ExtendedKey, error) {
	if len(seed) != SeedSize {
		return nil, fmt.Errorf("seed must be %d bytes, got %d", SeedSize, len(seed))
	}
	return w.deriver.DerivePath(seed, path)
}
