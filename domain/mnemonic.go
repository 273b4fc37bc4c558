package domain

import (
	"crypto/sha256"
	"fmt"
	"strings"

	bip39 "github.com/tyler-smith/go-bip39"

	wrapErrors "github.com/linlinbupt123-crypto/hdkey_service/errors"
)

const (
	bitsPerWord     = 11
	minEntropyBytes = 16
	maxEntropyBytes = 32
	minWordCount    = 12
	maxWordCount    = 24
)

// ValidStrength reports whether bits is an allowed entropy size.
func ValidStrength(bits int) bool {
	return bits >= minEntropyBytes*8 && bits <= maxEntropyBytes*8 && bits%32 == 0
}

// GenerateMnemonic draws strengthBits of entropy from crypto/rand and
// encodes it with wl.
func GenerateMnemonic(strengthBits int, wl *Wordlist) (string, error) {
	if !ValidStrength(strengthBits) {
		return "", wrapErrors.WrapWithCode(wrapErrors.CodeInvalidStrength, "mnemonic.generate",
			fmt.Errorf("%w: got %d", ErrInvalidStrength, strengthBits))
	}
	entropy, err := bip39.NewEntropy(strengthBits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clearBytes(entropy)
	return EntropyToMnemonic(entropy, wl)
}

// EntropyToMnemonic appends the first len(entropy)*8/32 bits of
// SHA256(entropy) to the entropy and maps every 11 bits to a word.
func EntropyToMnemonic(entropy []byte, wl *Wordlist) (string, error) {
	const op = "mnemonic.encode"
	switch {
	case len(entropy) < minEntropyBytes:
		return "", wrapErrors.WrapWithCode(wrapErrors.CodeEntropyTooShort, op,
			fmt.Errorf("%w: got %d", ErrEntropyTooShort, len(entropy)))
	case len(entropy) > maxEntropyBytes:
		return "", wrapErrors.WrapWithCode(wrapErrors.CodeEntropyTooLong, op,
			fmt.Errorf("%w: got %d", ErrEntropyTooLong, len(entropy)))
	case len(entropy)%4 != 0:
		return "", wrapErrors.WrapWithCode(wrapErrors.CodeInvalidEntropyLength, op,
			fmt.Errorf("%w: got %d", ErrInvalidEntropyLength, len(entropy)))
	}

	entropyBits := len(entropy) * 8
	checksumBits := entropyBits / 32
	hash := sha256.Sum256(entropy)

	// checksum is at most 8 bits, so one hash byte is enough
	buf := make([]byte, 0, len(entropy)+1)
	buf = append(buf, entropy...)
	buf = append(buf, hash[0])
	defer clearBytes(buf)

	words := make([]string, (entropyBits+checksumBits)/bitsPerWord)
	for i := range words {
		words[i] = wl.Word(readBits(buf, i*bitsPerWord, bitsPerWord))
	}
	return strings.Join(words, " "), nil
}

// MnemonicToEntropy reverses EntropyToMnemonic and verifies the checksum.
func MnemonicToEntropy(mnemonic string, wl *Wordlist) ([]byte, error) {
	const op = "mnemonic.decode"
	words := strings.Fields(mnemonic)
	n := len(words)
	if n%3 != 0 || n < minWordCount || n > maxWordCount {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeInvalidMnemonic, op,
			fmt.Errorf("%w: word count %d", ErrInvalidMnemonic, n))
	}

	totalBits := n * bitsPerWord
	buf := make([]byte, (totalBits+7)/8)
	defer clearBytes(buf)
	for i, w := range words {
		idx, ok := wl.Index(w)
		if !ok {
			// the word itself is not echoed, it may be part of a secret
			return nil, wrapErrors.WrapWithCode(wrapErrors.CodeInvalidMnemonic, op,
				fmt.Errorf("%w: word %d not in wordlist", ErrInvalidMnemonic, i+1))
		}
		writeBits(buf, i*bitsPerWord, bitsPerWord, idx)
	}

	entropyBits := totalBits / 33 * 32
	checksumBits := totalBits - entropyBits
	entropy := make([]byte, entropyBits/8)
	copy(entropy, buf)

	hash := sha256.Sum256(entropy)
	want := int(hash[0] >> (8 - checksumBits))
	if got := readBits(buf, entropyBits, checksumBits); got != want {
		clearBytes(entropy)
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeChecksumMismatch, op, ErrChecksumMismatch)
	}
	return entropy, nil
}

// ValidateMnemonic never fails; any decoding error reports false.
func ValidateMnemonic(mnemonic string, wl *Wordlist) bool {
	entropy, err := MnemonicToEntropy(mnemonic, wl)
	clearBytes(entropy)
	return err == nil
}

// readBits returns n bits of b starting at bit offset off, MSB first.
func readBits(b []byte, off, n int) int {
	v := 0
	for i := off; i < off+n; i++ {
		v = v<<1 | int(b[i/8]>>(7-uint(i%8))&1)
	}
	return v
}

func writeBits(b []byte, off, n, v int) {
	for i := 0; i < n; i++ {
		if v>>(n-1-i)&1 == 1 {
			pos := off + i
			b[pos/8] |= 1 << (7 - uint(pos%8))
		}
	}
}
