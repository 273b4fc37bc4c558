package domain

import (
	"crypto/sha512"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"
)

const (
	// SeedSize is the length of a BIP39 seed in bytes.
	SeedSize = 64

	seedIterations = 2048
	seedSaltPrefix = "mnemonic"
)

// ToSeed stretches a mnemonic and optional passphrase into a 64-byte seed
// with PBKDF2-HMAC-SHA512. Both inputs are NFKD-normalized first. The
// mnemonic is not validated.
func ToSeed(mnemonic, passphrase string) []byte {
	secret := []byte(norm.NFKD.String(mnemonic))
	defer clearBytes(secret)
	salt := []byte(seedSaltPrefix + norm.NFKD.String(passphrase))
	defer clearBytes(salt)
	return pbkdf2.Key(secret, salt, seedIterations, SeedSize, sha512.New)
}
