package domain

import "errors"

var (
	ErrInvalidStrength       = errors.New("strength must be one of 128, 160, 192, 224 or 256 bits")
	ErrEntropyTooShort       = errors.New("entropy must be at least 16 bytes")
	ErrEntropyTooLong        = errors.New("entropy must be at most 32 bytes")
	ErrInvalidEntropyLength  = errors.New("entropy length must be a multiple of 4 bytes")
	ErrInvalidMnemonic       = errors.New("invalid mnemonic")
	ErrChecksumMismatch      = errors.New("mnemonic checksum mismatch")
	ErrInvalidMasterKey      = errors.New("seed produces an invalid master key")
	ErrInvalidChildKey       = errors.New("index produces an invalid child key")
	ErrInvalidPrivateKey     = errors.New("private key out of curve order range")
	ErrInvalidWordlist       = errors.New("wordlist must contain exactly 2048 words")
	ErrInvalidDerivationPath = errors.New("invalid derivation path")
)
