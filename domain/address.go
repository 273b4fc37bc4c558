package domain

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	wrapErrors "github.com/linlinbupt123-crypto/hdkey_service/errors"
)

const checksumSize = 4

// CompressedPublicKey multiplies the secp256k1 base point by priv and
// returns the 33-byte compressed encoding.
func CompressedPublicKey(priv []byte) ([]byte, error) {
	const op = "address.pubkey"
	if len(priv) != 32 {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeInvalidPrivateKey, op,
			fmt.Errorf("%w: must be 32 bytes, got %d", ErrInvalidPrivateKey, len(priv)))
	}
	var scalar secp256k1.ModNScalar
	defer scalar.Zero()
	if overflow := scalar.SetByteSlice(priv); overflow || scalar.IsZero() {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeInvalidPrivateKey, op, ErrInvalidPrivateKey)
	}
	key := secp256k1.NewPrivateKey(&scalar)
	defer key.Zero()
	return key.PubKey().SerializeCompressed(), nil
}

// ToAddress renders the mainnet P2PKH address of priv.
func ToAddress(priv []byte) (string, error) {
	return ToAddressWithVersion(priv, chaincfg.MainNetParams.PubKeyHashAddrID)
}

// ToAddressWithVersion renders a P2PKH address with the given version byte:
// Base58Check(version || RIPEMD160(SHA256(pubkey))).
func ToAddressWithVersion(priv []byte, version byte) (string, error) {
	pub, err := CompressedPublicKey(priv)
	if err != nil {
		return "", err
	}
	return Base58CheckEncode(version, btcutil.Hash160(pub)), nil
}

// Base58CheckEncode appends the first four bytes of SHA256d(version||payload)
// and Base58-encodes the result.
func Base58CheckEncode(version byte, payload []byte) string {
	b := make([]byte, 0, 1+len(payload)+checksumSize)
	b = append(b, version)
	b = append(b, payload...)
	checksum := chainhash.DoubleHashB(b)
	b = append(b, checksum[:checksumSize]...)
	return Base58Encode(b)
}
