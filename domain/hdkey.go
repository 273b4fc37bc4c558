package domain

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"

	wrapErrors "github.com/linlinbupt123-crypto/hdkey_service/errors"
)

// HardenedKeyStart is the index offset of hardened children (2^31).
const HardenedKeyStart = hdkeychain.HardenedKeyStart

var (
	masterKeyHMACKey = []byte("Bitcoin seed")

	// secp256k1 group order N
	curveOrder, _ = new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)
)

// ExtendedKey is a private scalar plus chain code. Depth and ChildIndex
// record where in the tree the key was derived.
type ExtendedKey struct {
	PrivateKey [32]byte
	ChainCode  [32]byte
	Depth      uint8
	ChildIndex uint32
}

// PublicKey returns the 33-byte compressed public key.
func (k *ExtendedKey) PublicKey() ([]byte, error) {
	return CompressedPublicKey(k.PrivateKey[:])
}

// Zero wipes the key material.
func (k *ExtendedKey) Zero() {
	if k == nil {
		return
	}
	clearBytes(k.PrivateKey[:])
	clearBytes(k.ChainCode[:])
}

// SeedToMaster computes HMAC-SHA512("Bitcoin seed", seed); the left half is
// the master scalar, the right half the chain code.
func SeedToMaster(seed []byte) (*ExtendedKey, error) {
	mac := hmac.New(sha512.New, masterKeyHMACKey)
	mac.Write(seed)
	sum := mac.Sum(nil)
	defer clearBytes(sum)

	il := new(big.Int).SetBytes(sum[:32])
	if il.Sign() == 0 || il.Cmp(curveOrder) >= 0 {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeInvalidMasterKey, "hd.master", ErrInvalidMasterKey)
	}

	master := &ExtendedKey{}
	copy(master.PrivateKey[:], sum[:32])
	copy(master.ChainCode[:], sum[32:])
	return master, nil
}

// KeyDeriver walks BIP32 private derivation. Order is the byte order used
// to serialize the child index into the HMAC input; nil means little-endian.
// Use IndexOrderStandard (big-endian ser32) to match other BIP32 wallets.
type KeyDeriver struct {
	Order binary.ByteOrder
}

var (
	IndexOrderDefault  binary.ByteOrder = binary.LittleEndian
	IndexOrderStandard binary.ByteOrder = binary.BigEndian
)

// ParseIndexOrder maps "little" (or "") and "big"/"standard" to a byte order.
func ParseIndexOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "little", "little-endian":
		return IndexOrderDefault, nil
	case "big", "big-endian", "standard":
		return IndexOrderStandard, nil
	default:
		return nil, fmt.Errorf("unknown index byte order %q", s)
	}
}

func (d KeyDeriver) order() binary.ByteOrder {
	if d.Order == nil {
		return IndexOrderDefault
	}
	return d.Order
}

// DeriveChild derives the child at index. index is the encoded value, so a
// hardened child already includes HardenedKeyStart; hardened selects the
// HMAC input layout (0x00||k||index versus serP(K)||index).
func (d KeyDeriver) DeriveChild(parent *ExtendedKey, index uint32, hardened bool) (*ExtendedKey, error) {
	const op = "hd.child"
	var data []byte
	if hardened {
		data = make([]byte, 0, 1+32+4)
		data = append(data, 0x00)
		data = append(data, parent.PrivateKey[:]...)
	} else {
		pub, err := CompressedPublicKey(parent.PrivateKey[:])
		if err != nil {
			return nil, err
		}
		data = pub
	}
	var ser [4]byte
	d.order().PutUint32(ser[:], index)
	data = append(data, ser[:]...)
	defer clearBytes(data)

	mac := hmac.New(sha512.New, parent.ChainCode[:])
	mac.Write(data)
	sum := mac.Sum(nil)
	defer clearBytes(sum)

	il := new(big.Int).SetBytes(sum[:32])
	if il.Cmp(curveOrder) >= 0 {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeInvalidChildKey, op,
			fmt.Errorf("%w: IL >= N at index %d", ErrInvalidChildKey, index))
	}
	k := new(big.Int).SetBytes(parent.PrivateKey[:])
	k.Add(k, il).Mod(k, curveOrder)
	if k.Sign() == 0 {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeInvalidChildKey, op,
			fmt.Errorf("%w: zero key at index %d", ErrInvalidChildKey, index))
	}

	child := &ExtendedKey{
		Depth:      parent.Depth + 1,
		ChildIndex: index,
	}
	k.FillBytes(child.PrivateKey[:])
	copy(child.ChainCode[:], sum[32:])
	return child, nil
}

// DerivePath derives the master key from seed and walks path from it.
func (d KeyDeriver) DerivePath(seed []byte, path DerivationPath) (*ExtendedKey, error) {
	key, err := SeedToMaster(seed)
	if err != nil {
		return nil, err
	}
	for _, seg := range path {
		child, err := d.DeriveChild(key, seg.Index, seg.Hardened)
		key.Zero()
		if err != nil {
			return nil, fmt.Errorf("failed to derive child %s: %w", seg, err)
		}
		key = child
	}
	return key, nil
}

var defaultDeriver = KeyDeriver{}

// DeriveChild uses the default (little-endian index) deriver.
func DeriveChild(parent *ExtendedKey, index uint32, hardened bool) (*ExtendedKey, error) {
	return defaultDeriver.DeriveChild(parent, index, hardened)
}

// DerivePath uses the default (little-endian index) deriver.
func DerivePath(seed []byte, path DerivationPath) (*ExtendedKey, error) {
	return defaultDeriver.DerivePath(seed, path)
}
