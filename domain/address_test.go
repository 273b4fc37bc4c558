package domain

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase58Encode(t *testing.T) {
	tests := []struct {
		in   []byte
		want string
	}{
		{nil, ""},
		{[]byte{}, ""},
		{[]byte{0x00}, "1"},
		{[]byte{0x61}, "2g"},
		{[]byte("abc"), "ZiCa"},
		{[]byte("Hello World"), "JxF12TrwUP45BMd"},
		{[]byte{0x00, 0x00, 0x01}, "112"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Base58Encode(tt.in), "%x", tt.in)
	}
}

func TestBase58Encode_LeadingZeros(t *testing.T) {
	for k := 1; k <= 8; k++ {
		assert.Equal(t, strings.Repeat("1", k), Base58Encode(make([]byte, k)))
	}
}

func TestBase58Encode_MatchesBtcutil(t *testing.T) {
	for i := 0; i < 64; i++ {
		b := make([]byte, i%40)
		_, err := rand.Read(b)
		require.NoError(t, err)
		if i%5 == 0 && len(b) > 2 {
			b[0], b[1] = 0, 0
		}
		assert.Equal(t, base58.Encode(b), Base58Encode(b))
	}
}

func TestBase58CheckEncode_MatchesBtcutil(t *testing.T) {
	payload := make([]byte, 20)
	_, err := rand.Read(payload)
	require.NoError(t, err)
	for _, version := range []byte{0x00, 0x05, 0x6f, 0xc4} {
		assert.Equal(t, base58.CheckEncode(payload, version), Base58CheckEncode(version, payload))
	}
}

func TestToAddress_KeyOne(t *testing.T) {
	priv := make([]byte, 32)
	priv[31] = 1

	pub, err := CompressedPublicKey(priv)
	require.NoError(t, err)
	assert.Equal(t, "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798", hex.EncodeToString(pub))

	addr, err := ToAddress(priv)
	require.NoError(t, err)
	assert.Equal(t, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH", addr)
}

func TestToAddress_MatchesBtcutil(t *testing.T) {
	key, err := DerivePath(ToSeed(abandonAbout, ""), DefaultPath)
	require.NoError(t, err)

	pub, err := key.PublicKey()
	require.NoError(t, err)
	ref, err := btcutil.NewAddressPubKeyHash(btcutil.Hash160(pub), &chaincfg.MainNetParams)
	require.NoError(t, err)

	addr, err := ToAddress(key.PrivateKey[:])
	require.NoError(t, err)
	assert.Equal(t, ref.EncodeAddress(), addr)
	assert.True(t, strings.HasPrefix(addr, "1"))
	assert.GreaterOrEqual(t, len(addr), 26)
	assert.LessOrEqual(t, len(addr), 35)
}

func TestToAddressWithVersion_Testnet(t *testing.T) {
	priv := make([]byte, 32)
	priv[31] = 1

	addr, err := ToAddressWithVersion(priv, chaincfg.TestNet3Params.PubKeyHashAddrID)
	require.NoError(t, err)
	assert.Contains(t, []byte{'m', 'n'}, addr[0])

	decoded, err := btcutil.DecodeAddress(addr, &chaincfg.TestNet3Params)
	require.NoError(t, err)
	assert.True(t, decoded.IsForNet(&chaincfg.TestNet3Params))
}

func TestCompressedPublicKey_Invalid(t *testing.T) {
	order, err := hex.DecodeString("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141")
	require.NoError(t, err)

	tests := map[string][]byte{
		"zero":     make([]byte, 32),
		"order":    order,
		"short":    make([]byte, 31),
		"long":     make([]byte, 33),
		"all ones": []byte(strings.Repeat("\xff", 32)),
	}
	for name, priv := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := CompressedPublicKey(priv)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPrivateKey))

			_, err = ToAddress(priv)
			assert.True(t, errors.Is(err, ErrInvalidPrivateKey))
		})
	}
}
