package chain

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/linlinbupt123-crypto/hdkey_service/domain"
)

type BTCChain struct {
	MainNet bool
	hd      *domain.HDWallet
}

func NewBTCChain(mainnet bool, hd *domain.HDWallet) *BTCChain {
	return &BTCChain{MainNet: mainnet, hd: hd}
}

func (b *BTCChain) netParams() *chaincfg.Params {
	if b.MainNet {
		return &chaincfg.MainNetParams
	}
	return &chaincfg.TestNet3Params
}

func (b *BTCChain) Network() string {
	return NetworkName(b.MainNet)
}

// DeriveAddress walks path from the master key of seed and returns the
// P2PKH address of the resulting key. The derived key is zeroed on return.
func (b *BTCChain) DeriveAddress(seed []byte, path domain.DerivationPath) (string, error) {
	key, err := b.hd.DeriveKey(seed, path)
	if err != nil {
		return "", err
	}
	defer key.Zero()

	return domain.ToAddressWithVersion(key.PrivateKey[:], b.netParams().PubKeyHashAddrID)
}

// ValidateAddress checks that address is a P2PKH address for this network.
func (b *BTCChain) ValidateAddress(address string) error {
	addr, err := btcutil.DecodeAddress(address, b.netParams())
	if err != nil {
		return fmt.Errorf("decode address: %w", err)
	}
	if _, ok := addr.(*btcutil.AddressPubKeyHash); !ok {
		return fmt.Errorf("address %s is not P2PKH", address)
	}
	if !addr.IsForNet(b.netParams()) {
		return fmt.Errorf("address %s is not for %s", address, b.Network())
	}
	return nil
}
