package chain

import "github.com/linlinbupt123-crypto/hdkey_service/domain"

// ChainService renders addresses for one network from a BIP39 seed.
type ChainService interface {
	DeriveAddress(seed []byte, path domain.DerivationPath) (string, error)
	ValidateAddress(address string) error
	Network() string
}
