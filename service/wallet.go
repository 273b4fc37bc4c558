package service

import (
	"context"
	"fmt"
	"time"

	"github.com/linlinbupt123-crypto/hdkey_service/chain"
	"github.com/linlinbupt123-crypto/hdkey_service/domain"
	"github.com/linlinbupt123-crypto/hdkey_service/entity"
	wrapErrors "github.com/linlinbupt123-crypto/hdkey_service/errors"
	"github.com/linlinbupt123-crypto/hdkey_service/log"
	"github.com/linlinbupt123-crypto/hdkey_service/repository"
)

// WalletService is stateless apart from the optional address ledger.
// Mnemonics, passphrases, seeds and keys are never logged or stored.
type WalletService struct {
	HDWalletDomain  *domain.HDWallet
	Chain           chain.ChainService
	AddressRepo     repository.AddressStore // nil disables the ledger
	Path            domain.DerivationPath
	DefaultStrength int
}

func NewWalletService(
	hd *domain.HDWallet,
	c chain.ChainService,
	addressRepo repository.AddressStore,
	path domain.DerivationPath,
	defaultStrength int,
) *WalletService {
	if path == nil {
		path = domain.DefaultPath
	}
	if defaultStrength == 0 {
		defaultStrength = 128
	}
	return &WalletService{
		HDWalletDomain:  hd,
		Chain:           c,
		AddressRepo:     addressRepo,
		Path:            path,
		DefaultStrength: defaultStrength,
	}
}

// GenerateMnemonic 生成助记词; strength 为 0 时使用配置的默认值
func (s *WalletService) GenerateMnemonic(ctx context.Context, strength int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strength == 0 {
		strength = s.DefaultStrength
	}
	m, err := s.HDWalletDomain.NewMnemonic(strength)
	if err != nil {
		return "", err
	}
	log.Service.Debug().Int("strength", strength).Msg("mnemonic generated")
	return m, nil
}

func (s *WalletService) ValidateMnemonic(ctx context.Context, mnemonic string) bool {
	return s.HDWalletDomain.ValidateMnemonic(mnemonic)
}

// MnemonicToSeed validates the mnemonic before stretching it. The caller
// owns the returned seed and should clear it with domain.ClearBytes.
func (s *WalletService) MnemonicToSeed(ctx context.Context, mnemonic, passphrase string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.HDWalletDomain.Seed(mnemonic, passphrase)
}

// DeriveAddress derives the address at the configured path.
func (s *WalletService) DeriveAddress(ctx context.Context, mnemonic, passphrase string) (*entity.Address, error) {
	return s.DeriveAddressAt(ctx, mnemonic, passphrase, s.Path)
}

// DeriveAddressAt 助记词 -> seed -> 派生路径 -> P2PKH 地址, 并记录到地址账本
func (s *WalletService) DeriveAddressAt(ctx context.Context, mnemonic, passphrase string, path domain.DerivationPath) (*entity.Address, error) {
	// 1. 校验助记词并生成 seed
	seed, err := s.MnemonicToSeed(ctx, mnemonic, passphrase)
	if err != nil {
		return nil, err
	}
	defer domain.ClearBytes(seed)

	// 2. 派生地址
	addr, err := s.Chain.DeriveAddress(seed, path)
	if err != nil {
		return nil, fmt.Errorf("derive address at %s: %w", path, err)
	}

	out := &entity.Address{
		Address:   addr,
		Path:      path.String(),
		Network:   s.Chain.Network(),
		CreatedAt: time.Now().UTC(),
	}

	// 3. 存数据库 (失败只记录日志)
	if s.AddressRepo != nil {
		if err := s.AddressRepo.Create(ctx, out); err != nil {
			log.Service.Warn().Err(err).Str("address", addr).Msg("failed to record address")
		}
	}

	log.Service.Info().
		Str("address", addr).
		Str("path", out.Path).
		Str("network", out.Network).
		Msg("address derived")
	return out, nil
}

// ListAddresses returns the newest ledger entries, or nothing without a ledger.
func (s *WalletService) ListAddresses(ctx context.Context, limit int64) ([]*entity.Address, error) {
	if s.AddressRepo == nil {
		return []*entity.Address{}, nil
	}
	return s.AddressRepo.List(ctx, limit)
}

// GetAddress looks up one ledger entry by its encoded address.
func (s *WalletService) GetAddress(ctx context.Context, address string) (*entity.Address, error) {
	const op = "service.get_address"
	if err := s.Chain.ValidateAddress(address); err != nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeInvalidAddress, op, err)
	}
	if s.AddressRepo == nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeNotFound, op, fmt.Errorf("address ledger disabled"))
	}
	addr, err := s.AddressRepo.GetByAddress(ctx, address)
	if err != nil {
		return nil, err
	}
	if addr == nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeNotFound, op, fmt.Errorf("address %s not recorded", address))
	}
	return addr, nil
}
