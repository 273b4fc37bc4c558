package service

import (
	"context"
	stderrors "errors"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linlinbupt123-crypto/hdkey_service/chain"
	"github.com/linlinbupt123-crypto/hdkey_service/domain"
	"github.com/linlinbupt123-crypto/hdkey_service/entity"
	wrapErrors "github.com/linlinbupt123-crypto/hdkey_service/errors"
)

const abandonAbout = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

type memStore struct {
	mu        sync.Mutex
	addresses []*entity.Address
	createErr error
}

func (m *memStore) Create(_ context.Context, addr *entity.Address) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.addresses {
		if a.Address == addr.Address {
			return nil
		}
	}
	m.addresses = append(m.addresses, addr)
	return nil
}

func (m *memStore) List(_ context.Context, limit int64) ([]*entity.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]*entity.Address(nil), m.addresses...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if limit > 0 && int64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) GetByAddress(_ context.Context, address string) (*entity.Address, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.addresses {
		if a.Address == address {
			return a, nil
		}
	}
	return nil, nil
}

func newService(t *testing.T, deriver domain.KeyDeriver, store *memStore) *WalletService {
	t.Helper()
	hd, err := domain.NewHDWallet(domain.EnglishWordlist(), deriver)
	require.NoError(t, err)
	svc := NewWalletService(hd, chain.NewBTCChain(true, hd), nil, nil, 0)
	if store != nil {
		svc.AddressRepo = store
	}
	return svc
}

func TestNewWalletService_Defaults(t *testing.T) {
	svc := newService(t, domain.KeyDeriver{}, nil)
	assert.Equal(t, domain.DefaultPath, svc.Path)
	assert.Equal(t, 128, svc.DefaultStrength)
	assert.Nil(t, svc.AddressRepo)
}

func TestGenerateMnemonic(t *testing.T) {
	svc := newService(t, domain.KeyDeriver{}, nil)
	ctx := context.Background()

	m, err := svc.GenerateMnemonic(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(m), 12)
	assert.True(t, svc.ValidateMnemonic(ctx, m))

	m, err = svc.GenerateMnemonic(ctx, 256)
	require.NoError(t, err)
	assert.Len(t, strings.Fields(m), 24)

	_, err = svc.GenerateMnemonic(ctx, 64)
	assert.True(t, stderrors.Is(err, domain.ErrInvalidStrength))
	assert.Equal(t, wrapErrors.CodeInvalidStrength, wrapErrors.CodeOf(err))
}

func TestGenerateMnemonic_CanceledContext(t *testing.T) {
	svc := newService(t, domain.KeyDeriver{}, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := svc.GenerateMnemonic(ctx, 128)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMnemonicToSeed(t *testing.T) {
	svc := newService(t, domain.KeyDeriver{}, nil)
	ctx := context.Background()

	seed, err := svc.MnemonicToSeed(ctx, abandonAbout, "TREZOR")
	require.NoError(t, err)
	assert.Equal(t, domain.ToSeed(abandonAbout, "TREZOR"), seed)

	_, err = svc.MnemonicToSeed(ctx, "abandon abandon abandon", "")
	assert.Equal(t, wrapErrors.CodeInvalidMnemonic, wrapErrors.CodeOf(err))
}

func TestDeriveAddress_RecordsInLedger(t *testing.T) {
	store := &memStore{}
	svc := newService(t, domain.KeyDeriver{Order: domain.IndexOrderStandard}, store)
	ctx := context.Background()

	addr, err := svc.DeriveAddress(ctx, abandonAbout, "")
	require.NoError(t, err)
	assert.Equal(t, "1LqBGSKuX5yYUonjxT5qGfpUsXKYYWeabA", addr.Address)
	assert.Equal(t, "m/44'/0'/0'/0/0", addr.Path)
	assert.Equal(t, chain.MainNet, addr.Network)
	assert.False(t, addr.CreatedAt.IsZero())

	// deriving again does not duplicate the entry
	_, err = svc.DeriveAddress(ctx, abandonAbout, "")
	require.NoError(t, err)

	list, err := svc.ListAddresses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, addr.Address, list[0].Address)

	got, err := svc.GetAddress(ctx, addr.Address)
	require.NoError(t, err)
	assert.Equal(t, addr.Path, got.Path)
}

func TestDeriveAddressAt_CustomPath(t *testing.T) {
	svc := newService(t, domain.KeyDeriver{}, nil)
	ctx := context.Background()
	path, err := domain.ParseDerivationPath("m/44'/0'/0'/0/1")
	require.NoError(t, err)

	first, err := svc.DeriveAddress(ctx, abandonAbout, "")
	require.NoError(t, err)
	second, err := svc.DeriveAddressAt(ctx, abandonAbout, "", path)
	require.NoError(t, err)
	assert.NotEqual(t, first.Address, second.Address)
	assert.Equal(t, "m/44'/0'/0'/0/1", second.Path)
}

func TestDeriveAddress_PassphraseChangesAddress(t *testing.T) {
	svc := newService(t, domain.KeyDeriver{}, nil)
	ctx := context.Background()

	a, err := svc.DeriveAddress(ctx, abandonAbout, "")
	require.NoError(t, err)
	b, err := svc.DeriveAddress(ctx, abandonAbout, "TREZOR")
	require.NoError(t, err)
	assert.NotEqual(t, a.Address, b.Address)
}

func TestDeriveAddress_LedgerFailureIsNotFatal(t *testing.T) {
	store := &memStore{createErr: stderrors.New("mongo down")}
	svc := newService(t, domain.KeyDeriver{}, store)

	addr, err := svc.DeriveAddress(context.Background(), abandonAbout, "")
	require.NoError(t, err)
	assert.NotEmpty(t, addr.Address)
}

func TestDeriveAddress_InvalidMnemonic(t *testing.T) {
	store := &memStore{}
	svc := newService(t, domain.KeyDeriver{}, store)

	bad := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon"
	_, err := svc.DeriveAddress(context.Background(), bad, "")
	assert.True(t, stderrors.Is(err, domain.ErrChecksumMismatch))
	assert.Empty(t, store.addresses)
}

func TestListAddresses_NoLedger(t *testing.T) {
	svc := newService(t, domain.KeyDeriver{}, nil)
	list, err := svc.ListAddresses(context.Background(), 5)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestGetAddress_Errors(t *testing.T) {
	ctx := context.Background()

	noLedger := newService(t, domain.KeyDeriver{}, nil)
	_, err := noLedger.GetAddress(ctx, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH")
	assert.Equal(t, wrapErrors.CodeNotFound, wrapErrors.CodeOf(err))

	svc := newService(t, domain.KeyDeriver{}, &memStore{})
	_, err = svc.GetAddress(ctx, "garbage")
	assert.Equal(t, wrapErrors.CodeInvalidAddress, wrapErrors.CodeOf(err))

	_, err = svc.GetAddress(ctx, "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH")
	assert.Equal(t, wrapErrors.CodeNotFound, wrapErrors.CodeOf(err))
}
