package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/linlinbupt123-crypto/hdkey_service/chain"
	"github.com/linlinbupt123-crypto/hdkey_service/config"
	"github.com/linlinbupt123-crypto/hdkey_service/domain"
	"github.com/linlinbupt123-crypto/hdkey_service/utils"
)

var passphraseFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "passphrase",
		Usage: "optional BIP39 passphrase",
	},
	&cli.BoolFlag{
		Name:  "ask-passphrase",
		Usage: "read the passphrase from the terminal without echo",
	},
}

var generate = cli.Command{
	Name:  "generate",
	Usage: "generate a new mnemonic",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "strength",
			Usage: "entropy bits: 128, 160, 192, 224 or 256",
		},
	},
	Action: generateAction,
}

var validate = cli.Command{
	Name:      "validate",
	Usage:     "check a mnemonic's words and checksum",
	ArgsUsage: "<word>...",
	Action:    validateAction,
}

var seed = cli.Command{
	Name:      "seed",
	Usage:     "print the hex BIP39 seed of a mnemonic",
	ArgsUsage: "<word>...",
	Flags:     passphraseFlags,
	Action:    seedAction,
}

var address = cli.Command{
	Name:      "address",
	Usage:     "derive the P2PKH address of a mnemonic",
	ArgsUsage: "<word>...",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "path",
			Usage: "derivation path, e.g. m/44'/0'/0'/0/0",
		},
		&cli.UintFlag{
			Name:  "index",
			Usage: "address index under m/44'/0'/0'/0/; ignored when --path is set",
		},
		&cli.BoolFlag{
			Name:  "testnet",
			Usage: "render a testnet address",
		},
		&cli.BoolFlag{
			Name:  "standard-index-order",
			Usage: "serialize child indices big-endian like other BIP32 wallets",
		},
	}, passphraseFlags...),
	Action: addressAction,
}

func generateAction(ctx *cli.Context) error {
	cfg, hd, err := loadWallet(ctx)
	if err != nil {
		return err
	}
	strength := ctx.Int("strength")
	if strength == 0 {
		strength = cfg.DefaultStrength
	}

	m, err := hd.NewMnemonic(strength)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, m)
	return nil
}

func validateAction(ctx *cli.Context) error {
	_, hd, err := loadWallet(ctx)
	if err != nil {
		return err
	}
	m, err := mnemonicArg(ctx)
	if err != nil {
		return err
	}

	if _, err := domain.MnemonicToEntropy(m, hd.Wordlist()); err != nil {
		return cli.Exit(fmt.Sprintf("invalid: %v", err), 2)
	}
	fmt.Fprintln(ctx.App.Writer, "valid")
	return nil
}

func seedAction(ctx *cli.Context) error {
	_, hd, err := loadWallet(ctx)
	if err != nil {
		return err
	}
	m, err := mnemonicArg(ctx)
	if err != nil {
		return err
	}
	passphrase, err := readPassphrase(ctx)
	if err != nil {
		return err
	}

	s, err := hd.Seed(m, passphrase)
	if err != nil {
		return err
	}
	defer domain.ClearBytes(s)

	fmt.Fprintln(ctx.App.Writer, hex.EncodeToString(s))
	return nil
}

func addressAction(ctx *cli.Context) error {
	cfg, hd, err := loadWallet(ctx)
	if err != nil {
		return err
	}
	m, err := mnemonicArg(ctx)
	if err != nil {
		return err
	}
	passphrase, err := readPassphrase(ctx)
	if err != nil {
		return err
	}

	pathStr := cfg.Derivation.Path
	switch {
	case ctx.IsSet("path"):
		pathStr = ctx.String("path")
	case ctx.IsSet("index"):
		pathStr = utils.AddressPath(utils.BTC_DERIVATION_PATH_PREFIX, uint32(ctx.Uint("index")))
	}
	path, err := domain.ParseDerivationPath(pathStr)
	if err != nil {
		return err
	}

	mainnet, err := chain.ParseNetwork(cfg.Network)
	if err != nil {
		return err
	}
	if ctx.Bool("testnet") {
		mainnet = false
	}

	s, err := hd.Seed(m, passphrase)
	if err != nil {
		return err
	}
	defer domain.ClearBytes(s)

	addr, err := chain.NewBTCChain(mainnet, hd).DeriveAddress(s, path)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, addr)
	return nil
}

// loadWallet builds an HDWallet from the config file and the command flags.
func loadWallet(ctx *cli.Context) (*config.Config, *domain.HDWallet, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return nil, nil, err
	}
	wl, err := domain.WordlistByName(cfg.Wordlist)
	if err != nil {
		return nil, nil, err
	}
	order, err := domain.ParseIndexOrder(cfg.Derivation.IndexOrder)
	if err != nil {
		return nil, nil, err
	}
	if ctx.Bool("standard-index-order") {
		order = domain.IndexOrderStandard
	}
	hd, err := domain.NewHDWallet(wl, domain.KeyDeriver{Order: order})
	if err != nil {
		return nil, nil, err
	}
	return cfg, hd, nil
}

func mnemonicArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() == 0 {
		return "", cli.Exit("missing mnemonic words", 1)
	}
	return strings.Join(ctx.Args().Slice(), " "), nil
}
