package main

import (
	"context"
	"flag"

	"github.com/gin-gonic/gin"

	"github.com/linlinbupt123-crypto/hdkey_service/api"
	"github.com/linlinbupt123-crypto/hdkey_service/chain"
	"github.com/linlinbupt123-crypto/hdkey_service/config"
	"github.com/linlinbupt123-crypto/hdkey_service/db"
	"github.com/linlinbupt123-crypto/hdkey_service/domain"
	"github.com/linlinbupt123-crypto/hdkey_service/log"
	"github.com/linlinbupt123-crypto/hdkey_service/repository"
	"github.com/linlinbupt123-crypto/hdkey_service/service"
)

func main() {
	cfgPath := flag.String("config", "config/config.yaml", "config file")
	flag.Parse()

	// 1. 配置 + 日志
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("load config")
	}
	log.Init(cfg.Log.Level, cfg.Log.JSON)

	// 2. 初始化依赖
	wl, err := domain.WordlistByName(cfg.Wordlist)
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("wordlist")
	}
	order, err := domain.ParseIndexOrder(cfg.Derivation.IndexOrder)
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("derivation.index_order")
	}
	path, err := domain.ParseDerivationPath(cfg.Derivation.Path)
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("derivation.path")
	}
	mainnet, err := chain.ParseNetwork(cfg.Network)
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("network")
	}

	hdDomain, err := domain.NewHDWallet(wl, domain.KeyDeriver{Order: order})
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("hd wallet")
	}
	btc := chain.NewBTCChain(mainnet, hdDomain)

	// 3. MongoDB 地址账本 (可选)
	var addressRepo repository.AddressStore
	if cfg.MongoEnabled() {
		ctx := context.Background()
		mongoRepo, err := db.NewMongoRepo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Timeout)
		if err != nil {
			log.Storage.Fatal().Err(err).Msg("mongo")
		}
		defer mongoRepo.Close(ctx)
		addressRepo = repository.NewAddressRepo(mongoRepo.AddrColl)
		log.Storage.Info().Str("database", cfg.Mongo.Database).Msg("address ledger enabled")
	}

	walletService := service.NewWalletService(
		hdDomain,
		btc,
		addressRepo,
		path,
		cfg.DefaultStrength,
	)

	// 4. Gin
	r := gin.Default()

	walletHandler := api.NewWalletHandler(walletService)
	walletHandler.Register(r)

	log.API.Info().
		Str("port", cfg.Port).
		Str("network", btc.Network()).
		Str("path", path.String()).
		Msg("listening")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.API.Fatal().Err(err).Msg("server start failed")
	}
}
