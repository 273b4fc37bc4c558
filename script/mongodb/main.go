package main

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linlinbupt123-crypto/hdkey_service/config"
	"github.com/linlinbupt123-crypto/hdkey_service/db"
	"github.com/linlinbupt123-crypto/hdkey_service/log"
)

func main() {
	cfgPath := flag.String("config", "config/config.yaml", "config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("load config")
	}
	if !cfg.MongoEnabled() {
		log.Logger.Fatal().Msg("mongo.uri is empty")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, err := db.NewMongoRepo(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Timeout)
	if err != nil {
		log.Logger.Fatal().Err(err).Msg("MongoDB connect error")
	}
	defer func() {
		if err := repo.Close(ctx); err != nil {
			log.Storage.Warn().Err(err).Msg("MongoDB disconnect error")
		}
	}()

	if err := initIndexes(ctx, repo.DB); err != nil {
		log.Logger.Fatal().Err(err).Msg("init indexes failed")
	}

	log.Storage.Info().Str("database", cfg.Mongo.Database).Msg("all indexes initialized")
}

// 安全创建索引函数
func createIndexSafe(ctx context.Context, col *mongo.Collection, index mongo.IndexModel) error {
	_, err := col.Indexes().CreateOne(ctx, index)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "already exists") {
			return nil // 忽略已存在索引
		}
		return err
	}
	return nil
}

func initIndexes(ctx context.Context, database *mongo.Database) error {
	addrCol := database.Collection(db.AddressCollection)
	addrIndexes := []mongo.IndexModel{
		{Keys: bson.M{"address": 1}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "network", Value: 1}, {Key: "path", Value: 1}}},
	}
	for _, idx := range addrIndexes {
		if err := createIndexSafe(ctx, addrCol, idx); err != nil {
			return fmt.Errorf("addresses index error: %w", err)
		}
	}
	return nil
}
