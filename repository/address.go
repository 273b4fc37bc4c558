package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linlinbupt123-crypto/hdkey_service/entity"
	wrapErrors "github.com/linlinbupt123-crypto/hdkey_service/errors"
)

const DefaultListLimit = 20

// AddressStore is the address ledger used by the service.
type AddressStore interface {
	Create(ctx context.Context, addr *entity.Address) error
	List(ctx context.Context, limit int64) ([]*entity.Address, error)
	GetByAddress(ctx context.Context, address string) (*entity.Address, error)
}

type AddressRepo struct {
	col *mongo.Collection
}

func NewAddressRepo(col *mongo.Collection) *AddressRepo {
	return &AddressRepo{col: col}
}

// Create inserts addr. Re-deriving an address that is already recorded is
// not an error.
func (r *AddressRepo) Create(ctx context.Context, addr *entity.Address) error {
	if addr.CreatedAt.IsZero() {
		addr.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, addr)
	if mongo.IsDuplicateKeyError(err) {
		return nil
	}
	return wrapErrors.WrapWithCode(wrapErrors.CodeStorage, "address.create", err)
}

// List returns up to limit entries, newest first.
func (r *AddressRepo) List(ctx context.Context, limit int64) ([]*entity.Address, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeStorage, "address.list", err)
	}
	defer cur.Close(ctx)

	out := make([]*entity.Address, 0, limit)
	for cur.Next(ctx) {
		var a entity.Address
		if err := cur.Decode(&a); err != nil {
			return nil, wrapErrors.WrapWithCode(wrapErrors.CodeStorage, "address.list", err)
		}
		out = append(out, &a)
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeStorage, "address.list", err)
	}
	return out, nil
}

// GetByAddress 根据链上的地址查找 Address; 找不到返回 nil
func (r *AddressRepo) GetByAddress(ctx context.Context, address string) (*entity.Address, error) {
	var addr entity.Address
	err := r.col.FindOne(ctx, bson.M{"address": address}).Decode(&addr)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErrors.WrapWithCode(wrapErrors.CodeStorage, "address.get", err)
	}
	return &addr, nil
}
