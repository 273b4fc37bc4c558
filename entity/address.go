package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Address is one ledger entry. Only public data is stored; the mnemonic,
// seed and keys that produced it never leave the request.
type Address struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Address   string             `bson:"address" json:"address"` // P2PKH, base58check
	Path      string             `bson:"path" json:"path"`       // m/44'/0'/0'/0/0
	Network   string             `bson:"network" json:"network"` // mainnet / testnet
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
