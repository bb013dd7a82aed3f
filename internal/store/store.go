package store

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound          = errors.New("document not found")
	ErrDuplicateCartLine = errors.New("medicine already in cart for this user")
)

// Store wraps the HealthBox collections. It is the single injected storage
// dependency; every handler and service talks to Mongo through it.
type Store struct {
	Categories *mongo.Collection
	Medicines  *mongo.Collection
	Reviews    *mongo.Collection
	Users      *mongo.Collection
	Carts      *mongo.Collection
	Payments   *mongo.Collection
	Ads        *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		Categories: db.Collection("categories"),
		Medicines:  db.Collection("allmedicine"),
		Reviews:    db.Collection("reviews"),
		Users:      db.Collection("users"),
		Carts:      db.Collection("carts"),
		Payments:   db.Collection("payments"),
		Ads:        db.Collection("advertisements"),
	}
}
