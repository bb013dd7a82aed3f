package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthbox-backend/internal/models"
)

// AddCartLine inserts one cart line, rejecting a second line for the same
// (medicine name, user) pair. The existence check and the insert are separate
// round trips, so a concurrent duplicate add can slip through.
func (s *Store) AddCartLine(ctx context.Context, line models.CartLine) (*models.CartLine, error) {
	count, err := s.Carts.CountDocuments(ctx, bson.M{
		"name":    line.Name,
		"userUid": line.UserUID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing cart line: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateCartLine
	}

	res, err := s.Carts.InsertOne(ctx, line)
	if err != nil {
		return nil, fmt.Errorf("failed to insert cart line: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		line.ID = oid
	}
	return &line, nil
}

func (s *Store) CartLinesByUser(ctx context.Context, userUID string) ([]models.CartLine, error) {
	cur, err := s.Carts.Find(ctx, bson.M{"userUid": userUID})
	if err != nil {
		return nil, fmt.Errorf("failed to list cart lines: %w", err)
	}
	var lines []models.CartLine
	if err := cur.All(ctx, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart lines: %w", err)
	}
	return lines, nil
}

func (s *Store) UpdateCartQuantity(ctx context.Context, id string, quantity int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.Carts.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"quantity": quantity}},
	)
	if err != nil {
		return fmt.Errorf("failed to update cart line: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteCartLine(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.Carts.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete cart line: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearCart removes every cart line for the user.
func (s *Store) ClearCart(ctx context.Context, userUID string) error {
	_, err := s.Carts.DeleteMany(ctx, bson.M{"userUid": userUID})
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
