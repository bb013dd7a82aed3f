package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthbox-backend/internal/models"
)

// UpsertUser registers a user keyed by email. Repeated registrations refresh
// uid and name but never clear an existing role.
func (s *Store) UpsertUser(ctx context.Context, user models.User) error {
	set := bson.M{"email": user.Email}
	if user.UID != "" {
		set["uid"] = user.UID
	}
	if user.Name != "" {
		set["name"] = user.Name
	}
	if user.Password != "" {
		set["password"] = user.Password
	}
	_, err := s.Users.UpdateOne(ctx,
		bson.M{"email": user.Email},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (s *Store) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.Users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// RoleByEmail returns the stored role for the user, empty for plain customers.
func (s *Store) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := s.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return user.Role, nil
}

// SetRole sets a user's role by document id, creating the document if the id
// somehow matches nothing.
func (s *Store) SetRole(ctx context.Context, id, role string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = s.Users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": role}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}
	return nil
}
