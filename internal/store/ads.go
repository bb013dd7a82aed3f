package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"healthbox-backend/internal/models"
)

func (s *Store) AllAds(ctx context.Context) ([]models.Advertisement, error) {
	return s.findAds(ctx, bson.M{})
}

// SliderAds returns only the banners currently promoted to the home slider.
func (s *Store) SliderAds(ctx context.Context) ([]models.Advertisement, error) {
	return s.findAds(ctx, bson.M{"onSlider": true})
}

func (s *Store) findAds(ctx context.Context, filter bson.M) ([]models.Advertisement, error) {
	cur, err := s.Ads.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list advertisements: %w", err)
	}
	var ads []models.Advertisement
	if err := cur.All(ctx, &ads); err != nil {
		return nil, fmt.Errorf("failed to decode advertisements: %w", err)
	}
	return ads, nil
}

func (s *Store) InsertAd(ctx context.Context, ad models.Advertisement) (*models.Advertisement, error) {
	res, err := s.Ads.InsertOne(ctx, ad)
	if err != nil {
		return nil, fmt.Errorf("failed to insert advertisement: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ad.ID = oid
	}
	return &ad, nil
}

// SetOnSlider toggles whether a banner appears on the home slider.
func (s *Store) SetOnSlider(ctx context.Context, id string, onSlider bool) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.Ads.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"onSlider": onSlider}},
	)
	if err != nil {
		return fmt.Errorf("failed to update advertisement: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
