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

// TopCategories returns the categories with the most medicines, best first.
func (s *Store) TopCategories(ctx context.Context, limit int) ([]models.Category, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "medicineCount", Value: -1}}).
		SetLimit(int64(limit))
	cur, err := s.Categories.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list top categories: %w", err)
	}
	var cats []models.Category
	if err := cur.All(ctx, &cats); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return cats, nil
}

// DiscountedMedicines returns every medicine with a discount, deepest discount first.
func (s *Store) DiscountedMedicines(ctx context.Context) ([]models.Medicine, error) {
	filter := bson.M{"discountPercentage": bson.M{"$gt": 0}}
	opts := options.Find().SetSort(bson.D{{Key: "discountPercentage", Value: -1}})
	cur, err := s.Medicines.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list discounted medicines: %w", err)
	}
	var meds []models.Medicine
	if err := cur.All(ctx, &meds); err != nil {
		return nil, fmt.Errorf("failed to decode medicines: %w", err)
	}
	return meds, nil
}

func (s *Store) AllMedicines(ctx context.Context) ([]models.Medicine, error) {
	cur, err := s.Medicines.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}
	var meds []models.Medicine
	if err := cur.All(ctx, &meds); err != nil {
		return nil, fmt.Errorf("failed to decode medicines: %w", err)
	}
	return meds, nil
}

func (s *Store) MedicineByID(ctx context.Context, id string) (*models.Medicine, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var med models.Medicine
	err = s.Medicines.FindOne(ctx, bson.M{"_id": oid}).Decode(&med)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get medicine: %w", err)
	}
	return &med, nil
}

func (s *Store) MedicinesByCategory(ctx context.Context, category string) ([]models.Medicine, error) {
	cur, err := s.Medicines.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, fmt.Errorf("failed to list medicines by category: %w", err)
	}
	var meds []models.Medicine
	if err := cur.All(ctx, &meds); err != nil {
		return nil, fmt.Errorf("failed to decode medicines: %w", err)
	}
	return meds, nil
}

func (s *Store) InsertMedicine(ctx context.Context, med models.Medicine) (*models.Medicine, error) {
	res, err := s.Medicines.InsertOne(ctx, med)
	if err != nil {
		return nil, fmt.Errorf("failed to insert medicine: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		med.ID = oid
	}
	return &med, nil
}

func (s *Store) UpdateMedicine(ctx context.Context, id string, med models.Medicine) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	update := bson.M{"$set": bson.M{
		"name":               med.Name,
		"company":            med.Company,
		"category":           med.Category,
		"price":              med.Price,
		"discountPercentage": med.DiscountPercentage,
		"stock":              med.Stock,
		"image":              med.Image,
	}}
	res, err := s.Medicines.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return fmt.Errorf("failed to update medicine: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteMedicine(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.Medicines.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete medicine: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DecrementStock subtracts quantity from a medicine's stock. There is no
// lower-bound guard and no lock around concurrent decrements.
func (s *Store) DecrementStock(ctx context.Context, medicineID string, quantity int) error {
	oid, err := primitive.ObjectIDFromHex(medicineID)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.Medicines.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$inc": bson.M{"stock": -quantity}},
	)
	if err != nil {
		return fmt.Errorf("failed to decrement stock: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
