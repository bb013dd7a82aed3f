package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"healthbox-backend/internal/models"
)

func (s *Store) InsertPayment(ctx context.Context, payment models.Payment) (*models.Payment, error) {
	res, err := s.Payments.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		payment.ID = oid
	}
	return &payment, nil
}

func (s *Store) PaymentByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := s.Payments.FindOne(ctx, bson.M{"transactionId": transactionID}).Decode(&payment)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}

// MarkPaid flips a payment's status to paid by document id. Upsert semantics
// are kept from the source system: an unknown id creates a bare paid document.
func (s *Store) MarkPaid(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	_, err = s.Payments.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": models.PaymentPaid}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to mark payment paid: %w", err)
	}
	return nil
}

func (s *Store) AllPayments(ctx context.Context) ([]models.Payment, error) {
	cur, err := s.Payments.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	var payments []models.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// StatusOverview groups all payments by status with count and summed amount.
func (s *Store) StatusOverview(ctx context.Context) ([]models.StatusReport, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$amount"},
		}},
	}
	cur, err := s.Payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate payment overview: %w", err)
	}
	var reports []models.StatusReport
	if err := cur.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode payment overview: %w", err)
	}
	return reports, nil
}

// PaymentsBetween returns payments whose date falls in [start, end). Callers
// pass an end bound already extended past the last wanted day.
func (s *Store) PaymentsBetween(ctx context.Context, start, end time.Time) ([]models.Payment, error) {
	filter := bson.M{"date": bson.M{
		"$gte": start,
		"$lt":  end,
	}}
	cur, err := s.Payments.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments by date: %w", err)
	}
	var payments []models.Payment
	if err := cur.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}

// SellerRevenue unwinds every payment's purchased-items snapshot, keeps the
// lines sold by the given seller and groups them by payment status.
func (s *Store) SellerRevenue(ctx context.Context, sellerEmail string) ([]models.StatusReport, error) {
	pipeline := []bson.M{
		{"$unwind": "$purchasedItems"},
		{"$match": bson.M{"purchasedItems.sellerEmail": sellerEmail}},
		{"$group": bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$purchasedItems.price"},
		}},
	}
	cur, err := s.Payments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate seller revenue: %w", err)
	}
	var reports []models.StatusReport
	if err := cur.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode seller revenue: %w", err)
	}
	return reports, nil
}
