package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Payment status values. A payment is created as pending by checkout and
// flipped to paid by an explicit admin action.
const (
	PaymentPending = "pending"
	PaymentPaid    = "paid"
)

// User roles stored on the users collection. An empty role means a plain customer.
const (
	RoleAdmin  = "admin"
	RoleSeller = "seller"
)

type Category struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string             `bson:"categoryName" json:"categoryName"`
	Image         string             `bson:"categoryImage" json:"categoryImage"`
	MedicineCount int                `bson:"medicineCount" json:"medicineCount"`
}

type Medicine struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name               string             `bson:"name" json:"name"`
	Company            string             `bson:"company" json:"company"`
	Category           string             `bson:"category" json:"category"`
	Price              float64            `bson:"price" json:"price"`
	DiscountPercentage float64            `bson:"discountPercentage" json:"discountPercentage"`
	Stock              int                `bson:"stock" json:"stock"`
	Image              string             `bson:"image" json:"image"`
	SellerEmail        string             `bson:"sellerEmail" json:"sellerEmail"`
}

type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Rating float64            `bson:"rating" json:"rating"`
	Text   string             `bson:"text" json:"text"`
}

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UID      string             `bson:"uid,omitempty" json:"uid,omitempty"`
	Name     string             `bson:"name,omitempty" json:"name,omitempty"`
	Email    string             `bson:"email" json:"email"`
	Role     string             `bson:"role,omitempty" json:"role,omitempty"`
	Password string             `bson:"password,omitempty" json:"password,omitempty"`
}

// CartLine is one pending-purchase record tying a medicine to a user.
// Price, stock and image are copied from the medicine at add time.
type CartLine struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserUID     string             `bson:"userUid" json:"userUid"`
	MedicineID  string             `bson:"medicineId" json:"medicineId"`
	Name        string             `bson:"name" json:"name"`
	Company     string             `bson:"company" json:"company"`
	Price       float64            `bson:"price" json:"price"`
	Quantity    int                `bson:"quantity" json:"quantity"`
	Image       string             `bson:"image" json:"image"`
	Stock       int                `bson:"stock" json:"stock"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail"`
}

// Payment is the persisted order. PurchasedItems is a snapshot of the cart
// taken at checkout time and never updated afterwards.
type Payment struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	TransactionID  string             `bson:"transactionId" json:"transactionId"`
	Amount         float64            `bson:"amount" json:"amount"`
	Status         string             `bson:"status" json:"status"`
	Date           time.Time          `bson:"date" json:"date"`
	UserUID        string             `bson:"userUid" json:"userUid"`
	Email          string             `bson:"email,omitempty" json:"email,omitempty"`
	PurchasedItems []CartLine         `bson:"purchasedItems" json:"purchasedItems"`
}

type Advertisement struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
	SellerEmail string             `bson:"sellerEmail" json:"sellerEmail"`
	OnSlider    bool               `bson:"onSlider" json:"onSlider"`
}

// StatusReport is one bucket of a payments aggregation grouped by status.
type StatusReport struct {
	Status string  `bson:"_id" json:"status"`
	Count  int     `bson:"count" json:"count"`
	Total  float64 `bson:"total" json:"total"`
}
