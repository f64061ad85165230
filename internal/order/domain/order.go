package domain

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// ValidStatus reports membership in the fixed status set. Any member may
// replace any other; there is deliberately no transition graph here.
func ValidStatus(s string) bool {
	switch Status(s) {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

// Order is immutable once created, except for status and payment_status.
// Item name, image and price are snapshots taken at creation time and stay
// frozen no matter how the catalog changes afterwards.
type Order struct {
	ID              string          `bson:"id" json:"id"`
	OrderNumber     string          `bson:"order_number" json:"order_number"`
	SessionID       string          `bson:"session_id" json:"session_id"`
	Items           []OrderItem     `bson:"items" json:"items"`
	ShippingAddress ShippingAddress `bson:"shipping_address" json:"shipping_address"`
	Subtotal        float64         `bson:"subtotal" json:"subtotal"`
	Shipping        float64         `bson:"shipping" json:"shipping"`
	Tax             float64         `bson:"tax" json:"tax"`
	Total           float64         `bson:"total" json:"total"`
	Status          Status          `bson:"status" json:"status"`
	PaymentStatus   PaymentStatus   `bson:"payment_status" json:"payment_status"`
	CreatedAt       time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updated_at"`
}

type OrderItem struct {
	ProductID    string  `bson:"product_id" json:"product_id"`
	ProductName  string  `bson:"product_name" json:"product_name"`
	ProductImage string  `bson:"product_image" json:"product_image"`
	Price        float64 `bson:"price" json:"price"`
	Quantity     int     `bson:"quantity" json:"quantity"`
}

type ShippingAddress struct {
	FirstName string `bson:"first_name" json:"first_name"`
	LastName  string `bson:"last_name" json:"last_name"`
	Email     string `bson:"email" json:"email"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string `bson:"address" json:"address"`
	City      string `bson:"city" json:"city"`
	State     string `bson:"state" json:"state"`
	ZipCode   string `bson:"zip_code" json:"zip_code"`
	Country   string `bson:"country" json:"country"`
}
