package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	// price serializes as a JSON number, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true
}

type OrderStatus string

const (
	StatusNew        OrderStatus = "New"
	StatusInProgress OrderStatus = "InProgress"
	StatusPaid       OrderStatus = "Paid"
)

type Order struct {
	ID           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Price        decimal.Decimal `json:"price"`
	Status       OrderStatus     `json:"status"`
	CreatedAtUtc time.Time       `json:"createdAtUtc"`
	UpdatedAtUtc time.Time       `json:"updatedAtUtc"`
}

type CreateOrderRequest struct {
	Title string          `json:"title"`
	Price decimal.Decimal `json:"price"`
}

type PaymentWebhookRequest struct {
	OrderID uuid.UUID `json:"orderId"`
}
